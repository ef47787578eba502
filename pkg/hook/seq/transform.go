package seq

import "context"

// Hook dispatch is homogeneous in the element type, since Go methods
// cannot introduce type parameters. Cross-type transforms live here as
// package-level generics over the concrete seq kind.

// Map transforms each element into a value of another type.
func Map[In, Out any](ctx context.Context, s Seq[In], fn func(ctx context.Context, v In) (Out, error)) (Seq[Out], error) {
	out := make([]Out, 0, len(s.items))
	for _, v := range s.items {
		if err := ctx.Err(); err != nil {
			return Seq[Out]{}, err
		}

		mapped, err := fn(ctx, v)
		if err != nil {
			return Seq[Out]{}, err
		}
		out = append(out, mapped)
	}
	return From(out), nil
}

// FlatMap replaces each element with zero or more values of another type.
func FlatMap[In, Out any](ctx context.Context, s Seq[In], fn func(ctx context.Context, v In) ([]Out, error)) (Seq[Out], error) {
	var out []Out
	for _, v := range s.items {
		if err := ctx.Err(); err != nil {
			return Seq[Out]{}, err
		}

		values, err := fn(ctx, v)
		if err != nil {
			return Seq[Out]{}, err
		}
		out = append(out, values...)
	}
	return From(out), nil
}

// Zip pairs two seqs positionally, truncating to the shorter one.
func Zip[A, B, C any](ctx context.Context, a Seq[A], b Seq[B], fn func(ctx context.Context, x A, y B) (C, error)) (Seq[C], error) {
	n := min(len(a.items), len(b.items))
	out := make([]C, 0, n)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return Seq[C]{}, err
		}

		paired, err := fn(ctx, a.items[i], b.items[i])
		if err != nil {
			return Seq[C]{}, err
		}
		out = append(out, paired)
	}
	return From(out), nil
}
