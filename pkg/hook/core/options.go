package core

import (
	"context"

	"github.com/rs/zerolog"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
	FanOutOptionKey OptionKey = "fanout_options"
)

type FanOutOptions struct {
	Width int
}

// WithLogger attaches a logger to the context. Drivers and containers
// trace state transitions, settlements and violations through it.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// Logger returns the context logger, or a disabled logger when none is set.
func Logger(ctx context.Context) zerolog.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(zerolog.Logger)
	if ok {
		return logger
	}
	return zerolog.Nop()
}

// WithFanOut caps how many adapter invocations an asynchronous container
// hook keeps in flight at once.
func WithFanOut(ctx context.Context, width int) context.Context {
	return context.WithValue(ctx, FanOutOptionKey, FanOutOptions{Width: width})
}

// FanOutWidth returns the configured fan-out width, or defaultWidth when
// none is set or the configured value is not positive.
func FanOutWidth(ctx context.Context, defaultWidth int) int {
	options, ok := ctx.Value(FanOutOptionKey).(FanOutOptions)
	if ok && options.Width > 0 {
		return options.Width
	}
	return defaultWidth
}
