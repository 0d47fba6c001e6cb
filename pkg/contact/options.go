package contact

import (
	"context"
	"log/slog"
	"time"
)

// DefaultSimulatedDelay is the latency simulated when the form has no action.
const DefaultSimulatedDelay = 700 * time.Millisecond

// Option configures a Controller.
type Option func(*Controller)

// WithSender overrides the network sender used for non-empty actions.
func WithSender(sender Sender) Option {
	return func(c *Controller) {
		if sender != nil {
			c.sender = sender
		}
	}
}

// WithLogger sets the logger used for submit diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSimulatedDelay changes the wait applied before a simulated success.
// Negative values are ignored.
func WithSimulatedDelay(delay time.Duration) Option {
	return func(c *Controller) {
		if delay >= 0 {
			c.delay = delay
		}
	}
}

// WithSleep replaces the context-aware sleep used by the simulated path.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
