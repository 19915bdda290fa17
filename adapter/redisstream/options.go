package redisstream

import (
	"time"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
	"github.com/trickstertwo/xwire"
)

// Option configures the xwire.Dispatcher construction when calling Use.
type Option func(*xwire.DispatcherBuilder)

// WithLogger injects a custom xlog logger.
func WithLogger(l *xlog.Logger) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithLogger(l) }
}

// WithClock injects a custom xclock clock.
func WithClock(c xclock.Clock) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithClock(c) }
}

// WithCodec selects a codec by name (default: json).
func WithCodec(name string) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithCodec(name) }
}

// WithMiddleware adds forward middlewares.
func WithMiddleware(mw ...xwire.Middleware) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithMiddleware(mw...) }
}

// WithSendTimeout bounds each sink forward.
func WithSendTimeout(d time.Duration) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithSendTimeout(d) }
}

// WithObserver attaches observers for lifecycle events.
func WithObserver(obs ...xwire.Observer) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithObserver(obs...) }
}
