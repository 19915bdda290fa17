package memory

import (
	"fmt"
	"time"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
	"github.com/trickstertwo/xwire"
)

// Use builds a Dispatcher with the in-memory sink and sets it as the default.
// Mirrors redisstream.Use: explicit construction with global install.
//
// Example:
//
//	d := memory.Use(memory.Config{Capacity: 1024},
//	    memory.WithLogger(logger),
//	    memory.WithObserver(observer),
//	)
//
// The returned dispatcher is installed as the process-wide default.
func Use(cfg Config, opts ...Option) *xwire.Dispatcher {
	db := xwire.NewDispatcherBuilder().
		WithSink(SinkName, cfg.toMap())

	for _, o := range opts {
		if o != nil {
			o(db)
		}
	}

	d, err := db.Build()
	if err != nil {
		panic(fmt.Errorf("memory.Use: %w", err))
	}

	// Install as process-wide default
	xwire.SetDefault(d)
	return d
}

// toMap converts Config to the generic map expected by the sink factory.
func (c Config) toMap() map[string]any {
	return map[string]any{
		"capacity":     c.Capacity,
		"fail_on_full": c.FailOnFull,
	}
}

// Option configures the xwire.Dispatcher when calling Use.
type Option func(*xwire.DispatcherBuilder)

// WithLogger injects a custom xlog logger.
func WithLogger(l *xlog.Logger) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithLogger(l) }
}

// WithClock injects a custom xclock clock.
func WithClock(c xclock.Clock) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithClock(c) }
}

// WithCodec selects a codec by name (default: "json").
func WithCodec(name string) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithCodec(name) }
}

// WithMiddleware adds forward middlewares (timeout, recovery, etc).
func WithMiddleware(mw ...xwire.Middleware) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithMiddleware(mw...) }
}

// WithSendTimeout bounds each sink forward (default: 5s).
func WithSendTimeout(d time.Duration) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithSendTimeout(d) }
}

// WithObserver attaches observers for lifecycle events.
func WithObserver(obs ...xwire.Observer) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithObserver(obs...) }
}

// WithObserverPool configures async observer pool for non-blocking notifications.
func WithObserverPool(workers, bufferSize int) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithObserverPool(workers, bufferSize) }
}
