package kafka

import (
	"fmt"

	"github.com/trickstertwo/xwire"
)

// Use builds a Dispatcher with the Kafka sink and sets it as the default,
// then returns it.
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
		panic(fmt.Errorf("kafka.Use: %w", err))
	}

	xwire.SetDefault(d)
	return d
}

// Option configures the xwire.Dispatcher construction when calling Use.
type Option func(*xwire.DispatcherBuilder)

// WithCodec selects a codec by name (default: json).
func WithCodec(name string) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithCodec(name) }
}

// WithMiddleware adds forward middlewares.
func WithMiddleware(mw ...xwire.Middleware) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithMiddleware(mw...) }
}

// WithObserver attaches observers for lifecycle events.
func WithObserver(obs ...xwire.Observer) Option {
	return func(b *xwire.DispatcherBuilder) { b.WithObserver(obs...) }
}
