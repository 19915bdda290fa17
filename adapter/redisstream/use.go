package redisstream

import (
	"fmt"

	"github.com/trickstertwo/xwire"
)

// Use builds a Dispatcher with the Redis Streams sink and sets it as the
// default, then returns it. Mirrors xlog/xclock "Use" behavior: explicit
// construction and global install.
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
		panic(fmt.Errorf("redisstream.Use: %w", err))
	}

	// Install as process-wide default (replaces any existing default).
	xwire.SetDefault(d)
	return d
}
