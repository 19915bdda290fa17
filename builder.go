package xwire

import (
	"context"
	"time"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

// DispatcherBuilder constructs Dispatcher instances (Builder pattern).
type DispatcherBuilder struct {
	sinkName string
	sinkCfg  map[string]any
	sinkInst Sink

	codecName string
	codecInst Codec

	middlewares []Middleware
	observers   []Observer
	logger      *xlog.Logger
	clock       xclock.Clock
	sendTimeout time.Duration

	poolWorkers int
	poolBuffer  int
}

// NewDispatcherBuilder returns a new builder with sensible defaults.
func NewDispatcherBuilder() *DispatcherBuilder {
	return &DispatcherBuilder{
		codecName:   "json",
		sendTimeout: 5 * time.Second, // bound the sink forward by default
	}
}

func (db *DispatcherBuilder) WithSink(name string, cfg map[string]any) *DispatcherBuilder {
	db.sinkName = name
	db.sinkCfg = cfg
	return db
}

// WithSinkInstance accepts a ready Sink instance (e.g., from adapter Use()).
func (db *DispatcherBuilder) WithSinkInstance(s Sink) *DispatcherBuilder {
	db.sinkInst = s
	return db
}

func (db *DispatcherBuilder) WithCodec(name string) *DispatcherBuilder {
	db.codecName = name
	return db
}

// WithCodecInstance accepts a ready Codec instance.
func (db *DispatcherBuilder) WithCodecInstance(c Codec) *DispatcherBuilder {
	db.codecInst = c
	return db
}

func (db *DispatcherBuilder) WithMiddleware(mw ...Middleware) *DispatcherBuilder {
	if len(mw) == 0 {
		return db
	}
	db.middlewares = append(db.middlewares, mw...)
	return db
}

func (db *DispatcherBuilder) WithObserver(obs ...Observer) *DispatcherBuilder {
	for _, o := range obs {
		if o != nil {
			db.observers = append(db.observers, o)
		}
	}
	return db
}

func (db *DispatcherBuilder) WithLogger(l *xlog.Logger) *DispatcherBuilder {
	db.logger = l
	return db
}

func (db *DispatcherBuilder) WithClock(c xclock.Clock) *DispatcherBuilder {
	db.clock = c
	return db
}

func (db *DispatcherBuilder) WithSendTimeout(d time.Duration) *DispatcherBuilder {
	if d > 0 {
		db.sendTimeout = d
	}
	return db
}

// WithObserverPool sizes the async observer pool.
func (db *DispatcherBuilder) WithObserverPool(workers, bufferSize int) *DispatcherBuilder {
	db.poolWorkers = workers
	db.poolBuffer = bufferSize
	return db
}

// WithConfig applies a loaded Config (see LoadConfig) to the builder.
func (db *DispatcherBuilder) WithConfig(c Config) *DispatcherBuilder {
	if c.Sink != "" {
		db.WithSink(c.Sink, c.SinkConfig)
	}
	if c.Codec != "" {
		db.WithCodec(c.Codec)
	}
	if c.SendTimeout != "" {
		if d, err := time.ParseDuration(c.SendTimeout); err == nil {
			db.WithSendTimeout(d)
		}
	}
	return db
}

func (db *DispatcherBuilder) Build() (*Dispatcher, error) {
	var sk Sink
	var err error

	switch {
	case db.sinkInst != nil:
		sk = db.sinkInst
	case db.sinkName != "":
		sk, err = NewSink(db.sinkName, db.sinkCfg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrNoSinkConfigured
	}

	var cd Codec
	if db.codecInst != nil {
		cd = db.codecInst
	} else {
		cd, err = NewCodec(db.codecName)
		if err != nil {
			return nil, err
		}
	}

	var clk xclock.Clock
	if db.clock != nil {
		clk = db.clock
	} else {
		clk = xclock.Default()
	}
	var lg *xlog.Logger
	if db.logger != nil {
		lg = db.logger
	} else {
		lg = xlog.Default()
	}

	d := &Dispatcher{
		sink:         sk,
		codec:        cd,
		clock:        clk,
		logger:       lg,
		sendTimeout:  db.sendTimeout,
		observerPool: NewObserverPool(context.Background(), db.poolWorkers, db.poolBuffer),
		metrics:      &dispatchMetrics{},
	}
	d.send = Chain(sk.Send, db.middlewares...)

	// Attach logging observer first for dependable telemetry unless already
	// supplied externally.
	hasLoggingObserver := false
	for _, o := range db.observers {
		if _, ok := o.(LoggingObserver); ok {
			hasLoggingObserver = true
			break
		}
	}
	if !hasLoggingObserver && lg != nil {
		d.AddObserver(LoggingObserver{Logger: lg})
	}

	for _, o := range db.observers {
		d.AddObserver(o)
	}

	return d, nil
}

// New constructs a Dispatcher via Builder and returns a close func for
// convenience.
func New(init func(db *DispatcherBuilder)) (*Dispatcher, func() error, error) {
	db := NewDispatcherBuilder()
	if init != nil {
		init(db)
	}
	d, err := db.Build()
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() error { return d.Close(context.Background()) }
	return d, closeFn, nil
}
