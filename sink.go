package xwire

import (
	"context"
	"errors"
	"sync"
)

// Sink is the Strategy interface for the transmission side: an opaque
// acceptor of serializable frames. Accepting a frame is fire-and-forget;
// nothing beyond the error is observable to the caller.
type Sink interface {
	// Send forwards one frame.
	Send(ctx context.Context, f Frame) error
	// Close releases resources.
	Close(ctx context.Context) error
}

// SinkFactory constructs sinks from a config blob.
type SinkFactory func(cfg map[string]any) (Sink, error)

var (
	sinkRegistryMu sync.RWMutex
	sinkRegistry   = map[string]SinkFactory{}
)

// RegisterSink registers a backend adapter.
func RegisterSink(name string, factory SinkFactory) error {
	if name == "" {
		return errors.New("sink name must not be empty")
	}
	if factory == nil {
		return errors.New("sink factory must not be nil")
	}
	sinkRegistryMu.Lock()
	sinkRegistry[name] = factory
	sinkRegistryMu.Unlock()
	return nil
}

// NewSink constructs a sink by name with config.
func NewSink(name string, cfg map[string]any) (Sink, error) {
	sinkRegistryMu.RLock()
	f, ok := sinkRegistry[name]
	sinkRegistryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownSink{name: name}
	}
	return f(cfg)
}
