package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/trickstertwo/xwire"
)

const SinkName = "memory"

func init() {
	if err := xwire.RegisterSink(SinkName, func(cfg map[string]any) (xwire.Sink, error) {
		return NewSink(ConfigFromMap(cfg)), nil
	}); err != nil {
		panic(fmt.Errorf("xwire/memory: failed to register sink: %w", err))
	}
}

// Config controls memory sink behavior.
type Config struct {
	// Capacity bounds the number of retained frames; 0 means unbounded
	// (default: 0).
	Capacity int
	// FailOnFull makes Send error once Capacity is reached instead of
	// evicting the oldest frame (default: false).
	FailOnFull bool
}

func ConfigFromMap(cfg map[string]any) Config {
	getInt := func(k string, d int) int {
		switch v := cfg[k].(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case float64:
			return int(v)
		default:
			return d
		}
	}

	getBool := func(k string, d bool) bool {
		if v, ok := cfg[k].(bool); ok {
			return v
		}
		return d
	}

	return Config{
		Capacity:   getInt("capacity", 0),
		FailOnFull: getBool("fail_on_full", false),
	}
}

// Sink implements xwire.Sink in memory (dev/testing). It records every
// accepted frame for inspection.
type Sink struct {
	cfg Config

	mu     sync.Mutex
	frames []xwire.Frame

	closed   atomic.Bool
	accepted atomic.Uint64
	dropped  atomic.Uint64
}

var _ xwire.Sink = (*Sink)(nil)

// NewSink creates a new in-memory sink.
func NewSink(cfg Config) *Sink {
	return &Sink{cfg: cfg}
}

// Send records the frame. Honors ctx cancellation before accepting.
func (s *Sink) Send(ctx context.Context, f xwire.Frame) error {
	if s.closed.Load() {
		return errors.New("memory sink is closed")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if f == nil {
		return errors.New("memory sink: nil frame")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Capacity > 0 && len(s.frames) >= s.cfg.Capacity {
		if s.cfg.FailOnFull {
			s.dropped.Add(1)
			return errors.New("memory sink is full")
		}
		// Evict oldest to keep the newest frames observable.
		copy(s.frames, s.frames[1:])
		s.frames = s.frames[:len(s.frames)-1]
	}

	s.frames = append(s.frames, f)
	s.accepted.Add(1)
	return nil
}

// Close marks the sink closed; subsequent sends fail.
func (s *Sink) Close(_ context.Context) error {
	s.closed.Store(true)
	return nil
}

// Frames returns a snapshot of recorded frames in acceptance order.
func (s *Sink) Frames() []xwire.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]xwire.Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Len returns the number of retained frames.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// Reset discards all recorded frames.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.frames = s.frames[:0]
	s.mu.Unlock()
}

// Accepted returns the total number of frames accepted since creation.
func (s *Sink) Accepted() uint64 { return s.accepted.Load() }
