package xwire

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

var _ API = (*Dispatcher)(nil)
var _ HealthChecker = (*Dispatcher)(nil)

// Dispatcher is the correlated entry point for transmitting messages. Every
// accepted call is re-correlated into a single Message, branched exhaustively
// over its tag into a frame, and forwarded exactly once to the Sink. The
// dispatcher holds no per-call state; it is safe for concurrent use.
type Dispatcher struct {
	sink         Sink
	send         SendFunc
	codec        Codec
	clock        xclock.Clock
	logger       *xlog.Logger
	sendTimeout  time.Duration
	observerPool *ObserverPool
	observersMu  sync.RWMutex
	observers    []Observer
	metrics      *dispatchMetrics
	closed       atomic.Bool
	closeOnce    sync.Once
}

// dispatchMetrics uses lock-free atomics for production-grade telemetry.
type dispatchMetrics struct {
	dispatchCount atomic.Uint64
	forwardCount  atomic.Uint64
	rejectCount   atomic.Uint64
	errorCount    atomic.Uint64
	forwardNs     atomic.Int64
}

// Codec returns the configured codec (Strategy).
func (d *Dispatcher) Codec() Codec { return d.codec }

// Dispatch is the independent-values boundary: tag and payload arrive as
// separate arguments. Zero payload values means the payload was omitted; a
// defaulted variant substitutes its declared default, a required one is
// rejected. The pair is validated against the model before any side effect,
// so a non-diagonal combination never reaches the sink.
func (d *Dispatcher) Dispatch(ctx context.Context, tag Tag, payload ...any) error {
	if d.closed.Load() {
		return ErrDispatcherClosed
	}

	d.metrics.dispatchCount.Add(1)

	m, err := Correlate(tag, payload...)
	if err != nil {
		d.metrics.rejectCount.Add(1)
		d.notifyAsync(Event{Type: Reject, Tag: tag, Err: err})
		return err
	}
	return d.forward(ctx, m)
}

// Send is the correlated-composite boundary: the caller hands over a Message
// already sitting on the model's diagonal (built via a variant constructor).
func (d *Dispatcher) Send(ctx context.Context, m Message) error {
	if d.closed.Load() {
		return ErrDispatcherClosed
	}

	d.metrics.dispatchCount.Add(1)

	// Only the zero Message can fail here; constructors cannot produce an
	// off-diagonal value.
	if _, ok := Classify(m); !ok {
		err := ErrTagPayloadMismatch{tag: m.tag, payload: m.payload}
		d.metrics.rejectCount.Add(1)
		d.notifyAsync(Event{Type: Reject, Tag: m.tag, Err: err})
		return err
	}
	return d.forward(ctx, m)
}

// DispatchVariant is the statically diagonal boundary: the Variant descriptor
// carries the payload type, so pairing a tag with another variant's payload
// type fails to compile. The pair is still re-correlated on entry.
func DispatchVariant[P any](ctx context.Context, d *Dispatcher, v Variant[P], payload P) error {
	return d.Dispatch(ctx, v.tag, payload)
}

// forward branches exhaustively over the re-correlated message and performs
// the single sink forward.
func (d *Dispatcher) forward(ctx context.Context, m Message) error {
	callID := uuid.NewString()
	frame := frameFor(m)

	ctx = injectCodec(ctx, d.codec)
	ctx = injectLogger(ctx, d.logger)
	ctx = injectClock(ctx, d.clock)

	cancel := func() {}
	if d.sendTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, d.sendTimeout)
	}
	defer cancel()

	start := d.clock.Now()
	d.notifyAsync(Event{Type: DispatchStart, Tag: m.tag, Method: frame.FrameMethod(), CallID: callID})

	err := d.send(ctx, frame)

	duration := d.clock.Since(start)
	d.recordForwardTime(duration.Nanoseconds())

	d.notifyAsync(Event{
		Type:     DispatchDone,
		Tag:      m.tag,
		Method:   frame.FrameMethod(),
		CallID:   callID,
		Duration: duration,
		Err:      err,
	})

	if err != nil {
		d.metrics.errorCount.Add(1)
		d.logger.Warn().Err(err).Msg("xwire: sink forward failed")
		return err
	}

	d.metrics.forwardCount.Add(1)
	return nil
}

// frameFor applies the tag-specific transform. The switch covers every
// declared tag; the default branch is the exhaustiveness guard. Narrowing is
// safe in each branch because Correlate canonicalized the payload.
func frameFor(m Message) Frame {
	switch m.tag {
	case TagRename:
		return RenameFrame{
			Method: MethodRename,
			ID:     renameRecordID,
			Record: m.payload.(string),
		}
	case TagCount:
		return CountFrame{
			Method: MethodUpdateCount,
			Count:  m.payload.(float64) * countScale,
		}
	default:
		Unreachable(m.tag)
		return nil
	}
}

// GetMetrics returns current dispatcher metrics.
func (d *Dispatcher) GetMetrics() Metrics {
	return Metrics{
		Dispatched:       d.metrics.dispatchCount.Load(),
		Forwarded:        d.metrics.forwardCount.Load(),
		Rejected:         d.metrics.rejectCount.Load(),
		Errors:           d.metrics.errorCount.Load(),
		EventsDropped:    d.observerPool.Stats().Dropped,
		AvgForwardTimeMs: float64(d.metrics.forwardNs.Load()) / 1e6,
	}
}

// Health checks dispatcher health for liveness probes.
// Implements HealthChecker interface.
func (d *Dispatcher) Health(ctx context.Context) HealthStatus {
	if d.closed.Load() {
		return HealthStatus{
			Status:    "unhealthy",
			Timestamp: time.Now(),
			Message:   "dispatcher is closed",
		}
	}

	metrics := d.GetMetrics()
	status := "healthy"

	// Degraded if error rate > 5%
	if metrics.Errors > 0 && metrics.Dispatched > 0 {
		errorRate := float64(metrics.Errors) / float64(metrics.Dispatched)
		if errorRate > 0.05 {
			status = "degraded"
		}
	}

	return HealthStatus{
		Status:    status,
		Metrics:   metrics,
		Timestamp: time.Now(),
	}
}

// Close gracefully shuts down the dispatcher.
// Idempotent via sync.Once; drains observers before closing the sink.
func (d *Dispatcher) Close(ctx context.Context) error {
	var closeErr error

	d.closeOnce.Do(func() {
		d.closed.Store(true)

		if d.observerPool != nil {
			if err := d.observerPool.Close(5 * time.Second); err != nil {
				d.logger.Warn().Err(err).Msg("xwire: observer pool shutdown timeout")
				closeErr = err
			}
		}

		if err := d.sink.Close(ctx); err != nil {
			d.logger.Error().Err(err).Msg("xwire: sink close failed")
			closeErr = err
		}
	})

	return closeErr
}

// AddObserver registers an observer (thread-safe).
func (d *Dispatcher) AddObserver(obs Observer) {
	if obs == nil {
		return
	}
	d.observersMu.Lock()
	d.observers = append(d.observers, obs)
	d.observersMu.Unlock()
}

// RemoveObserver removes an observer.
func (d *Dispatcher) RemoveObserver(obs Observer) {
	if obs == nil {
		return
	}
	d.observersMu.Lock()
	defer d.observersMu.Unlock()

	for i, o := range d.observers {
		if o == obs {
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			break
		}
	}
}

// notifyAsync dispatches events asynchronously (non-blocking).
func (d *Dispatcher) notifyAsync(e Event) {
	if d.observerPool == nil {
		return
	}

	d.observersMu.RLock()
	observerCount := len(d.observers)
	if observerCount == 0 {
		d.observersMu.RUnlock()
		return
	}

	// Avoid slice copy if only one observer.
	if observerCount == 1 {
		obs := d.observers[0]
		d.observersMu.RUnlock()
		d.observerPool.Notify(e, []Observer{obs})
		return
	}

	observers := make([]Observer, observerCount)
	copy(observers, d.observers)
	d.observersMu.RUnlock()

	d.observerPool.Notify(e, observers)
}

// recordForwardTime records forward time using exponential moving average.
func (d *Dispatcher) recordForwardTime(ns int64) {
	const alpha = 0.2 // 20% weight to new sample
	current := d.metrics.forwardNs.Load()
	if current == 0 {
		d.metrics.forwardNs.Store(ns)
		return
	}
	newAvg := int64(float64(ns)*alpha + float64(current)*(1-alpha))
	d.metrics.forwardNs.Store(newAvg)
}
