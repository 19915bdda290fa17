package xwire

import (
	"github.com/trickstertwo/xlog"
)

// Observer receives dispatcher lifecycle events. Implementations should be
// non-blocking.
type Observer interface {
	OnEvent(e Event)
}

// ObserverFunc is an Adapter that lets a plain function satisfy Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }

// LoggingObserver is an Adapter that emits dispatch events via xlog.
type LoggingObserver struct {
	Logger *xlog.Logger
}

func (o LoggingObserver) OnEvent(e Event) {
	if o.Logger == nil {
		return
	}
	ev := o.Logger.With(
		xlog.Str("type", string(e.Type)),
		xlog.Str("tag", string(e.Tag)),
		xlog.Str("method", e.Method),
		xlog.Str("call_id", e.CallID),
	)
	switch e.Type {
	case Error, Reject:
		ev.Warn().Err(e.Err).Msg("xwire event")
	default:
		if e.Duration > 0 {
			ev = ev.With(xlog.Dur("duration", e.Duration))
		}
		ev.Debug().Msg("xwire event")
	}
}
