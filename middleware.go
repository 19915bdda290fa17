package xwire

import (
	"context"
	"fmt"
	"time"
)

// SendFunc forwards a frame to the sink.
type SendFunc func(ctx context.Context, f Frame) error

// Middleware composes concerns around the sink forward. It wraps only the
// forward: boundary rejection and the exhaustive branch run outside the
// chain, so middleware can never turn a rejected call into a sent frame.
type Middleware func(next SendFunc) SendFunc

// TimeoutMiddleware enforces a maximum time for a sink forward.
func TimeoutMiddleware(d time.Duration) Middleware {
	if d <= 0 {
		// No-op if duration invalid.
		return func(next SendFunc) SendFunc { return next }
	}
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, f Frame) error {
			tctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(tctx, f)
		}
	}
}

// RecoveryMiddleware converts sink panics into errors so a misbehaving
// adapter cannot crash the caller. Guard panics are raised before the chain
// and are not recovered here.
func RecoveryMiddleware() Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, f Frame) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic recovered: %v", r)
				}
			}()
			return next(ctx, f)
		}
	}
}

// Chain composes middlewares around a send func in order.
func Chain(s SendFunc, mws ...Middleware) SendFunc {
	if len(mws) == 0 {
		return s
	}
	wrapped := s
	// Apply in reverse so that first middleware wraps last.
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		wrapped = mws[i](wrapped)
	}
	return wrapped
}
