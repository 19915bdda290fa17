package xwire

import (
	"context"
	"fmt"
	"sync"
)

var (
	defaultDispatcher   *Dispatcher
	defaultDispatcherMu sync.Mutex
)

// Default returns the process-wide singleton Dispatcher.
func Default() *Dispatcher {
	defaultDispatcherMu.Lock()
	defer defaultDispatcherMu.Unlock()

	if defaultDispatcher != nil {
		return defaultDispatcher
	}

	db := NewDispatcherBuilder()
	d, err := db.Build()
	if err != nil {
		panic(fmt.Sprintf("xwire: failed to initialize default dispatcher: %v", err))
	}
	defaultDispatcher = d
	return defaultDispatcher
}

// SetDefault replaces the process-wide default Dispatcher.
func SetDefault(d *Dispatcher) {
	if d == nil {
		panic("xwire: SetDefault called with nil Dispatcher")
	}
	defaultDispatcherMu.Lock()
	defaultDispatcher = d
	defaultDispatcherMu.Unlock()
}

// Dispatch is the Facade using the default dispatcher.
func Dispatch(ctx context.Context, tag Tag, payload ...any) error {
	return Default().Dispatch(ctx, tag, payload...)
}

// Send is the Facade using the default dispatcher.
func Send(ctx context.Context, m Message) error {
	return Default().Send(ctx, m)
}
