package xwire

import (
	"context"
)

// HealthChecker provides health status for production monitoring.
type HealthChecker interface {
	Health(ctx context.Context) HealthStatus
}

// API represents the complete xwire surface for extensibility.
type API interface {
	Dispatch(ctx context.Context, tag Tag, payload ...any) error
	Send(ctx context.Context, m Message) error
	Close(ctx context.Context) error
	GetMetrics() Metrics
	Health(ctx context.Context) HealthStatus
	AddObserver(obs Observer)
	RemoveObserver(obs Observer)
}
