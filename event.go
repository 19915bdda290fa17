package xwire

import (
	"time"
)

// EventType enumerates internal lifecycle events for Observer pattern.
type EventType string

const (
	DispatchStart EventType = "dispatch_start"
	DispatchDone  EventType = "dispatch_done"
	Reject        EventType = "reject"
	Error         EventType = "error"
)

// Event carries telemetry for observers.
type Event struct {
	Type     EventType
	Tag      Tag
	Method   string
	CallID   string
	Duration time.Duration
	Err      error

	// Internal: attached for async dispatch
	observers []Observer
}

// PoolStats returns telemetry about the observer pool.
type PoolStats struct {
	Dropped      uint64 // Events dropped due to full buffer
	Processed    uint64 // Events successfully processed
	ActiveEvents int    // Current queue depth
	Workers      int    // Number of dispatch goroutines
	BufferSize   int    // Channel capacity
}

// Metrics defines observable telemetry for the dispatcher.
type Metrics struct {
	Dispatched       uint64
	Forwarded        uint64
	Rejected         uint64
	Errors           uint64
	EventsDropped    uint64
	AvgForwardTimeMs float64
}

// HealthStatus indicates dispatcher health for liveness probes.
type HealthStatus struct {
	Status    string // "healthy", "degraded", "unhealthy"
	Metrics   Metrics
	Timestamp time.Time
	Message   string
}
