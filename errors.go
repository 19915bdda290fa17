package xwire

import "fmt"

// ErrUnknownTag marks a tag outside the declared set. At the dispatch
// boundary it is returned as a plain error before any side effect; inside an
// exhaustive branch it indicates model/dispatcher skew and is raised through
// the guard.
type ErrUnknownTag struct{ tag Tag }

func (e ErrUnknownTag) Error() string { return fmt.Sprintf("unknown tag: %q", string(e.tag)) }

// Tag returns the offending tag.
func (e ErrUnknownTag) Tag() Tag { return e.tag }

// ErrTagPayloadMismatch marks a payload whose shape belongs to a different
// variant than the supplied tag.
type ErrTagPayloadMismatch struct {
	tag     Tag
	payload any
}

func (e ErrTagPayloadMismatch) Error() string {
	return fmt.Sprintf("payload %T is not valid for tag %q", e.payload, string(e.tag))
}

// Tag returns the tag the payload failed to correlate with.
func (e ErrTagPayloadMismatch) Tag() Tag { return e.tag }

// ErrMissingPayload marks an omitted payload on a variant that requires one.
type ErrMissingPayload struct{ tag Tag }

func (e ErrMissingPayload) Error() string {
	return fmt.Sprintf("tag %q requires a payload", string(e.tag))
}

// Tag returns the tag whose payload was omitted.
func (e ErrMissingPayload) Tag() Tag { return e.tag }

var (
	ErrDispatcherClosed            = fmt.Errorf("xwire: dispatcher is closed")
	ErrNoSinkConfigured            = fmt.Errorf("xwire: no sink configured")
	ErrObserverPoolShutdownTimeout = fmt.Errorf("xwire: observer pool shutdown timed out")
)

// ErrUnknownSink is returned by NewSink for unregistered sink names.
type ErrUnknownSink struct{ name string }

func (e ErrUnknownSink) Error() string { return fmt.Sprintf("unknown sink: %s", e.name) }
