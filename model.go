package xwire

// Tag identifies a message variant. The set of tags is closed and declared
// below; there is no dynamic registration.
type Tag string

const (
	// TagRename renames the remote record. Payload: string (optional,
	// defaults to "").
	TagRename Tag = "rename"
	// TagCount updates the remote counter. Payload: number (required).
	TagCount Tag = "count"
)

// variant declares one tag/payload pairing of the model.
type variant struct {
	tag Tag
	// required rejects omitted payloads; otherwise def is substituted.
	required bool
	// def is the payload substituted when an optional payload is omitted.
	def any
	// check validates the payload shape and returns its canonical form.
	check func(v any) (any, bool)
}

// allTags preserves declaration order for Tags().
var allTags = []Tag{TagRename, TagCount}

var variants = map[Tag]variant{
	TagRename: {tag: TagRename, def: "", check: stringPayload},
	TagCount:  {tag: TagCount, required: true, check: numberPayload},
}

// Tags returns the declared tag set in declaration order.
func Tags() []Tag {
	out := make([]Tag, len(allTags))
	copy(out, allTags)
	return out
}

// KnownTag reports whether tag belongs to the declared set.
func KnownTag(tag Tag) bool {
	_, ok := variants[tag]
	return ok
}

// ValidPayload reports whether payload has the shape required by tag.
// Unknown tags and mismatched shapes classify negative; the predicate never
// fails open.
func ValidPayload(tag Tag, payload any) bool {
	vs, ok := variants[tag]
	if !ok {
		return false
	}
	_, ok = vs.check(payload)
	return ok
}

// DefaultPayload returns the declared default payload for tag, if the
// variant permits omission.
func DefaultPayload(tag Tag) (any, bool) {
	vs, ok := variants[tag]
	if !ok || vs.required {
		return nil, false
	}
	return vs.def, true
}

// Correlate rebuilds a single Message from a tag and an independently bound
// payload, validating the pair against the model. At most one payload value
// may be given; zero values means the payload was omitted at the call site.
//
// Failures are boundary errors: ErrUnknownTag for a tag outside the declared
// set, ErrMissingPayload when a required payload is omitted, and
// ErrTagPayloadMismatch when the payload shape does not belong to the tag.
func Correlate(tag Tag, payload ...any) (Message, error) {
	vs, ok := variants[tag]
	if !ok {
		return Message{}, ErrUnknownTag{tag: tag}
	}

	if len(payload) == 0 {
		if vs.required {
			return Message{}, ErrMissingPayload{tag: tag}
		}
		return Message{tag: tag, payload: vs.def}, nil
	}
	if len(payload) > 1 {
		return Message{}, ErrTagPayloadMismatch{tag: tag, payload: payload[1]}
	}

	canonical, ok := vs.check(payload[0])
	if !ok {
		return Message{}, ErrTagPayloadMismatch{tag: tag, payload: payload[0]}
	}
	return Message{tag: tag, payload: canonical}, nil
}

// Classify reports whether m is a well-formed message of the model and, if
// so, which variant it belongs to. The zero Message classifies negative.
func Classify(m Message) (Tag, bool) {
	if !ValidPayload(m.tag, m.payload) {
		return "", false
	}
	return m.tag, true
}

// stringPayload accepts string payloads only.
func stringPayload(v any) (any, bool) {
	s, ok := v.(string)
	return s, ok
}

// numberPayload accepts Go numeric kinds and canonicalizes to float64, the
// shape numbers take after wire decoding.
func numberPayload(v any) (any, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return nil, false
}
