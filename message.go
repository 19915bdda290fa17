package xwire

// Message is the composite over all declared variants. Both fields are
// unexported: the per-variant constructors and Correlate are the only ways to
// obtain a live Message, so tag and payload always sit on the model's
// diagonal. Values are transient; they are built at a call boundary and
// consumed by the dispatcher in the same call.
type Message struct {
	tag     Tag
	payload any
}

// Tag returns the message's discriminant.
func (m Message) Tag() Tag { return m.tag }

// Rename builds a "rename" message carrying the record to rename to.
func Rename(record string) Message {
	return Message{tag: TagRename, payload: record}
}

// RenameDefault builds a "rename" message with the declared default record.
func RenameDefault() Message {
	return Message{tag: TagRename, payload: variants[TagRename].def}
}

// Count builds a "count" message carrying the counter value.
func Count(n float64) Message {
	return Message{tag: TagCount, payload: n}
}

// Variant pairs a tag with its payload type at compile time. The tag field is
// unexported, so the only inhabited descriptors are the ones declared below;
// a Variant[P] paired with a payload of another variant's type does not
// compile. This keeps tag and payload independently bindable without widening
// the accepted calls to the tag x payload cross-product.
type Variant[P any] struct {
	tag Tag
}

// Tag returns the descriptor's tag.
func (v Variant[P]) Tag() Tag { return v.tag }

var (
	// VariantRename is the typed descriptor for "rename".
	VariantRename = Variant[string]{tag: TagRename}
	// VariantCount is the typed descriptor for "count".
	VariantCount = Variant[float64]{tag: TagCount}
)
