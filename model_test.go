package xwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags_DeclaredSet(t *testing.T) {
	tags := Tags()
	require.Equal(t, []Tag{TagRename, TagCount}, tags)

	// Mutating the returned slice must not affect the model.
	tags[0] = "bogus"
	assert.Equal(t, []Tag{TagRename, TagCount}, Tags())
}

func TestKnownTag(t *testing.T) {
	assert.True(t, KnownTag(TagRename))
	assert.True(t, KnownTag(TagCount))
	assert.False(t, KnownTag("unknown"))
	assert.False(t, KnownTag(""))
}

// TestValidPayload_FailClosed checks that classification rejects everything
// outside the declared diagonal: unknown tags, cross-variant payloads, and
// shapes that belong to no variant.
func TestValidPayload_FailClosed(t *testing.T) {
	tests := []struct {
		name    string
		tag     Tag
		payload any
		want    bool
	}{
		{"rename/string", TagRename, "foo", true},
		{"rename/empty string", TagRename, "", true},
		{"rename/number", TagRename, 2, false},
		{"rename/nil", TagRename, nil, false},
		{"rename/bytes", TagRename, []byte("foo"), false},
		{"count/float", TagCount, 2.0, true},
		{"count/int", TagCount, 2, true},
		{"count/string", TagCount, "2", false},
		{"count/nil", TagCount, nil, false},
		{"count/bool", TagCount, true, false},
		{"unknown tag", Tag("unknown"), 41, false},
		{"empty tag", Tag(""), "foo", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPayload(tt.tag, tt.payload))
		})
	}
}

func TestCorrelate_Diagonal(t *testing.T) {
	m, err := Correlate(TagRename, "foo")
	require.NoError(t, err)
	assert.Equal(t, TagRename, m.Tag())

	m, err = Correlate(TagCount, 2)
	require.NoError(t, err)
	assert.Equal(t, TagCount, m.Tag())
	// Numeric payloads canonicalize to float64.
	assert.Equal(t, float64(2), m.payload)
}

func TestCorrelate_CrossPairsRejected(t *testing.T) {
	// Every ordered pair of distinct variants with a value valid only for
	// the other variant.
	_, err := Correlate(TagRename, 2.0)
	var mismatch ErrTagPayloadMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, TagRename, mismatch.Tag())

	_, err = Correlate(TagCount, "foo")
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, TagCount, mismatch.Tag())
}

func TestCorrelate_Omission(t *testing.T) {
	// Defaulted variant substitutes the declared default.
	m, err := Correlate(TagRename)
	require.NoError(t, err)
	assert.Equal(t, "", m.payload)

	// Required variant is rejected, never silently defaulted.
	_, err = Correlate(TagCount)
	var missing ErrMissingPayload
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, TagCount, missing.Tag())
}

func TestCorrelate_UnknownTag(t *testing.T) {
	_, err := Correlate("unknown", 41)
	var unknown ErrUnknownTag
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Tag("unknown"), unknown.Tag())
}

func TestCorrelate_TooManyPayloads(t *testing.T) {
	_, err := Correlate(TagRename, "a", "b")
	assert.Error(t, err)
}

func TestDefaultPayload(t *testing.T) {
	def, ok := DefaultPayload(TagRename)
	require.True(t, ok)
	assert.Equal(t, "", def)

	_, ok = DefaultPayload(TagCount)
	assert.False(t, ok)

	_, ok = DefaultPayload("unknown")
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	tag, ok := Classify(Rename("foo"))
	require.True(t, ok)
	assert.Equal(t, TagRename, tag)

	tag, ok = Classify(Count(3))
	require.True(t, ok)
	assert.Equal(t, TagCount, tag)

	// The zero Message classifies negative.
	_, ok = Classify(Message{})
	assert.False(t, ok)
}

func TestVariantDescriptors(t *testing.T) {
	assert.Equal(t, TagRename, VariantRename.Tag())
	assert.Equal(t, TagCount, VariantCount.Tag())

	// A zero descriptor carries no tag and fails correlation.
	var zero Variant[string]
	_, err := Correlate(zero.Tag(), "foo")
	assert.Error(t, err)
}
