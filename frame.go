package xwire

// Wire method names and fixed fields of the sink protocol.
const (
	MethodRename      = "rename"
	MethodUpdateCount = "updateCount"

	// renameRecordID is the fixed record identifier the remote side expects
	// on rename frames.
	renameRecordID = "0xB120"

	// countScale converts the caller-facing counter into the remote unit.
	countScale = 1000
)

// Frame is the transport-shaped value forwarded to a Sink. Frames are plain
// serializable values with no type relationship to Message beyond the
// per-tag transforms in the dispatcher.
type Frame interface {
	// FrameMethod returns the wire method, letting adapters key streams or
	// partitions without inspecting the frame body.
	FrameMethod() string
}

// RenameFrame is the sink message produced for "rename".
type RenameFrame struct {
	Method string `json:"method" msgpack:"method"`
	ID     string `json:"id" msgpack:"id"`
	Record string `json:"record" msgpack:"record"`
}

func (f RenameFrame) FrameMethod() string { return f.Method }

// CountFrame is the sink message produced for "count".
type CountFrame struct {
	Method string  `json:"method" msgpack:"method"`
	Count  float64 `json:"count" msgpack:"count"`
}

func (f CountFrame) FrameMethod() string { return f.Method }
