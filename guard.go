package xwire

// Unreachable is the exhaustiveness guard for dispatch over the declared tag
// set. It belongs in the default branch of every exhaustive switch on Tag: if
// each variant has a branch, no value can flow here. Reaching it means the
// model gained a variant without a matching branch (or a caller bypassed the
// boundary entirely), and proceeding would emit a malformed or empty frame,
// so it aborts the call.
//
// Coverage is checked before ship by the model-driven test that dispatches
// one valid sample per declared tag; a missing branch trips this guard under
// `go test` rather than in production.
func Unreachable(tag Tag) {
	panic(ErrUnknownTag{tag: tag})
}
