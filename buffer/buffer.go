// Package buffer declares the QueryBuffer collaborator: a contiguous byte
// region, one per attribute, laid out in the subarray's traversal order
// over the subarray box.
package buffer

// QueryBuffer exposes the fixed-size attribute value region the tiler reads
// from. The tiler never mutates it.
type QueryBuffer interface {
	// Bytes returns the buffer's contiguous backing region.
	Bytes() []byte
}

// Static is a concrete QueryBuffer wrapping an in-memory byte slice,
// sufficient for tests and the benchmark CLI.
type Static []byte

func (s Static) Bytes() []byte { return []byte(s) }
