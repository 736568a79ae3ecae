// Package tilererr defines the tiler's error taxonomy.  Sentinel errors are
// wrapped with github.com/pkg/errors so callers get both a stable kind to
// switch on (via errors.Is) and a human-readable context string attached at
// the point of failure. The tiler never retries and never returns a
// partial success; failures bubble up immediately.
package tilererr

import (
	"github.com/pkg/errors"
)

// Sentinel errors, one per kind in the error taxonomy.  These are the values
// errors.Is callers should compare against; the errors actually returned
// from the tiler wrap one of these with context via Wrapf.
var (
	// ErrInvalidTileID is returned when a requested id >= tile_num.
	ErrInvalidTileID = errors.New("invalid tile id")

	// ErrUnknownAttribute is returned when an attribute name is not
	// recognized by the schema.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrVarSizedNotSupported is returned for var-sized attributes; these
	// are out of scope and not implemented.
	ErrVarSizedNotSupported = errors.New("variable-sized attributes are not supported")

	// ErrTileInitFailure wraps a failure from the tile's init_unfiltered.
	ErrTileInitFailure = errors.New("tile initialization failed")

	// ErrTileWriteFailure wraps a failure from a positioned or appending
	// tile write; the tile is left in a partially written state and must
	// be discarded by the caller.
	ErrTileWriteFailure = errors.New("tile write failed")

	// ErrSchemaMismatch is a construction-time error: the buffers map
	// references an attribute the schema does not recognize.
	ErrSchemaMismatch = errors.New("buffers reference an attribute unknown to the schema")
)

// Wrap attaches a human-readable context string to one of the sentinel
// errors above, preserving it as the Cause so callers can still recover the
// kind with errors.Is/errors.Cause.
func Wrap(sentinel error, context string) error {
	return errors.Wrap(sentinel, context)
}

// Wrapf is Wrap with printf-style formatting of the context string.
func Wrapf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}

// Is reports whether err (or anything it wraps) is the given sentinel.
func Is(err, sentinel error) bool {
	return errors.Is(err, sentinel)
}
