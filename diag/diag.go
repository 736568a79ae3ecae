// Package diag provides small diagnostic helpers for inspecting a Tiler's
// in-memory footprint via github.com/DmitriyVTitov/size.
package diag

import (
	"github.com/DmitriyVTitov/size"
)

// Sizeof estimates the in-memory footprint, in bytes, of the passed value
// via recursive reflection. Intended for logging/benchmark use, not for
// any correctness-sensitive path.
func Sizeof(v interface{}) int {
	return size.Of(v)
}
