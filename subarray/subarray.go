// Package subarray declares the Subarray collaborator: the user's unary
// N-D range of interest and its traversal order over the source buffers.
// Range parsing and validity are an external concern; only the
// unary-range shape used by the tiler is declared here.
package subarray

import "github.com/pavlosantoniou/tiledb/coord"

// Subarray is the single-range collaborator the tiler consumes.
type Subarray[T coord.Int] interface {
	// Layout returns the traversal order of the source buffers.
	Layout() coord.Order

	// Range returns the unary N-D range as a Box, [sub_lo[d], sub_hi[d]].
	Range() coord.Box[T]
}

// Unary is a concrete Subarray holding exactly one N-D range; multi-range
// subarrays are out of scope.
type Unary[T coord.Int] struct {
	box   coord.Box[T]
	order coord.Order
}

// NewUnary constructs a Unary subarray over [lo, hi] with the given order.
func NewUnary[T coord.Int](lo, hi coord.Point[T], order coord.Order) *Unary[T] {
	return &Unary[T]{box: coord.NewBox(lo, hi), order: order}
}

func (u *Unary[T]) Layout() coord.Order   { return u.order }
func (u *Unary[T]) Range() coord.Box[T]   { return u.box }
