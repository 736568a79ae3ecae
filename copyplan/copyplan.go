// Package copyplan computes, for a given tile id, the starting offsets
// into source and destination, the largest contiguous run length, and the
// N-D iteration box over whatever dimensions could not be fused into that
// run. The fusion rules are order-aware and dimension-agnostic: they
// collapse whichever outer dimensions happen to line up between the
// source buffer and the tile, rather than hand-coding a fixed set of
// shapes.
package copyplan

import (
	"github.com/pavlosantoniou/tiledb/coord"
	"github.com/pavlosantoniou/tiledb/geometry"
)

// Plan is the set of offsets and run lengths needed to overlay one tile's
// contribution from a source buffer.
type Plan struct {
	CopyEl        uint64      // element count per innermost slab memcpy
	DimRanges     [][2]uint64 // [lo,hi] inclusive per retained dim; lo always 0
	SubStartEl    uint64
	TileStartEl   uint64
	SubStridesEl  []uint64
	TileStridesEl []uint64

	// RetainedDims records which original dimension each DimRanges entry
	// corresponds to, so a caller driving the N-D loop knows which stride
	// to advance by at each position. It is nil when DimRanges is the
	// single-pass sentinel [[0,0]] (fully fused, or the D==1 case), since
	// a single memcpy needs no per-dimension stride advance.
	RetainedDims []int
}

// Build computes the CopyPlan for tile id against the precomputed geometry.
func Build[T coord.Int](g *geometry.Geometry[T], id uint64) (Plan, error) {
	tileBox, err := g.TileSubarray(id)
	if err != nil {
		return Plan{}, err
	}

	subInTile, ok := g.SubRange.Intersect(tileBox)
	if !ok {
		// A tile id returned by the resolver always intersects the
		// subarray by construction (tile_num only counts intersecting
		// tiles); an empty intersection here would be a geometry bug.
		return Plan{}, nil
	}

	d := g.D
	width := make([]uint64, d)
	for i := 0; i < d; i++ {
		width[i] = subInTile.Extent(i)
	}

	var subStartEl, tileStartEl uint64
	for dim := 0; dim < d; dim++ {
		subStartEl += uint64(subInTile.Lo[dim]-g.SubRange.Lo[dim]) * g.SubStridesEl[dim]
		tileStartEl += uint64(subInTile.Lo[dim]-tileBox.Lo[dim]) * g.TileStridesEl[dim]
	}

	plan := Plan{
		SubStartEl:    subStartEl,
		TileStartEl:   tileStartEl,
		SubStridesEl:  g.SubStridesEl,
		TileStridesEl: g.TileStridesEl,
	}

	tileExtentEl := make([]uint64, d)
	for i := 0; i < d; i++ {
		tileExtentEl[i] = uint64(g.TileExtent[i])
	}
	subExtentEl := g.SubRange.Extents()

	switch {
	case d == 1:
		plan.CopyEl = width[0]
		plan.DimRanges = [][2]uint64{{0, 0}}

	case g.SubOrder != g.TileOrder:
		plan.CopyEl = 1
		plan.DimRanges = make([][2]uint64, d)
		plan.RetainedDims = make([]int, d)
		for i := 0; i < d; i++ {
			plan.DimRanges[i] = [2]uint64{0, width[i] - 1}
			plan.RetainedDims[i] = i
		}

	case g.TileOrder == coord.RowMajor:
		plan.CopyEl = width[d-1]
		stop := d - 1 // index of the first (innermost) retained dim
		for k := d - 2; k >= 0; k-- {
			kk := k + 1
			if width[kk] == tileExtentEl[kk] && width[kk] == subExtentEl[kk] {
				plan.CopyEl *= width[k]
				stop = k
				continue
			}
			break
		}
		if stop == 0 {
			plan.DimRanges = [][2]uint64{{0, 0}}
		} else {
			plan.DimRanges = make([][2]uint64, stop)
			plan.RetainedDims = make([]int, stop)
			for i := 0; i < stop; i++ {
				plan.DimRanges[i] = [2]uint64{0, width[i] - 1}
				plan.RetainedDims[i] = i
			}
		}

	default: // ColMajor
		plan.CopyEl = width[0]
		stop := 0 // index of the last (innermost) retained dim
		for k := 1; k < d; k++ {
			kk := k - 1
			if width[kk] == tileExtentEl[kk] && width[kk] == subExtentEl[kk] {
				plan.CopyEl *= width[k]
				stop = k
				continue
			}
			break
		}
		if stop == d-1 {
			plan.DimRanges = [][2]uint64{{0, 0}}
		} else {
			plan.DimRanges = make([][2]uint64, d-1-stop)
			plan.RetainedDims = make([]int, d-1-stop)
			for i := stop + 1; i < d; i++ {
				plan.DimRanges[i-stop-1] = [2]uint64{0, width[i] - 1}
				plan.RetainedDims[i-stop-1] = i
			}
		}
	}

	return plan, nil
}
