// Package geometry precomputes the fixed arrays a tiler derives once at
// construction from its schema and subarray, and the functions that turn a
// linear tile id into N-D tile coordinates and a global coordinate box.
package geometry

import (
	"fmt"

	"github.com/pavlosantoniou/tiledb/coord"
	"github.com/pavlosantoniou/tiledb/schema"
	"github.com/pavlosantoniou/tiledb/subarray"
)

// Geometry holds the precomputed, immutable-after-construction arrays, plus
// the inputs the resolver and copy-plan builder need to turn a tile id into
// boxes and offsets.
type Geometry[T coord.Int] struct {
	D int

	TileNum uint64

	FirstSubTileCoords  []uint64
	TileStridesEl       []uint64
	SubStridesEl        []uint64
	SubTileCoordOffsets []uint64

	// NumTilesInSub is the tile-grid shape inside the subarray, per dim;
	// it is what SubTileCoordOffsets is built from and what the resolver
	// uses to split a linear id back into N-D tile coordinates.
	NumTilesInSub []uint64

	DomLo      coord.Point[T]
	TileExtent coord.Point[T]
	SubRange   coord.Box[T]
	TileOrder  coord.Order
	SubOrder   coord.Order
}

// New derives the geometry from a schema and subarray reference.
// Precondition violations (non-empty dims, subarray within domain, positive
// extents) are programmer errors and are fatal here rather than returned
// as a recoverable error.
func New[T coord.Int](sc schema.Schema[T], sub subarray.Subarray[T]) (*Geometry[T], error) {
	d := sc.DimNum()
	if d == 0 {
		panic("geometry: schema has zero dimensions")
	}
	subBox := sub.Range()
	if subBox.NumDims() != d {
		panic(fmt.Sprintf("geometry: subarray has %d dims, schema has %d", subBox.NumDims(), d))
	}

	domLo := make(coord.Point[T], d)
	tileExt := make(coord.Point[T], d)
	for dim := 0; dim < d; dim++ {
		lo, hi := sc.DomainLo(dim), sc.DomainHi(dim)
		ext := sc.TileExtent(dim)
		if ext <= 0 {
			panic(fmt.Sprintf("geometry: tile extent for dim %d must be positive", dim))
		}
		if subBox.Lo[dim] < lo || subBox.Hi[dim] > hi || subBox.Lo[dim] > subBox.Hi[dim] {
			panic(fmt.Sprintf("geometry: subarray dim %d [%v,%v] is outside domain [%v,%v]", dim, subBox.Lo[dim], subBox.Hi[dim], lo, hi))
		}
		domLo[dim] = lo
		tileExt[dim] = ext
	}

	g := &Geometry[T]{
		D:          d,
		DomLo:      domLo,
		TileExtent: tileExt,
		SubRange:   subBox,
		TileOrder:  sc.TileOrder(),
		SubOrder:   sub.Layout(),
	}

	g.FirstSubTileCoords = make([]uint64, d)
	g.NumTilesInSub = make([]uint64, d)
	numTilesTotal, ok := sc.TileNumInRange(subBox.Lo, subBox.Hi)
	computeFromFormula := !ok
	if computeFromFormula {
		numTilesTotal = 1
	}
	for dim := 0; dim < d; dim++ {
		// first_sub_tile_coords[d] = (sub_lo[d] - dom_lo[d]) / ext[d], truncated
		// division on T; subtraction before division, safe since the
		// subarray-within-domain check above guarantees a non-negative
		// numerator for signed T.
		num := subBox.Lo[dim] - domLo[dim]
		g.FirstSubTileCoords[dim] = uint64(num / tileExt[dim])

		firstTile := (subBox.Lo[dim] - domLo[dim]) / tileExt[dim]
		lastTile := (subBox.Hi[dim] - domLo[dim]) / tileExt[dim]
		n := uint64(lastTile-firstTile) + 1
		g.NumTilesInSub[dim] = n
		if computeFromFormula {
			numTilesTotal *= n
		}
	}
	g.TileNum = numTilesTotal

	subExtents := subBox.Extents()
	tileExtentsEl := make([]uint64, d)
	for dim := 0; dim < d; dim++ {
		tileExtentsEl[dim] = uint64(tileExt[dim])
	}
	g.TileStridesEl = coord.ElementStrides(tileExtentsEl, g.TileOrder)
	g.SubStridesEl = coord.ElementStrides(subExtents, g.SubOrder)
	g.SubTileCoordOffsets = coord.ElementStrides(g.NumTilesInSub, g.TileOrder)

	return g, nil
}

// TileCoords splits a linear tile id into its N-D coordinates inside the
// subarray's tile domain, using repeated division/modulo against
// SubTileCoordOffsets. The axis iteration direction depends on
// tile order: row-major walks dims left-to-right, column-major right-to-
// left, so that each walk starts at the dim with the largest offset.
func (g *Geometry[T]) TileCoords(id uint64) ([]uint64, error) {
	if id >= g.TileNum {
		return nil, fmt.Errorf("tile id %d >= tile_num %d", id, g.TileNum)
	}
	coords := make([]uint64, g.D)
	remaining := id
	if g.TileOrder == coord.RowMajor {
		for dim := 0; dim < g.D; dim++ {
			coords[dim] = remaining / g.SubTileCoordOffsets[dim]
			remaining %= g.SubTileCoordOffsets[dim]
		}
	} else {
		for dim := g.D - 1; dim >= 0; dim-- {
			coords[dim] = remaining / g.SubTileCoordOffsets[dim]
			remaining %= g.SubTileCoordOffsets[dim]
		}
	}
	return coords, nil
}

// TileSubarray returns the tile's global coordinate box. The box may
// extend past dom_hi[d]; tiles always span a full extent regardless
// of where the array domain ends, and cells past the domain are handled as
// fill-valued by the materializer.
func (g *Geometry[T]) TileSubarray(id uint64) (coord.Box[T], error) {
	tc, err := g.TileCoords(id)
	if err != nil {
		return coord.Box[T]{}, err
	}
	lo := make(coord.Point[T], g.D)
	hi := make(coord.Point[T], g.D)
	for dim := 0; dim < g.D; dim++ {
		globalTile := tc[dim] + g.FirstSubTileCoords[dim]
		lo[dim] = T(globalTile)*g.TileExtent[dim] + g.DomLo[dim]
		hi[dim] = lo[dim] + g.TileExtent[dim] - 1
	}
	return coord.Box[T]{Lo: lo, Hi: hi}, nil
}
