// Package tiler is the dense tiler's public surface: given a schema, a
// subarray, and a buffers map, it decomposes a dense write into
// fixed-shape, regularly-aligned tiles, filling cells outside the
// subarray with each attribute's fill value.
package tiler

import (
	"github.com/pavlosantoniou/tiledb/buffer"
	"github.com/pavlosantoniou/tiledb/copyplan"
	"github.com/pavlosantoniou/tiledb/coord"
	"github.com/pavlosantoniou/tiledb/geometry"
	"github.com/pavlosantoniou/tiledb/schema"
	"github.com/pavlosantoniou/tiledb/subarray"
	"github.com/pavlosantoniou/tiledb/tilererr"
)

// DefaultFillBatchCells is the default size of the prebuilt fill batch the
// materializer repeats to cover a tile. An implementation knob, not a
// contract any caller should depend on.
const DefaultFillBatchCells = 1 << 20

// Tiler is parameterized over the domain integer type T. It borrows its
// schema, subarray, and buffers references; none are owned, and the tiler
// is read-only after construction.
type Tiler[T coord.Int] struct {
	schema   schema.Schema[T]
	subarray subarray.Subarray[T]
	buffers  map[string]buffer.QueryBuffer
	geom     *geometry.Geometry[T]

	fillBatchCells uint64
}

// Option configures a Tiler at construction.
type Option[T coord.Int] func(*Tiler[T])

// WithFillBatchCells overrides DefaultFillBatchCells.
func WithFillBatchCells[T coord.Int](cells uint64) Option[T] {
	return func(t *Tiler[T]) {
		if cells > 0 {
			t.fillBatchCells = cells
		}
	}
}

// New constructs a Tiler from its three collaborator references. It fails
// with ErrSchemaMismatch if buffers references an attribute unknown to the
// schema; all other preconditions (schema shape, subarray-within-domain)
// are programmer errors and are fatal (panic) during geometry
// precomputation.
func New[T coord.Int](sc schema.Schema[T], sub subarray.Subarray[T], buffers map[string]buffer.QueryBuffer, opts ...Option[T]) (*Tiler[T], error) {
	for name := range buffers {
		if !sc.IsAttr(name) {
			return nil, tilererr.Wrapf(tilererr.ErrSchemaMismatch, "buffers map references unknown attribute %q", name)
		}
	}

	g, err := geometry.New[T](sc, sub)
	if err != nil {
		return nil, err
	}

	t := &Tiler[T]{
		schema:         sc,
		subarray:       sub,
		buffers:        buffers,
		geom:           g,
		fillBatchCells: DefaultFillBatchCells,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// TileNum returns the number of tiles intersecting the subarray.
func (t *Tiler[T]) TileNum() uint64 {
	return t.geom.TileNum
}

// CopyPlan returns the read-only CopyPlan for the given tile id, primarily
// for test inspection.
func (t *Tiler[T]) CopyPlan(id uint64) (copyplan.Plan, error) {
	if id >= t.geom.TileNum {
		return copyplan.Plan{}, tilererr.Wrapf(tilererr.ErrInvalidTileID, "id %d, tile_num %d", id, t.geom.TileNum)
	}
	return copyplan.Build(t.geom, id)
}

// TileCoords returns the tile's N-D coordinates inside the subarray's tile
// domain, split out from TileSubarray for callers and tests that only need
// the coordinates.
func (t *Tiler[T]) TileCoords(id uint64) ([]uint64, error) {
	if id >= t.geom.TileNum {
		return nil, tilererr.Wrapf(tilererr.ErrInvalidTileID, "id %d, tile_num %d", id, t.geom.TileNum)
	}
	return t.geom.TileCoords(id)
}

// TileSubarray returns the tile's global coordinate box.
func (t *Tiler[T]) TileSubarray(id uint64) (coord.Box[T], error) {
	if id >= t.geom.TileNum {
		return coord.Box[T]{}, tilererr.Wrapf(tilererr.ErrInvalidTileID, "id %d, tile_num %d", id, t.geom.TileNum)
	}
	return t.geom.TileSubarray(id)
}

// TileIntersection returns the clipped intersection of the subarray with
// the given tile's box, so callers can inspect exactly which cells a tile
// will receive from the source buffer.
func (t *Tiler[T]) TileIntersection(id uint64) (coord.Box[T], error) {
	box, err := t.TileSubarray(id)
	if err != nil {
		return coord.Box[T]{}, err
	}
	inter, ok := t.geom.SubRange.Intersect(box)
	if !ok {
		return coord.Box[T]{}, tilererr.Wrapf(tilererr.ErrInvalidTileID, "tile %d does not intersect subarray", id)
	}
	return inter, nil
}

// FirstSubTileCoords returns the coordinates of the first intersecting
// tile in global tile space.
func (t *Tiler[T]) FirstSubTileCoords() []uint64 { return t.geom.FirstSubTileCoords }

// SubStridesEl returns the per-dimension element strides inside the source
// buffer.
func (t *Tiler[T]) SubStridesEl() []uint64 { return t.geom.SubStridesEl }

// TileStridesEl returns the per-dimension element strides inside a tile.
func (t *Tiler[T]) TileStridesEl() []uint64 { return t.geom.TileStridesEl }

// SubTileCoordOffsets returns the strides used to convert a linear tile id
// to N-D tile coordinates.
func (t *Tiler[T]) SubTileCoordOffsets() []uint64 { return t.geom.SubTileCoordOffsets }
