package tiler

import (
	"github.com/pavlosantoniou/tiledb/copyplan"
	"github.com/pavlosantoniou/tiledb/tilebuf"
	"github.com/pavlosantoniou/tiledb/tilererr"
)

// formatVersion is the unfiltered tile format tag passed to
// Tile.InitUnfiltered. The tiler writes a single, stable format; codec
// versioning beyond that is a downstream concern.
const formatVersion uint8 = 1

// GetTile materializes tile id for the named attribute into tile: it
// initializes the tile at its correct byte size, fills every cell with the
// attribute's fill value, then overlays the subarray's contribution.
// On any failure the tile is left untouched for the
// precondition checks, or partially written for a downstream write
// failure; callers must discard it in the latter case.
func (t *Tiler[T]) GetTile(id uint64, name string, tile tilebuf.Tile) error {
	if id >= t.geom.TileNum {
		return tilererr.Wrapf(tilererr.ErrInvalidTileID, "id %d, tile_num %d", id, t.geom.TileNum)
	}
	attr, ok := t.schema.Attr(name)
	if !ok {
		return tilererr.Wrapf(tilererr.ErrUnknownAttribute, "attribute %q", name)
	}
	if attr.VarSize {
		return tilererr.Wrapf(tilererr.ErrVarSizedNotSupported, "attribute %q", name)
	}
	qb, ok := t.buffers[name]
	if !ok {
		return tilererr.Wrapf(tilererr.ErrUnknownAttribute, "no buffer supplied for attribute %q", name)
	}

	cellsPerTile := t.geom.TileExtent.Prod()
	totalSize := cellsPerTile * attr.CellSize
	if err := tile.InitUnfiltered(formatVersion, attr.Type, totalSize, attr.CellSize, 0); err != nil {
		return tilererr.Wrapf(tilererr.ErrTileInitFailure, "tile %d attribute %q: %v", id, name, err)
	}

	if err := fillTile(tile, attr.Fill, cellsPerTile, attr.CellSize, t.fillBatchCells); err != nil {
		return tilererr.Wrapf(tilererr.ErrTileWriteFailure, "fill tile %d attribute %q: %v", id, name, err)
	}

	plan, err := copyplan.Build(t.geom, id)
	if err != nil {
		return err
	}
	if err := overlay(tile, qb.Bytes(), plan, attr.CellSize); err != nil {
		return tilererr.Wrapf(tilererr.ErrTileWriteFailure, "overlay tile %d attribute %q: %v", id, name, err)
	}

	tile.ResetOffset()
	return nil
}

// fillTile overwrites the entire tile with fill, one batch of up to
// batchCells cells at a time. When fill is the all-zero pattern, the fill
// pass is skipped entirely: a freshly allocated tile already reads as
// zero.
func fillTile(tile tilebuf.Tile, fill []byte, cellsPerTile, cellSize, batchCells uint64) error {
	if isZero(fill) {
		return nil
	}
	if batchCells == 0 {
		batchCells = DefaultFillBatchCells
	}
	if batchCells > cellsPerTile {
		batchCells = cellsPerTile
	}
	batch := make([]byte, batchCells*cellSize)
	for off := uint64(0); off < uint64(len(batch)); off += cellSize {
		copy(batch[off:off+cellSize], fill)
	}

	var written uint64
	for written < cellsPerTile {
		cells := batchCells
		if remaining := cellsPerTile - written; remaining < cells {
			cells = remaining
		}
		n := cells * cellSize
		if _, err := tile.WriteAt(batch[:n], int64(written*cellSize)); err != nil {
			return err
		}
		written += cells
	}
	return nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// overlay writes the subarray's contribution into the tile by driving the
// plan's N-D loop in row-major order over dim_ranges, regardless of the
// array's actual sub/tile order, issuing one contiguous write per
// innermost slab.
func overlay(tile tilebuf.Tile, src []byte, plan copyplan.Plan, cellSize uint64) error {
	runBytes := plan.CopyEl * cellSize

	if len(plan.RetainedDims) == 0 {
		subOff := plan.SubStartEl * cellSize
		tileOff := plan.TileStartEl * cellSize
		_, err := tile.WriteAt(src[subOff:subOff+runBytes], int64(tileOff))
		return err
	}

	nd := len(plan.RetainedDims)
	extents := make([]uint64, nd)
	for i := range plan.RetainedDims {
		extents[i] = plan.DimRanges[i][1] - plan.DimRanges[i][0] + 1
	}
	counters := make([]uint64, nd)

	for {
		var subAdd, tileAdd uint64
		for i, dim := range plan.RetainedDims {
			subAdd += counters[i] * plan.SubStridesEl[dim]
			tileAdd += counters[i] * plan.TileStridesEl[dim]
		}
		subOff := (plan.SubStartEl + subAdd) * cellSize
		tileOff := (plan.TileStartEl + tileAdd) * cellSize
		if _, err := tile.WriteAt(src[subOff:subOff+runBytes], int64(tileOff)); err != nil {
			return err
		}

		// Standard carry: advance the innermost (last) retained dim; when
		// it wraps, advance the dim to its left and reset dims to the
		// right.
		carry := true
		for i := nd - 1; i >= 0 && carry; i-- {
			counters[i]++
			if counters[i] < extents[i] {
				carry = false
			} else {
				counters[i] = 0
			}
		}
		if carry {
			return nil
		}
	}
}
