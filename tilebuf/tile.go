// Package tilebuf declares the Tile collaborator the materializer writes
// into: a writable byte buffer with a cursor, a type tag, a cell size, and
// an unfiltered initializer. The downstream filtering, compression, and
// storage write are out of this module's scope; Buffer only carries the
// materialized, unfiltered bytes.
package tilebuf

import (
	"github.com/pavlosantoniou/tiledb/schema"
	"github.com/pavlosantoniou/tiledb/tilererr"
)

// Tile is the consumed collaborator interface the materializer writes through.
type Tile interface {
	InitUnfiltered(formatVersion uint8, dtype schema.DType, totalSize, cellSize uint64, initialOffset int64) error
	Write(src []byte) (int, error)
	WriteAt(src []byte, absOffset int64) (int, error)
	ResetOffset()
	Size() uint64
	Offset() int64
}

// Buffer is a concrete, in-memory Tile.
type Buffer struct {
	data          []byte
	pos           int64
	cellSize      uint64
	dtype         schema.DType
	formatVersion uint8
}

// InitUnfiltered allocates totalSize bytes, unfiltered (no codec applied),
// tagged with dtype and cellSize, and positions the cursor at
// initialOffset.
func (b *Buffer) InitUnfiltered(formatVersion uint8, dtype schema.DType, totalSize, cellSize uint64, initialOffset int64) error {
	if cellSize == 0 || totalSize%cellSize != 0 {
		return tilererr.Wrapf(tilererr.ErrTileInitFailure, "total size %d is not a multiple of cell size %d", totalSize, cellSize)
	}
	b.data = make([]byte, totalSize)
	b.cellSize = cellSize
	b.dtype = dtype
	b.formatVersion = formatVersion
	b.pos = initialOffset
	return nil
}

// Write appends src at the current cursor and advances it.
func (b *Buffer) Write(src []byte) (int, error) {
	return b.WriteAt(src, b.pos)
}

// WriteAt writes src at absOffset and leaves the cursor positioned just
// past the write, so Write and WriteAt can share one cursor.
func (b *Buffer) WriteAt(src []byte, absOffset int64) (int, error) {
	end := absOffset + int64(len(src))
	if absOffset < 0 || end > int64(len(b.data)) {
		return 0, tilererr.Wrapf(tilererr.ErrTileWriteFailure, "write [%d:%d] out of bounds for tile of size %d", absOffset, end, len(b.data))
	}
	n := copy(b.data[absOffset:end], src)
	b.pos = absOffset + int64(n)
	return n, nil
}

// ResetOffset resets the write cursor to 0.
func (b *Buffer) ResetOffset() {
	b.pos = 0
}

// Size returns the tile's total byte size.
func (b *Buffer) Size() uint64 {
	return uint64(len(b.data))
}

// Offset returns the cursor's current position.
func (b *Buffer) Offset() int64 {
	return b.pos
}

// Bytes returns the tile's backing storage, for inspection by tests and by
// downstream filtering/compression/storage steps outside this module.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// CellSize returns the configured element size in bytes.
func (b *Buffer) CellSize() uint64 {
	return b.cellSize
}

// DType returns the configured attribute type tag.
func (b *Buffer) DType() schema.DType {
	return b.dtype
}
