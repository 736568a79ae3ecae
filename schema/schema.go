// Package schema declares the Schema collaborator the tiler consumes but
// does not own: per-dimension domain/tile-extent metadata, the global tile
// cell order, and per-attribute element size, type, and fill value. Schema
// loading and validation are an external concern; this package only
// declares the interface and a small in-memory implementation useful for
// tests and the demo CLI.
package schema

import (
	"fmt"

	"github.com/pavlosantoniou/tiledb/coord"
)

// DType tags an attribute's element type.
type DType uint8

const (
	TUint8 DType = iota
	TInt8
	TUint16
	TInt16
	TUint32
	TInt32
	TUint64
	TInt64
	TFloat32
	TFloat64
)

var typeSizes = map[DType]uint64{
	TUint8: 1, TInt8: 1,
	TUint16: 2, TInt16: 2,
	TUint32: 4, TInt32: 4,
	TUint64: 8, TInt64: 8,
	TFloat32: 4, TFloat64: 8,
}

// Sizeof returns the byte size of one element of the given type.
func Sizeof(t DType) uint64 {
	return typeSizes[t]
}

// Attribute describes one fixed-size attribute's storage metadata.
type Attribute struct {
	Name     string
	Type     DType
	CellSize uint64 // bytes per element; equals Sizeof(Type) for scalar types
	VarSize  bool
	Fill     []byte // length CellSize; fixed-size attributes only
}

// Schema is the metadata collaborator consumed by the tiler: dimension
// domains/extents, tile order, and attribute lookup.
type Schema[T coord.Int] interface {
	// DimNum returns the number of dimensions, D >= 1.
	DimNum() int

	// TileOrder returns the array's global tile cell order.
	TileOrder() coord.Order

	// DomainLo and DomainHi return the domain's inclusive bounds per dim.
	DomainLo(dim int) T
	DomainHi(dim int) T

	// TileExtent returns the tile side length along dim, > 0.
	TileExtent(dim int) T

	// TileNumInRange returns the number of tiles intersecting [lo,hi], if
	// the schema can compute it directly; ok is false when the schema has
	// no such shortcut and the tiler should derive it from domain/extent.
	TileNumInRange(lo, hi coord.Point[T]) (count uint64, ok bool)

	// IsAttr reports whether name is a recognized attribute.
	IsAttr(name string) bool

	// Attr returns the named attribute's metadata.
	Attr(name string) (Attribute, bool)
}

// Static is a concrete, in-memory Schema implementation suitable for tests
// and the benchmark CLI: fixed-field metadata with no storage or versioning
// machinery behind it.
type Static[T coord.Int] struct {
	Dims    int
	Lo, Hi  coord.Point[T]
	Extents coord.Point[T]
	Order   coord.Order
	Attrs   map[string]Attribute
}

// NewStatic constructs a Static schema, validating at construction that
// dimensions line up and every tile extent is positive.
func NewStatic[T coord.Int](lo, hi, extents coord.Point[T], order coord.Order, attrs []Attribute) *Static[T] {
	d := len(lo)
	if d == 0 || len(hi) != d || len(extents) != d {
		panic(fmt.Sprintf("schema: inconsistent dimensionality lo=%d hi=%d ext=%d", len(lo), len(hi), len(extents)))
	}
	for i := 0; i < d; i++ {
		if extents[i] <= 0 {
			panic(fmt.Sprintf("schema: tile extent for dim %d must be positive, got %v", i, extents[i]))
		}
		if lo[i] > hi[i] {
			panic(fmt.Sprintf("schema: domain lo > hi on dim %d", i))
		}
	}
	m := make(map[string]Attribute, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a
	}
	return &Static[T]{Dims: d, Lo: lo.Duplicate(), Hi: hi.Duplicate(), Extents: extents.Duplicate(), Order: order, Attrs: m}
}

func (s *Static[T]) DimNum() int             { return s.Dims }
func (s *Static[T]) TileOrder() coord.Order  { return s.Order }
func (s *Static[T]) DomainLo(dim int) T      { return s.Lo[dim] }
func (s *Static[T]) DomainHi(dim int) T      { return s.Hi[dim] }
func (s *Static[T]) TileExtent(dim int) T    { return s.Extents[dim] }

// TileNumInRange always defers to the tiler's own per-dimension formula;
// Static carries no precomputed tile-grid shortcut.
func (s *Static[T]) TileNumInRange(lo, hi coord.Point[T]) (uint64, bool) {
	return 0, false
}

func (s *Static[T]) IsAttr(name string) bool {
	_, ok := s.Attrs[name]
	return ok
}

func (s *Static[T]) Attr(name string) (Attribute, bool) {
	a, ok := s.Attrs[name]
	return a, ok
}
