package geometry

import (
	"reflect"
	"testing"

	"github.com/pavlosantoniou/tiledb/coord"
	"github.com/pavlosantoniou/tiledb/schema"
	"github.com/pavlosantoniou/tiledb/subarray"
)

type fixedSchema[T coord.Int] struct {
	lo, hi, ext coord.Point[T]
	order       coord.Order
}

func (f fixedSchema[T]) DimNum() int            { return len(f.lo) }
func (f fixedSchema[T]) TileOrder() coord.Order { return f.order }
func (f fixedSchema[T]) DomainLo(dim int) T     { return f.lo[dim] }
func (f fixedSchema[T]) DomainHi(dim int) T     { return f.hi[dim] }
func (f fixedSchema[T]) TileExtent(dim int) T   { return f.ext[dim] }
func (f fixedSchema[T]) TileNumInRange(lo, hi coord.Point[T]) (uint64, bool) {
	return 0, false
}
func (f fixedSchema[T]) IsAttr(name string) bool              { return true }
func (f fixedSchema[T]) Attr(name string) (schema.Attribute, bool) { return schema.Attribute{}, true }

// S1: 1D, dom=[1,10], ext=5, sub=[3,6].
func TestGeometryS1(t *testing.T) {
	sc := fixedSchema[int32]{lo: coord.Point[int32]{1}, hi: coord.Point[int32]{10}, ext: coord.Point[int32]{5}, order: coord.RowMajor}
	sub := subarray.NewUnary[int32](coord.Point[int32]{3}, coord.Point[int32]{6}, coord.RowMajor)
	g, err := New[int32](sc, sub)
	if err != nil {
		t.Fatal(err)
	}
	if g.TileNum != 2 {
		t.Errorf("TileNum = %d, want 2", g.TileNum)
	}
	if !reflect.DeepEqual(g.FirstSubTileCoords, []uint64{0}) {
		t.Errorf("FirstSubTileCoords = %v, want [0]", g.FirstSubTileCoords)
	}

	tc0, err := g.TileCoords(0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tc0, []uint64{0}) {
		t.Errorf("TileCoords(0) = %v, want [0]", tc0)
	}
	box0, err := g.TileSubarray(0)
	if err != nil {
		t.Fatal(err)
	}
	if box0.Lo[0] != 1 || box0.Hi[0] != 5 {
		t.Errorf("TileSubarray(0) = %v, want [1,5]", box0)
	}

	box1, err := g.TileSubarray(1)
	if err != nil {
		t.Fatal(err)
	}
	if box1.Lo[0] != 6 || box1.Hi[0] != 10 {
		t.Errorf("TileSubarray(1) = %v, want [6,10]", box1)
	}
}

// S5/S6 setup: 2D, dom=(1..10,1..30), ext=(5,10).
func TestGeometryS5Strides(t *testing.T) {
	sc := fixedSchema[int32]{
		lo: coord.Point[int32]{1, 1}, hi: coord.Point[int32]{10, 30}, ext: coord.Point[int32]{5, 10}, order: coord.RowMajor,
	}
	sub := subarray.NewUnary[int32](coord.Point[int32]{4, 18}, coord.Point[int32]{6, 22}, coord.RowMajor)
	g, err := New[int32](sc, sub)
	if err != nil {
		t.Fatal(err)
	}
	if g.TileNum != 4 {
		t.Errorf("TileNum = %d, want 4", g.TileNum)
	}
	if !reflect.DeepEqual(g.TileStridesEl, []uint64{10, 1}) {
		t.Errorf("TileStridesEl = %v, want [10 1]", g.TileStridesEl)
	}
	if !reflect.DeepEqual(g.SubStridesEl, []uint64{5, 1}) {
		t.Errorf("SubStridesEl = %v, want [5 1]", g.SubStridesEl)
	}
}

func TestGeometryPanicsOnSubarrayOutsideDomain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for subarray outside domain")
		}
	}()
	sc := fixedSchema[int32]{lo: coord.Point[int32]{1}, hi: coord.Point[int32]{10}, ext: coord.Point[int32]{5}, order: coord.RowMajor}
	sub := subarray.NewUnary[int32](coord.Point[int32]{0}, coord.Point[int32]{3}, coord.RowMajor)
	New[int32](sc, sub)
}

func TestGeometryPanicsOnDimMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for dimension mismatch")
		}
	}()
	sc := fixedSchema[int32]{lo: coord.Point[int32]{1, 1}, hi: coord.Point[int32]{10, 10}, ext: coord.Point[int32]{5, 5}, order: coord.RowMajor}
	sub := subarray.NewUnary[int32](coord.Point[int32]{1}, coord.Point[int32]{3}, coord.RowMajor)
	New[int32](sc, sub)
}
