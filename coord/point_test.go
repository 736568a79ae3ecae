package coord

import (
	"reflect"
	"testing"
)

func TestElementStridesRowMajor(t *testing.T) {
	strides := ElementStrides([]uint64{5, 10}, RowMajor)
	if !reflect.DeepEqual(strides, []uint64{10, 1}) {
		t.Errorf("got %v, want [10 1]", strides)
	}
}

func TestElementStridesColMajor(t *testing.T) {
	strides := ElementStrides([]uint64{5, 10}, ColMajor)
	if !reflect.DeepEqual(strides, []uint64{1, 5}) {
		t.Errorf("got %v, want [1 5]", strides)
	}
}

func TestBoxIntersect(t *testing.T) {
	a := NewBox(Point[int32]{1, 1}, Point[int32]{5, 5})
	b := NewBox(Point[int32]{3, -2}, Point[int32]{10, 3})
	got, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected non-empty intersection")
	}
	want := NewBox(Point[int32]{3, 1}, Point[int32]{5, 3})
	if !reflect.DeepEqual(got.Lo, want.Lo) || !reflect.DeepEqual(got.Hi, want.Hi) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBoxIntersectEmpty(t *testing.T) {
	a := NewBox(Point[int32]{0, 0}, Point[int32]{1, 1})
	b := NewBox(Point[int32]{5, 5}, Point[int32]{6, 6})
	if _, ok := a.Intersect(b); ok {
		t.Error("expected empty intersection")
	}
}

func TestBoxNumCells(t *testing.T) {
	b := NewBox(Point[int32]{0, 0, 0}, Point[int32]{4, 9, 1})
	if got, want := b.NumCells(), uint64(5*10*2); got != want {
		t.Errorf("NumCells() = %d, want %d", got, want)
	}
}
