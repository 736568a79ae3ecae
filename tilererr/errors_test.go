package tilererr

import "testing"

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrInvalidTileID, "id %d", 7)
	if !Is(err, ErrInvalidTileID) {
		t.Errorf("Is(%v, ErrInvalidTileID) = false, want true", err)
	}
	if Is(err, ErrUnknownAttribute) {
		t.Error("Is matched the wrong sentinel")
	}
}
