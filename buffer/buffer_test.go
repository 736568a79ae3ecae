package buffer

import "testing"

func TestStaticBytes(t *testing.T) {
	s := Static([]byte{1, 2, 3})
	if got := s.Bytes(); string(got) != string([]byte{1, 2, 3}) {
		t.Errorf("Bytes() = %v, want [1 2 3]", got)
	}
}
