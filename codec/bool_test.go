package codec

import (
	"testing"

	"github.com/anirudhraja/wirecodec/view"
)

func TestBoolRoundTrip(t *testing.T) {
	c := NewBool()
	for _, v := range []bool{true, false} {
		buf := make([]byte, 1)
		c.EncodeUnsafe(v, view.Of(buf))
		got, remaining := c.DecodeUnsafe(view.Of(buf))
		if got != v || remaining.Size() != 0 {
			t.Fatalf("round trip of %v: got %v, remaining=%d", v, got, remaining.Size())
		}
	}
}

func TestBoolSizeIsAlwaysOne(t *testing.T) {
	c := NewBool()
	if c.Size(true) != 1 || c.Size(false) != 1 {
		t.Fatalf("Size(bool) must always be 1")
	}
}

func TestBoolDecodesAnyNonzeroAsTrue(t *testing.T) {
	c := NewBool()
	got, _ := c.DecodeUnsafe(view.Of([]byte{0x2A}))
	if got != true {
		t.Fatalf("decode(0x2A) = %v, want true (any nonzero is true)", got)
	}
}
