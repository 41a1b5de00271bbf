package codec

import (
	"testing"

	"github.com/anirudhraja/wirecodec/view"
)

func TestZigzagMinusOne(t *testing.T) {
	c := NewZigzag32()
	buf := make([]byte, 10)
	rest := c.EncodeUnsafe(-1, view.Of(buf))
	written := buf[:view.BeginDiff(rest, view.Of(buf))]
	if len(written) != 1 || written[0] != 0x01 {
		t.Fatalf("encode(zigzag(-1)) = %v, want [0x01]", written)
	}

	v, remaining := c.DecodeUnsafe(view.Of(written))
	if v != -1 || remaining.Size() != 0 {
		t.Fatalf("decode = %d, remaining = %d; want -1, 0", v, remaining.Size())
	}
}

func TestZigzagRoundTrip32(t *testing.T) {
	c := NewZigzag32()
	for _, v := range []int32{0, 1, -1, 2, -2, 1 << 20, -(1 << 20), 1<<31 - 1, -(1 << 31)} {
		buf := make([]byte, 10)
		rest, err := c.Encode(v, view.Of(buf))
		if err != nil {
			t.Fatalf("Encode(%d): %v", v, err)
		}
		n := view.BeginDiff(rest, view.Of(buf))
		got, remaining, err := c.Decode(view.Of(buf[:n]))
		if err != nil || got != v || remaining.Size() != 0 {
			t.Fatalf("round trip of %d: got %d, err=%v", v, got, err)
		}
	}
}

func TestZigzagSmallMagnitudeStaysShort(t *testing.T) {
	c := NewZigzag64()
	for _, v := range []int64{0, -1, 1, -2, 2} {
		if got := c.Size(v); got != 1 {
			t.Errorf("Size(%d) = %d, want 1 (zigzag keeps small magnitudes short)", v, got)
		}
	}
}
