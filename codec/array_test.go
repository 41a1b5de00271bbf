package codec

import (
	"reflect"
	"testing"

	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

func TestArrayPackedRoundTrip(t *testing.T) {
	a := NewArray[uint32](NewVarint[uint32]())
	xs := []uint32{1, 2, 300, 4}

	buf := make([]byte, a.Size(xs))
	rest := a.EncodeUnsafe(xs, view.Of(buf))
	if rest.Size() != 0 {
		t.Fatalf("remaining = %d, want 0", rest.Size())
	}

	got, remaining, err := a.Decode(view.Of(buf))
	if err != nil || remaining.Size() != 0 {
		t.Fatalf("Decode: err=%v, remaining=%d", err, remaining.Size())
	}
	if !reflect.DeepEqual(got, xs) {
		t.Fatalf("Decode = %v, want %v", got, xs)
	}
}

func TestArrayLengthPrefixOverrunOnStraddlingElement(t *testing.T) {
	a := NewArray[uint32](NewVarint[uint32]())

	// Claim a 1-byte payload but supply a 2-byte varint (300): the element
	// decode would read past the claimed boundary.
	buf := []byte{0x01, 0xAC, 0x02}
	_, _, err := a.Decode(view.Of(buf))
	if err != wire.ErrLengthPrefixOverrun {
		t.Fatalf("Decode(straddling element): err = %v, want ErrLengthPrefixOverrun", err)
	}
}

func TestArrayLengthPrefixOverrunOnShortInput(t *testing.T) {
	a := NewArray[uint32](NewVarint[uint32]())
	// Claims 10 bytes but only 2 remain.
	buf := []byte{0x0A, 0x01, 0x02}
	_, _, err := a.Decode(view.Of(buf))
	if err != wire.ErrLengthPrefixOverrun {
		t.Fatalf("Decode(truncated block): err = %v, want ErrLengthPrefixOverrun", err)
	}
}

func TestArraySkipLaw(t *testing.T) {
	a := NewArray[uint32](NewVarint[uint32]())
	xs := []uint32{10, 20, 30}
	buf := make([]byte, a.Size(xs))
	rest := a.EncodeUnsafe(xs, view.Of(buf))
	written := view.BeginDiff(rest, view.Of(buf))

	_, decodedRemaining, _ := a.Decode(view.Of(buf[:written]))
	skipped, err := a.Skip(view.Of(buf[:written]))
	if err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if skipped.Size() != decodedRemaining.Size() {
		t.Fatalf("Skip left %d bytes, Decode left %d", skipped.Size(), decodedRemaining.Size())
	}
}
