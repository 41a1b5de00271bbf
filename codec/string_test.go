package codec

import (
	"testing"

	"github.com/anirudhraja/wirecodec/view"
)

func TestStringTwice(t *testing.T) {
	c := String{}
	buf := make([]byte, c.Size("twice"))
	rest := c.EncodeUnsafe("twice", view.Of(buf))
	if rest.Size() != 0 {
		t.Fatalf("remaining = %d, want 0", rest.Size())
	}
	want := []byte{0x05, 't', 'w', 'i', 'c', 'e'}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("encode(\"twice\") = %v, want %v", buf, want)
		}
	}

	got, remaining, err := c.Decode(view.Of(buf))
	if err != nil || got != "twice" || remaining.Size() != 0 {
		t.Fatalf("decode = %q, err=%v, remaining=%d", got, err, remaining.Size())
	}
}

func TestBytesDoesNotAliasInput(t *testing.T) {
	c := Bytes{}
	original := []byte{1, 2, 3}
	buf := make([]byte, c.Size(original))
	c.EncodeUnsafe(original, view.Of(buf))

	decoded, _ := c.DecodeUnsafe(view.Of(buf))
	decoded[0] = 99
	if buf[1] != 1 {
		t.Fatalf("mutating the decoded slice leaked into the source buffer")
	}
}

func TestStringEmpty(t *testing.T) {
	c := String{}
	if c.Size("") != 1 {
		t.Fatalf("Size(\"\") = %d, want 1 (just the zero length prefix)", c.Size(""))
	}
	buf := []byte{0x00}
	got, remaining, err := c.Decode(view.Of(buf))
	if err != nil || got != "" || remaining.Size() != 0 {
		t.Fatalf("decode empty string: got %q, err=%v", got, err)
	}
}
