package wire

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsAreDistinctSentinels(t *testing.T) {
	all := []error{
		ErrBufferUnderflow,
		ErrBufferOverflow,
		ErrMalformedVarint,
		ErrLengthPrefixOverrun,
		ErrUnsupportedWireType,
		ErrWireTypeMismatch,
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			if errors.Is(a, b) {
				t.Errorf("%v should not satisfy errors.Is against %v", a, b)
			}
		}
	}
}

func TestErrorsWrapCleanly(t *testing.T) {
	wrapped := fmt.Errorf("message Student: %w", ErrMalformedVarint)
	if !errors.Is(wrapped, ErrMalformedVarint) {
		t.Fatal("fmt.Errorf(\"%w\", ...)-wrapped sentinel should satisfy errors.Is")
	}
}
