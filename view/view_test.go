package view

import "testing"

func TestSizeAndBytes(t *testing.T) {
	v := Of([]byte{1, 2, 3})
	if v.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", v.Size())
	}
	if got := v.Bytes(); len(got) != 3 || got[0] != 1 {
		t.Fatalf("Bytes() = %v", got)
	}
}

func TestAdvance(t *testing.T) {
	v := Of([]byte{1, 2, 3, 4})
	rest := v.Advance(2)
	if rest.Size() != 2 || rest.Bytes()[0] != 3 {
		t.Fatalf("Advance(2) = %v, want [3 4]", rest.Bytes())
	}
}

func TestAdvancePastEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic advancing past the end of the view")
		}
	}()
	Of([]byte{1}).Advance(2)
}

func TestSubspan(t *testing.T) {
	v := Of([]byte{1, 2, 3})

	rest, ok := v.Subspan(1)
	if !ok || rest.Size() != 2 || rest.Bytes()[0] != 2 {
		t.Fatalf("Subspan(1) = %v, %v", rest, ok)
	}

	if _, ok := v.Subspan(4); ok {
		t.Fatal("Subspan(4) should fail on a 3-byte view")
	}
	if _, ok := v.Subspan(-1); ok {
		t.Fatal("Subspan(-1) should fail")
	}

	exact, ok := v.Subspan(3)
	if !ok || exact.Size() != 0 {
		t.Fatalf("Subspan(3) on a 3-byte view should yield an empty, ok view")
	}
}

func TestSubspanN(t *testing.T) {
	v := Of([]byte{1, 2, 3, 4, 5})

	window, ok := v.SubspanN(1, 2)
	if !ok || window.Size() != 2 || window.Bytes()[0] != 2 {
		t.Fatalf("SubspanN(1,2) = %v, %v", window, ok)
	}

	if _, ok := v.SubspanN(1, 10); ok {
		t.Fatal("SubspanN(1,10) should fail: window runs past the view's end")
	}
}

func TestBeginDiff(t *testing.T) {
	v := Of([]byte{1, 2, 3, 4, 5})
	rest := v.Advance(2)
	if got := BeginDiff(rest, v); got != 2 {
		t.Fatalf("BeginDiff(rest, v) = %d, want 2", got)
	}
	if got := BeginDiff(v, v); got != 0 {
		t.Fatalf("BeginDiff(v, v) = %d, want 0", got)
	}
}
