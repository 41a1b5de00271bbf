// Package view implements a non-owning, bounded window over a contiguous
// byte slice, with cursor arithmetic for the codecs built on top of it.
//
// A View never copies or grows the bytes it wraps; Subspan and Advance only
// re-slice. Safe codecs check a cursor advance against the view's length
// before touching a byte; unsafe codecs skip the check and rely on Go's own
// slice bounds check to turn a caller's broken guarantee into a panic rather
// than an out-of-bounds read.
package view

// View is a bounded, non-owning window over a caller-owned byte slice.
type View struct {
	b []byte
}

// Of wraps b in a View starting at its first byte.
func Of(b []byte) View {
	return View{b: b}
}

// Size reports the number of bytes remaining in the view.
func (v View) Size() int {
	return len(v.b)
}

// Bytes exposes the view's remaining bytes. Writing through the returned
// slice mutates the same storage the view (and any view derived from it)
// reads from.
func (v View) Bytes() []byte {
	return v.b
}

// Advance drops the leading n bytes without a bounds check. Passing an n
// larger than Size panics, per Go's own slice bounds check.
func (v View) Advance(n int) View {
	return View{b: v.b[n:]}
}

// First returns the leading n bytes without a bounds check.
func (v View) First(n int) []byte {
	return v.b[:n]
}

// Subspan returns the view with the leading offset bytes dropped. ok is
// false if offset is negative or larger than Size, in which case no bytes
// are consumed and the returned view is the zero value.
func (v View) Subspan(offset int) (View, bool) {
	if offset < 0 || offset > len(v.b) {
		return View{}, false
	}
	return View{b: v.b[offset:]}, true
}

// SubspanN returns a bounded window of exactly length bytes starting at
// offset. ok is false if the window would run past the view's end.
func (v View) SubspanN(offset, length int) (View, bool) {
	if offset < 0 || length < 0 || offset+length > len(v.b) {
		return View{}, false
	}
	return View{b: v.b[offset : offset+length]}, true
}

// BeginDiff returns a.begin - b.begin: the number of bytes consumed moving
// from b to a. Both views must derive from the same backing array via a
// chain of Subspan/Advance calls on one another, which is how every codec in
// this module produces its "remainder" views.
func BeginDiff(a, b View) int {
	return cap(b.b) - cap(a.b)
}
