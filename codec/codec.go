// Package codec implements the composable codec algebra that every wire
// primitive in this module satisfies: encode, decode, and skip, each in a
// safe (bounds-checked, error-returning) and an unsafe (trusting,
// panic-on-violation) form.
//
// Codec descriptors are stateless; a codec.Codec[T] value carries no data of
// its own beyond (occasionally) the element codec it wraps or a constant
// bound fixed at construction (Varint's maximum run length), and is safe to
// share across goroutines and call concurrently.
package codec

import (
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Codec is the contract every wire primitive satisfies for a logical value
// type T: encode, decode, and skip, parameterized by safety mode.
//
// EncodeUnsafe/DecodeUnsafe/SkipUnsafe trust the caller: dst (for encode) or
// src (for decode/skip) must have at least Size(v) bytes remaining. Violating
// that guarantee is not handled; it surfaces as a Go slice-bounds panic, not
// a silently wrong result.
//
// Encode/Decode/Skip are the bounds-checked counterparts: they never read or
// write past the view they are given, and report failure via a non-nil
// error drawn from the package wire error taxonomy.
type Codec[T any] interface {
	// WireType reports the wire type this codec frames its payload with.
	WireType() wire.Type

	// Size reports the number of bytes Encode/EncodeUnsafe would write for v,
	// not including any field tag.
	Size(v T) int

	// EncodeUnsafe writes v's wire encoding at the front of dst and returns
	// the remainder.
	EncodeUnsafe(v T, dst view.View) view.View
	// Encode is the safe counterpart of EncodeUnsafe.
	Encode(v T, dst view.View) (view.View, error)

	// DecodeUnsafe reads a value from the front of src and returns it with
	// the remainder.
	DecodeUnsafe(src view.View) (T, view.View)
	// Decode is the safe counterpart of DecodeUnsafe.
	Decode(src view.View) (T, view.View, error)

	// SkipUnsafe advances past one encoded value without decoding it.
	SkipUnsafe(src view.View) view.View
	// Skip is the safe counterpart of SkipUnsafe.
	Skip(src view.View) (view.View, error)
}
