package codec

import (
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Enum32 is the codec for enumerations with a 32-bit declared underlying
// type: the signed varint of the numeric value. Decoding yields whatever
// value is representable in T, including numbers no declared enumerant
// names — required for forward compatibility with newer writers.
type Enum32[T ~int32] struct{ inner SVarint32 }

func NewEnum32[T ~int32]() Enum32[T] { return Enum32[T]{inner: NewSVarint32()} }

func (Enum32[T]) WireType() wire.Type { return wire.Varint }
func (c Enum32[T]) Size(v T) int      { return c.inner.Size(int32(v)) }

func (c Enum32[T]) EncodeUnsafe(v T, dst view.View) view.View {
	return c.inner.EncodeUnsafe(int32(v), dst)
}
func (c Enum32[T]) Encode(v T, dst view.View) (view.View, error) {
	return c.inner.Encode(int32(v), dst)
}
func (c Enum32[T]) DecodeUnsafe(src view.View) (T, view.View) {
	v, rest := c.inner.DecodeUnsafe(src)
	return T(v), rest
}
func (c Enum32[T]) Decode(src view.View) (T, view.View, error) {
	v, rest, err := c.inner.Decode(src)
	return T(v), rest, err
}
func (c Enum32[T]) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c Enum32[T]) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }

// Enum64 is the codec for enumerations declared with a 64-bit underlying
// type.
type Enum64[T ~int64] struct{ inner SVarint64 }

func NewEnum64[T ~int64]() Enum64[T] { return Enum64[T]{inner: NewSVarint64()} }

func (Enum64[T]) WireType() wire.Type { return wire.Varint }
func (c Enum64[T]) Size(v T) int      { return c.inner.Size(int64(v)) }

func (c Enum64[T]) EncodeUnsafe(v T, dst view.View) view.View {
	return c.inner.EncodeUnsafe(int64(v), dst)
}
func (c Enum64[T]) Encode(v T, dst view.View) (view.View, error) {
	return c.inner.Encode(int64(v), dst)
}
func (c Enum64[T]) DecodeUnsafe(src view.View) (T, view.View) {
	v, rest := c.inner.DecodeUnsafe(src)
	return T(v), rest
}
func (c Enum64[T]) Decode(src view.View) (T, view.View, error) {
	v, rest, err := c.inner.Decode(src)
	return T(v), rest, err
}
func (c Enum64[T]) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c Enum64[T]) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }
