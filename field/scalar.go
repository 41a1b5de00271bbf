package field

import (
	"bytes"

	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Scalar binds a singular scalar field: a varint, fixed-width, zigzag,
// bool, enum, or string codec applied to a getter/setter pair (bytes fields
// use BytesScalar, since []byte is not comparable). Per proto3
// default-value elision, a field holding T's zero value is omitted from the
// wire entirely.
type Scalar[M any, T comparable] struct {
	number wire.FieldNumber
	codec  codec.Codec[T]
	get    func(*M) T
	set    func(*M, T)
}

// NewScalar builds a Scalar field bound to number, using c to encode/decode
// the value and get/set to read and write it on the host message.
func NewScalar[M any, T comparable](number wire.FieldNumber, c codec.Codec[T], get func(*M) T, set func(*M, T)) *Scalar[M, T] {
	return &Scalar[M, T]{number: number, codec: c, get: get, set: set}
}

func (s *Scalar[M, T]) Number() wire.FieldNumber { return s.number }
func (s *Scalar[M, T]) WireType() wire.Type      { return s.codec.WireType() }
func (s *Scalar[M, T]) AcceptsWireType(wt wire.Type) bool {
	return wt == s.codec.WireType()
}

func (s *Scalar[M, T]) Size(msg *M) int {
	v := s.get(msg)
	var zero T
	if v == zero {
		return 0
	}
	return tagSize(s.number, s.WireType()) + s.codec.Size(v)
}

func (s *Scalar[M, T]) EncodeUnsafe(msg *M, dst view.View) view.View {
	v := s.get(msg)
	var zero T
	if v == zero {
		return dst
	}
	rest := encodeTagUnsafe(s.number, s.WireType(), dst)
	return s.codec.EncodeUnsafe(v, rest)
}

func (s *Scalar[M, T]) Encode(msg *M, dst view.View) (view.View, error) {
	v := s.get(msg)
	var zero T
	if v == zero {
		return dst, nil
	}
	rest, err := encodeTag(s.number, s.WireType(), dst)
	if err != nil {
		return view.View{}, err
	}
	return s.codec.Encode(v, rest)
}

func (s *Scalar[M, T]) DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error) {
	if wt != s.codec.WireType() {
		return view.View{}, wire.ErrWireTypeMismatch
	}
	v, rest, err := s.codec.Decode(src)
	if err != nil {
		return view.View{}, err
	}
	s.set(msg, v)
	return rest, nil
}

// BytesScalar binds a singular bytes field. []byte is not a comparable type,
// so it cannot instantiate Scalar[M, T comparable]; this is the same binder
// specialized to check the zero value with bytes.Equal instead of ==, the
// same way codec.Bytes is string's Array[byte] specialization hand-rolled
// for the same reason.
type BytesScalar[M any] struct {
	number wire.FieldNumber
	codec  codec.Codec[[]byte]
	get    func(*M) []byte
	set    func(*M, []byte)
}

// NewBytesScalar builds a BytesScalar field bound to number.
func NewBytesScalar[M any](number wire.FieldNumber, c codec.Codec[[]byte], get func(*M) []byte, set func(*M, []byte)) *BytesScalar[M] {
	return &BytesScalar[M]{number: number, codec: c, get: get, set: set}
}

func (s *BytesScalar[M]) Number() wire.FieldNumber { return s.number }
func (s *BytesScalar[M]) WireType() wire.Type      { return s.codec.WireType() }
func (s *BytesScalar[M]) AcceptsWireType(wt wire.Type) bool {
	return wt == s.codec.WireType()
}

func (s *BytesScalar[M]) Size(msg *M) int {
	v := s.get(msg)
	if bytes.Equal(v, nil) {
		return 0
	}
	return tagSize(s.number, s.WireType()) + s.codec.Size(v)
}

func (s *BytesScalar[M]) EncodeUnsafe(msg *M, dst view.View) view.View {
	v := s.get(msg)
	if bytes.Equal(v, nil) {
		return dst
	}
	rest := encodeTagUnsafe(s.number, s.WireType(), dst)
	return s.codec.EncodeUnsafe(v, rest)
}

func (s *BytesScalar[M]) Encode(msg *M, dst view.View) (view.View, error) {
	v := s.get(msg)
	if bytes.Equal(v, nil) {
		return dst, nil
	}
	rest, err := encodeTag(s.number, s.WireType(), dst)
	if err != nil {
		return view.View{}, err
	}
	return s.codec.Encode(v, rest)
}

func (s *BytesScalar[M]) DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error) {
	if wt != s.codec.WireType() {
		return view.View{}, wire.ErrWireTypeMismatch
	}
	v, rest, err := s.codec.Decode(src)
	if err != nil {
		return view.View{}, err
	}
	s.set(msg, v)
	return rest, nil
}
