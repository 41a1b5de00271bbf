package field

import (
	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Nested binds a singular embedded-message field: the host slot is a *N,
// and the field is written whenever that pointer is non-nil. The message
// itself is framed length-delimited, like any other Bytes-wire-type value.
type Nested[M any, N any] struct {
	number wire.FieldNumber
	inner  MessageCodec[N]
	get    func(*M) *N
	set    func(*M, *N)
}

// NewNested builds a Nested field bound to number, delegating the embedded
// message's own fields to inner.
func NewNested[M any, N any](number wire.FieldNumber, inner MessageCodec[N], get func(*M) *N, set func(*M, *N)) *Nested[M, N] {
	return &Nested[M, N]{number: number, inner: inner, get: get, set: set}
}

func (f *Nested[M, N]) Number() wire.FieldNumber { return f.number }
func (f *Nested[M, N]) WireType() wire.Type      { return wire.Bytes }
func (f *Nested[M, N]) AcceptsWireType(wt wire.Type) bool {
	return wt == wire.Bytes
}

func (f *Nested[M, N]) Size(msg *M) int {
	v := f.get(msg)
	if v == nil {
		return 0
	}
	inner := f.inner.SizeFields(v)
	return tagSize(f.number, wire.Bytes) + wire.VarintSize(uint64(inner)) + inner
}

func (f *Nested[M, N]) EncodeUnsafe(msg *M, dst view.View) view.View {
	v := f.get(msg)
	if v == nil {
		return dst
	}
	inner := f.inner.SizeFields(v)
	rest := encodeTagUnsafe(f.number, wire.Bytes, dst)
	rest = codec.LenVarint.EncodeUnsafe(uint64(inner), rest)
	return f.inner.EncodeFieldsUnsafe(v, rest)
}

func (f *Nested[M, N]) Encode(msg *M, dst view.View) (view.View, error) {
	v := f.get(msg)
	if v == nil {
		return dst, nil
	}
	inner := f.inner.SizeFields(v)
	rest, err := encodeTag(f.number, wire.Bytes, dst)
	if err != nil {
		return view.View{}, err
	}
	rest, err = codec.LenVarint.Encode(uint64(inner), rest)
	if err != nil {
		return view.View{}, err
	}
	return f.inner.EncodeFields(v, rest)
}

func (f *Nested[M, N]) DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error) {
	if wt != wire.Bytes {
		return view.View{}, wire.ErrWireTypeMismatch
	}
	n, rest, err := codec.LenVarint.Decode(src)
	if err != nil {
		return view.View{}, err
	}
	frame, ok := rest.SubspanN(0, int(n))
	if !ok {
		return view.View{}, wire.ErrLengthPrefixOverrun
	}
	tail, _ := rest.Subspan(int(n))

	var nv N
	if _, err := f.inner.DecodeFields(&nv, frame); err != nil {
		return view.View{}, err
	}
	f.set(msg, &nv)
	return tail, nil
}
