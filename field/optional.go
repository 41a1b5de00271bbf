package field

import (
	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Optional binds a field with explicit presence (proto3's "optional"
// keyword): the host slot is a *T, and the field is written whenever that
// pointer is non-nil, even if the pointee is T's zero value. This is the
// one singular-field shape proto3 default-value elision does not apply to.
type Optional[M any, T any] struct {
	number wire.FieldNumber
	codec  codec.Codec[T]
	get    func(*M) *T
	set    func(*M, *T)
}

// NewOptional builds an Optional field bound to number.
func NewOptional[M any, T any](number wire.FieldNumber, c codec.Codec[T], get func(*M) *T, set func(*M, *T)) *Optional[M, T] {
	return &Optional[M, T]{number: number, codec: c, get: get, set: set}
}

func (f *Optional[M, T]) Number() wire.FieldNumber { return f.number }
func (f *Optional[M, T]) WireType() wire.Type      { return f.codec.WireType() }
func (f *Optional[M, T]) AcceptsWireType(wt wire.Type) bool {
	return wt == f.codec.WireType()
}

func (f *Optional[M, T]) Size(msg *M) int {
	v := f.get(msg)
	if v == nil {
		return 0
	}
	return tagSize(f.number, f.WireType()) + f.codec.Size(*v)
}

func (f *Optional[M, T]) EncodeUnsafe(msg *M, dst view.View) view.View {
	v := f.get(msg)
	if v == nil {
		return dst
	}
	rest := encodeTagUnsafe(f.number, f.WireType(), dst)
	return f.codec.EncodeUnsafe(*v, rest)
}

func (f *Optional[M, T]) Encode(msg *M, dst view.View) (view.View, error) {
	v := f.get(msg)
	if v == nil {
		return dst, nil
	}
	rest, err := encodeTag(f.number, f.WireType(), dst)
	if err != nil {
		return view.View{}, err
	}
	return f.codec.Encode(*v, rest)
}

func (f *Optional[M, T]) DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error) {
	if wt != f.codec.WireType() {
		return view.View{}, wire.ErrWireTypeMismatch
	}
	v, rest, err := f.codec.Decode(src)
	if err != nil {
		return view.View{}, err
	}
	f.set(msg, &v)
	return rest, nil
}
