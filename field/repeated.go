package field

import (
	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Repeated binds a repeated scalar field that encodes unpacked: one tag and
// value per element. Decode tolerates the packed alternate too, since a
// well-formed decoder must accept either form regardless of which one a
// given field was declared with.
type Repeated[M any, T any] struct {
	number wire.FieldNumber
	elem   codec.Codec[T]
	array  codec.Array[T]
	get    func(*M) []T
	app    func(*M, T)
}

// NewRepeated builds an unpacked-encoding Repeated field bound to number.
// app appends one decoded element to the host slice.
func NewRepeated[M any, T any](number wire.FieldNumber, elem codec.Codec[T], get func(*M) []T, app func(*M, T)) *Repeated[M, T] {
	return &Repeated[M, T]{number: number, elem: elem, array: codec.NewArray(elem), get: get, app: app}
}

func (f *Repeated[M, T]) Number() wire.FieldNumber { return f.number }
func (f *Repeated[M, T]) WireType() wire.Type      { return f.elem.WireType() }
func (f *Repeated[M, T]) AcceptsWireType(wt wire.Type) bool {
	return wt == f.elem.WireType() || wt == wire.Bytes
}

func (f *Repeated[M, T]) Size(msg *M) int {
	total := 0
	for _, v := range f.get(msg) {
		total += tagSize(f.number, f.WireType()) + f.elem.Size(v)
	}
	return total
}

func (f *Repeated[M, T]) EncodeUnsafe(msg *M, dst view.View) view.View {
	rest := dst
	for _, v := range f.get(msg) {
		rest = encodeTagUnsafe(f.number, f.WireType(), rest)
		rest = f.elem.EncodeUnsafe(v, rest)
	}
	return rest
}

func (f *Repeated[M, T]) Encode(msg *M, dst view.View) (view.View, error) {
	rest := dst
	var err error
	for _, v := range f.get(msg) {
		rest, err = encodeTag(f.number, f.WireType(), rest)
		if err != nil {
			return view.View{}, err
		}
		rest, err = f.elem.Encode(v, rest)
		if err != nil {
			return view.View{}, err
		}
	}
	return rest, nil
}

func (f *Repeated[M, T]) DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error) {
	switch {
	case wt == f.elem.WireType():
		v, rest, err := f.elem.Decode(src)
		if err != nil {
			return view.View{}, err
		}
		f.app(msg, v)
		return rest, nil
	case wt == wire.Bytes:
		xs, rest, err := f.array.Decode(src)
		if err != nil {
			return view.View{}, err
		}
		for _, v := range xs {
			f.app(msg, v)
		}
		return rest, nil
	default:
		return view.View{}, wire.ErrWireTypeMismatch
	}
}
