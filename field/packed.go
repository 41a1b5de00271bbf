package field

import (
	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Packed binds a repeated scalar field that encodes packed: a single tag
// followed by a length-delimited block of concatenated element encodings.
// Decode tolerates the unpacked alternate too. An empty slice is elided
// entirely, matching proto3's treatment of a repeated field with no
// elements as absent.
type Packed[M any, T any] struct {
	number wire.FieldNumber
	elem   codec.Codec[T]
	array  codec.Array[T]
	get    func(*M) []T
	app    func(*M, T)
}

// NewPacked builds a packed-encoding Packed field bound to number.
func NewPacked[M any, T any](number wire.FieldNumber, elem codec.Codec[T], get func(*M) []T, app func(*M, T)) *Packed[M, T] {
	return &Packed[M, T]{number: number, elem: elem, array: codec.NewArray(elem), get: get, app: app}
}

func (f *Packed[M, T]) Number() wire.FieldNumber { return f.number }
func (f *Packed[M, T]) WireType() wire.Type      { return wire.Bytes }
func (f *Packed[M, T]) AcceptsWireType(wt wire.Type) bool {
	return wt == wire.Bytes || wt == f.elem.WireType()
}

func (f *Packed[M, T]) Size(msg *M) int {
	xs := f.get(msg)
	if len(xs) == 0 {
		return 0
	}
	return tagSize(f.number, wire.Bytes) + f.array.Size(xs)
}

func (f *Packed[M, T]) EncodeUnsafe(msg *M, dst view.View) view.View {
	xs := f.get(msg)
	if len(xs) == 0 {
		return dst
	}
	rest := encodeTagUnsafe(f.number, wire.Bytes, dst)
	return f.array.EncodeUnsafe(xs, rest)
}

func (f *Packed[M, T]) Encode(msg *M, dst view.View) (view.View, error) {
	xs := f.get(msg)
	if len(xs) == 0 {
		return dst, nil
	}
	rest, err := encodeTag(f.number, wire.Bytes, dst)
	if err != nil {
		return view.View{}, err
	}
	return f.array.Encode(xs, rest)
}

func (f *Packed[M, T]) DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error) {
	switch {
	case wt == wire.Bytes:
		xs, rest, err := f.array.Decode(src)
		if err != nil {
			return view.View{}, err
		}
		for _, v := range xs {
			f.app(msg, v)
		}
		return rest, nil
	case wt == f.elem.WireType():
		v, rest, err := f.elem.Decode(src)
		if err != nil {
			return view.View{}, err
		}
		f.app(msg, v)
		return rest, nil
	default:
		return view.View{}, wire.ErrWireTypeMismatch
	}
}
