package codec

import (
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Array is the length-delimited container codec: it encodes a sequence as
// varint(length_in_bytes) followed by the concatenated element encodings,
// and is the basis for packed-repeated scalars (the string/bytes codecs are
// hand-specialized variants of the same shape, see string.go).
//
// Decode bounds every element read to the claimed length prefix by slicing
// out exactly that many bytes before decoding elements from the slice: an
// element that would read past the boundary fails (safe mode) or panics
// (unsafe mode) against the bound, rather than reading into the next field's
// bytes.
type Array[T any] struct {
	Elem Codec[T]
}

// NewArray builds the Array codec for a slice of T, given the codec for one
// element.
func NewArray[T any](elem Codec[T]) Array[T] {
	return Array[T]{Elem: elem}
}

func (Array[T]) WireType() wire.Type { return wire.Bytes }

func (a Array[T]) payloadSize(xs []T) int {
	total := 0
	for _, x := range xs {
		total += a.Elem.Size(x)
	}
	return total
}

func (a Array[T]) Size(xs []T) int {
	payload := a.payloadSize(xs)
	return wire.VarintSize(uint64(payload)) + payload
}

func (a Array[T]) EncodeUnsafe(xs []T, dst view.View) view.View {
	payload := a.payloadSize(xs)
	rest := LenVarint.EncodeUnsafe(uint64(payload), dst)
	for _, x := range xs {
		rest = a.Elem.EncodeUnsafe(x, rest)
	}
	return rest
}

func (a Array[T]) Encode(xs []T, dst view.View) (view.View, error) {
	payload := a.payloadSize(xs)
	rest, err := LenVarint.Encode(uint64(payload), dst)
	if err != nil {
		return view.View{}, err
	}
	for _, x := range xs {
		rest, err = a.Elem.Encode(x, rest)
		if err != nil {
			return view.View{}, err
		}
	}
	return rest, nil
}

func (a Array[T]) DecodeUnsafe(src view.View) ([]T, view.View) {
	n, rest := LenVarint.DecodeUnsafe(src)
	frame := rest.First(int(n))
	tail := rest.Advance(int(n))

	cur := view.Of(frame)
	var out []T
	for cur.Size() > 0 {
		var v T
		v, cur = a.Elem.DecodeUnsafe(cur)
		out = append(out, v)
	}
	return out, tail
}

func (a Array[T]) Decode(src view.View) ([]T, view.View, error) {
	n, rest, err := LenVarint.Decode(src)
	if err != nil {
		return nil, view.View{}, err
	}
	frame, ok := rest.SubspanN(0, int(n))
	if !ok {
		return nil, view.View{}, wire.ErrLengthPrefixOverrun
	}
	tail, _ := rest.Subspan(int(n))

	var out []T
	for frame.Size() > 0 {
		var v T
		v, frame, err = a.Elem.Decode(frame)
		if err != nil {
			return nil, view.View{}, wire.ErrLengthPrefixOverrun
		}
		out = append(out, v)
	}
	return out, tail, nil
}

func (a Array[T]) SkipUnsafe(src view.View) view.View {
	n, rest := LenVarint.DecodeUnsafe(src)
	return rest.Advance(int(n))
}

func (a Array[T]) Skip(src view.View) (view.View, error) {
	n, rest, err := LenVarint.Decode(src)
	if err != nil {
		return view.View{}, err
	}
	out, ok := rest.Subspan(int(n))
	if !ok {
		return view.View{}, wire.ErrLengthPrefixOverrun
	}
	return out, nil
}
