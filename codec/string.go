package codec

import (
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Bytes is the bytes codec: a length-delimited container specialized for
// []byte, doing one bulk copy instead of looping a byte-at-a-time element
// codec over Array[byte].
type Bytes struct{}

func (Bytes) WireType() wire.Type { return wire.Bytes }
func (Bytes) Size(v []byte) int   { return wire.VarintSize(uint64(len(v))) + len(v) }

func (Bytes) EncodeUnsafe(v []byte, dst view.View) view.View {
	rest := LenVarint.EncodeUnsafe(uint64(len(v)), dst)
	copy(rest.First(len(v)), v)
	return rest.Advance(len(v))
}

func (Bytes) Encode(v []byte, dst view.View) (view.View, error) {
	rest, err := LenVarint.Encode(uint64(len(v)), dst)
	if err != nil {
		return view.View{}, err
	}
	if rest.Size() < len(v) {
		return view.View{}, wire.ErrBufferOverflow
	}
	copy(rest.First(len(v)), v)
	out, _ := rest.Subspan(len(v))
	return out, nil
}

func (Bytes) DecodeUnsafe(src view.View) ([]byte, view.View) {
	n, rest := LenVarint.DecodeUnsafe(src)
	data := make([]byte, n)
	copy(data, rest.First(int(n)))
	return data, rest.Advance(int(n))
}

func (Bytes) Decode(src view.View) ([]byte, view.View, error) {
	n, rest, err := LenVarint.Decode(src)
	if err != nil {
		return nil, view.View{}, err
	}
	if rest.Size() < int(n) {
		return nil, view.View{}, wire.ErrLengthPrefixOverrun
	}
	data := make([]byte, n)
	copy(data, rest.First(int(n)))
	out, _ := rest.Subspan(int(n))
	return data, out, nil
}

func (Bytes) SkipUnsafe(src view.View) view.View {
	n, rest := LenVarint.DecodeUnsafe(src)
	return rest.Advance(int(n))
}

func (Bytes) Skip(src view.View) (view.View, error) {
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

// String is the string codec: Bytes with a string/[]byte conversion at the
// boundary. The wire format does not distinguish the two; this codec exists
// so field descriptors can bind a Go string slot directly.
type String struct{}

func (String) WireType() wire.Type { return wire.Bytes }
func (String) Size(v string) int   { return wire.VarintSize(uint64(len(v))) + len(v) }

func (String) EncodeUnsafe(v string, dst view.View) view.View {
	rest := LenVarint.EncodeUnsafe(uint64(len(v)), dst)
	copy(rest.First(len(v)), v)
	return rest.Advance(len(v))
}

func (String) Encode(v string, dst view.View) (view.View, error) {
	rest, err := LenVarint.Encode(uint64(len(v)), dst)
	if err != nil {
		return view.View{}, err
	}
	if rest.Size() < len(v) {
		return view.View{}, wire.ErrBufferOverflow
	}
	copy(rest.First(len(v)), v)
	out, _ := rest.Subspan(len(v))
	return out, nil
}

func (String) DecodeUnsafe(src view.View) (string, view.View) {
	n, rest := LenVarint.DecodeUnsafe(src)
	s := string(rest.First(int(n)))
	return s, rest.Advance(int(n))
}

func (String) Decode(src view.View) (string, view.View, error) {
	n, rest, err := LenVarint.Decode(src)
	if err != nil {
		return "", view.View{}, err
	}
	if rest.Size() < int(n) {
		return "", view.View{}, wire.ErrLengthPrefixOverrun
	}
	s := string(rest.First(int(n)))
	out, _ := rest.Subspan(int(n))
	return s, out, nil
}

func (String) SkipUnsafe(src view.View) view.View {
	n, rest := LenVarint.DecodeUnsafe(src)
	return rest.Advance(int(n))
}

func (String) Skip(src view.View) (view.View, error) {
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
