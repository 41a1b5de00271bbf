package field

import (
	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// RepeatedNested binds a repeated embedded-message field. Messages can only
// ever be framed length-delimited, so unlike a repeated scalar there is no
// packed alternate to tolerate: every element is its own tag plus
// length-delimited block.
type RepeatedNested[M any, N any] struct {
	number wire.FieldNumber
	inner  MessageCodec[N]
	get    func(*M) []N
	app    func(*M, N)
}

// NewRepeatedNested builds a RepeatedNested field bound to number.
func NewRepeatedNested[M any, N any](number wire.FieldNumber, inner MessageCodec[N], get func(*M) []N, app func(*M, N)) *RepeatedNested[M, N] {
	return &RepeatedNested[M, N]{number: number, inner: inner, get: get, app: app}
}

func (f *RepeatedNested[M, N]) Number() wire.FieldNumber { return f.number }
func (f *RepeatedNested[M, N]) WireType() wire.Type      { return wire.Bytes }
func (f *RepeatedNested[M, N]) AcceptsWireType(wt wire.Type) bool {
	return wt == wire.Bytes
}

func (f *RepeatedNested[M, N]) Size(msg *M) int {
	total := 0
	for _, v := range f.get(msg) {
		inner := f.inner.SizeFields(&v)
		total += tagSize(f.number, wire.Bytes) + wire.VarintSize(uint64(inner)) + inner
	}
	return total
}

func (f *RepeatedNested[M, N]) EncodeUnsafe(msg *M, dst view.View) view.View {
	rest := dst
	for _, v := range f.get(msg) {
		inner := f.inner.SizeFields(&v)
		rest = encodeTagUnsafe(f.number, wire.Bytes, rest)
		rest = codec.LenVarint.EncodeUnsafe(uint64(inner), rest)
		rest = f.inner.EncodeFieldsUnsafe(&v, rest)
	}
	return rest
}

func (f *RepeatedNested[M, N]) Encode(msg *M, dst view.View) (view.View, error) {
	rest := dst
	var err error
	for _, v := range f.get(msg) {
		inner := f.inner.SizeFields(&v)
		rest, err = encodeTag(f.number, wire.Bytes, rest)
		if err != nil {
			return view.View{}, err
		}
		rest, err = codec.LenVarint.Encode(uint64(inner), rest)
		if err != nil {
			return view.View{}, err
		}
		rest, err = f.inner.EncodeFields(&v, rest)
		if err != nil {
			return view.View{}, err
		}
	}
	return rest, nil
}

func (f *RepeatedNested[M, N]) DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error) {
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
	f.app(msg, nv)
	return tail, nil
}
