package field

import (
	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Map binds a map field. The wire format has no native map type: protobuf
// represents a map<K,V> as a repeated message field whose entries carry key
// at field 1 and value at field 2, and this binder reproduces exactly that
// framing without materializing an exported entry type. Encode order over
// the Go map is unspecified, matching protobuf's own map encoding, which
// makes no ordering guarantee either.
type Map[M any, K comparable, V any] struct {
	number   wire.FieldNumber
	keyCodec codec.Codec[K]
	valCodec codec.Codec[V]
	get      func(*M) map[K]V
	set      func(*M, K, V)
}

// NewMap builds a Map field bound to number. set stores one decoded
// key/value pair into the host map, initializing it if necessary.
func NewMap[M any, K comparable, V any](number wire.FieldNumber, keyCodec codec.Codec[K], valCodec codec.Codec[V], get func(*M) map[K]V, set func(*M, K, V)) *Map[M, K, V] {
	return &Map[M, K, V]{number: number, keyCodec: keyCodec, valCodec: valCodec, get: get, set: set}
}

func (f *Map[M, K, V]) Number() wire.FieldNumber { return f.number }
func (f *Map[M, K, V]) WireType() wire.Type      { return wire.Bytes }
func (f *Map[M, K, V]) AcceptsWireType(wt wire.Type) bool {
	return wt == wire.Bytes
}

func (f *Map[M, K, V]) entrySize(k K, v V) int {
	return tagSize(1, f.keyCodec.WireType()) + f.keyCodec.Size(k) +
		tagSize(2, f.valCodec.WireType()) + f.valCodec.Size(v)
}

func (f *Map[M, K, V]) Size(msg *M) int {
	total := 0
	for k, v := range f.get(msg) {
		inner := f.entrySize(k, v)
		total += tagSize(f.number, wire.Bytes) + wire.VarintSize(uint64(inner)) + inner
	}
	return total
}

func (f *Map[M, K, V]) EncodeUnsafe(msg *M, dst view.View) view.View {
	rest := dst
	for k, v := range f.get(msg) {
		inner := f.entrySize(k, v)
		rest = encodeTagUnsafe(f.number, wire.Bytes, rest)
		rest = codec.LenVarint.EncodeUnsafe(uint64(inner), rest)
		rest = encodeTagUnsafe(1, f.keyCodec.WireType(), rest)
		rest = f.keyCodec.EncodeUnsafe(k, rest)
		rest = encodeTagUnsafe(2, f.valCodec.WireType(), rest)
		rest = f.valCodec.EncodeUnsafe(v, rest)
	}
	return rest
}

func (f *Map[M, K, V]) Encode(msg *M, dst view.View) (view.View, error) {
	rest := dst
	var err error
	for k, v := range f.get(msg) {
		inner := f.entrySize(k, v)
		if rest, err = encodeTag(f.number, wire.Bytes, rest); err != nil {
			return view.View{}, err
		}
		if rest, err = codec.LenVarint.Encode(uint64(inner), rest); err != nil {
			return view.View{}, err
		}
		if rest, err = encodeTag(1, f.keyCodec.WireType(), rest); err != nil {
			return view.View{}, err
		}
		if rest, err = f.keyCodec.Encode(k, rest); err != nil {
			return view.View{}, err
		}
		if rest, err = encodeTag(2, f.valCodec.WireType(), rest); err != nil {
			return view.View{}, err
		}
		if rest, err = f.valCodec.Encode(v, rest); err != nil {
			return view.View{}, err
		}
	}
	return rest, nil
}

func (f *Map[M, K, V]) DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error) {
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

	var key K
	var val V
	cur := frame
	for cur.Size() > 0 {
		tagVal, r, err := codec.LenVarint.Decode(cur)
		if err != nil {
			return view.View{}, err
		}
		num, entryWt := wire.ParseTag(wire.Tag(tagVal))
		switch {
		case num == 1 && entryWt == f.keyCodec.WireType():
			key, cur, err = f.keyCodec.Decode(r)
		case num == 2 && entryWt == f.valCodec.WireType():
			val, cur, err = f.valCodec.Decode(r)
		case num == 1 || num == 2:
			err = wire.ErrWireTypeMismatch
		default:
			cur, err = SkipByWireType(entryWt, r)
		}
		if err != nil {
			return view.View{}, err
		}
	}
	f.set(msg, key, val)
	return tail, nil
}
