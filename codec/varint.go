package codec

import (
	"unsafe"

	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Unsigned is the set of fixed-width unsigned integer types a Varint codec
// can be instantiated over.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Varint is the LEB128 base-128 codec for unsigned integers: groups of 7
// bits least-significant-first, with the continuation bit (0x80) set on
// every byte but the last.
type Varint[T Unsigned] struct {
	maxBytes int
}

// NewVarint constructs the Varint codec for T, deriving the maximum run
// length a well-formed varint of T may have (5 bytes for 32-bit widths, 10
// for 64-bit) so Decode can reject malformed runs instead of looping forever.
func NewVarint[T Unsigned]() Varint[T] {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	return Varint[T]{maxBytes: (bits + 6) / 7}
}

func (Varint[T]) WireType() wire.Type { return wire.Varint }

func (Varint[T]) Size(v T) int {
	return wire.VarintSize(uint64(v))
}

func (c Varint[T]) EncodeUnsafe(v T, dst view.View) view.View {
	b := dst.Bytes()
	i := 0
	for v >= 0x80 {
		b[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	b[i] = byte(v)
	return dst.Advance(i + 1)
}

func (c Varint[T]) Encode(v T, dst view.View) (view.View, error) {
	b := dst.Bytes()
	if c.Size(v) > len(b) {
		return view.View{}, wire.ErrBufferOverflow
	}
	i := 0
	for v >= 0x80 {
		if i >= len(b) {
			return view.View{}, wire.ErrBufferOverflow
		}
		b[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	if i >= len(b) {
		return view.View{}, wire.ErrBufferOverflow
	}
	b[i] = byte(v)
	rest, _ := dst.Subspan(i + 1)
	return rest, nil
}

func (c Varint[T]) DecodeUnsafe(src view.View) (T, view.View) {
	b := src.Bytes()
	var n T
	var shift uint
	i := 0
	for {
		byt := b[i]
		n |= T(byt&0x7F) << shift
		i++
		if byt&0x80 == 0 {
			break
		}
		shift += 7
	}
	return n, src.Advance(i)
}

func (c Varint[T]) Decode(src view.View) (T, view.View, error) {
	b := src.Bytes()
	var n T
	var shift uint
	for i := 0; i < c.maxBytes; i++ {
		if i >= len(b) {
			if i > 0 {
				return 0, view.View{}, wire.ErrMalformedVarint
			}
			return 0, view.View{}, wire.ErrBufferUnderflow
		}
		byt := b[i]
		n |= T(byt&0x7F) << shift
		if byt&0x80 == 0 {
			rest, _ := src.Subspan(i + 1)
			return n, rest, nil
		}
		shift += 7
	}
	return 0, view.View{}, wire.ErrMalformedVarint
}

func (c Varint[T]) SkipUnsafe(src view.View) view.View {
	b := src.Bytes()
	i := 0
	for b[i]&0x80 != 0 {
		i++
	}
	return src.Advance(i + 1)
}

func (c Varint[T]) Skip(src view.View) (view.View, error) {
	b := src.Bytes()
	for i := 0; i < c.maxBytes; i++ {
		if i >= len(b) {
			if i > 0 {
				return view.View{}, wire.ErrMalformedVarint
			}
			return view.View{}, wire.ErrBufferUnderflow
		}
		if b[i]&0x80 == 0 {
			rest, _ := src.Subspan(i + 1)
			return rest, nil
		}
	}
	return view.View{}, wire.ErrMalformedVarint
}

// LenVarint is the uint64 varint codec used throughout this module to frame
// tags and length prefixes.
var LenVarint = NewVarint[uint64]()

// SVarint32 is the signed convenience wrapper described in the wire format:
// a signed varint forwards to the 64-bit unsigned codec by bit-cast,
// sign-extended through 64 bits so a negative value
// costs 10 bytes on the wire, matching protobuf's own convention.
type SVarint32 struct{ inner Varint[uint64] }

func NewSVarint32() SVarint32 { return SVarint32{inner: NewVarint[uint64]()} }

func (SVarint32) WireType() wire.Type { return wire.Varint }
func (c SVarint32) Size(v int32) int  { return c.inner.Size(uint64(int64(v))) }

func (c SVarint32) EncodeUnsafe(v int32, dst view.View) view.View {
	return c.inner.EncodeUnsafe(uint64(int64(v)), dst)
}

func (c SVarint32) Encode(v int32, dst view.View) (view.View, error) {
	return c.inner.Encode(uint64(int64(v)), dst)
}

func (c SVarint32) DecodeUnsafe(src view.View) (int32, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return int32(u), rest
}

func (c SVarint32) Decode(src view.View) (int32, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	if err != nil {
		return 0, view.View{}, err
	}
	return int32(u), rest, nil
}

func (c SVarint32) SkipUnsafe(src view.View) view.View      { return c.inner.SkipUnsafe(src) }
func (c SVarint32) Skip(src view.View) (view.View, error)   { return c.inner.Skip(src) }

// SVarint64 is the 64-bit signed varint codec.
type SVarint64 struct{ inner Varint[uint64] }

func NewSVarint64() SVarint64 { return SVarint64{inner: NewVarint[uint64]()} }

func (SVarint64) WireType() wire.Type { return wire.Varint }
func (c SVarint64) Size(v int64) int  { return c.inner.Size(uint64(v)) }

func (c SVarint64) EncodeUnsafe(v int64, dst view.View) view.View {
	return c.inner.EncodeUnsafe(uint64(v), dst)
}

func (c SVarint64) Encode(v int64, dst view.View) (view.View, error) {
	return c.inner.Encode(uint64(v), dst)
}

func (c SVarint64) DecodeUnsafe(src view.View) (int64, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return int64(u), rest
}

func (c SVarint64) Decode(src view.View) (int64, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	if err != nil {
		return 0, view.View{}, err
	}
	return int64(u), rest, nil
}

func (c SVarint64) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c SVarint64) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }
