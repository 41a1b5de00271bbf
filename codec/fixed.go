package codec

import (
	"encoding/binary"
	"math"

	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Fixed32 is the fixed32 codec: 4 bytes, little-endian, regardless of host
// byte order.
type Fixed32 struct{}

func (Fixed32) WireType() wire.Type { return wire.Fixed32 }
func (Fixed32) Size(uint32) int     { return 4 }

func (Fixed32) EncodeUnsafe(v uint32, dst view.View) view.View {
	binary.LittleEndian.PutUint32(dst.First(4), v)
	return dst.Advance(4)
}

func (Fixed32) Encode(v uint32, dst view.View) (view.View, error) {
	if dst.Size() < 4 {
		return view.View{}, wire.ErrBufferOverflow
	}
	binary.LittleEndian.PutUint32(dst.First(4), v)
	rest, _ := dst.Subspan(4)
	return rest, nil
}

func (Fixed32) DecodeUnsafe(src view.View) (uint32, view.View) {
	return binary.LittleEndian.Uint32(src.First(4)), src.Advance(4)
}

func (Fixed32) Decode(src view.View) (uint32, view.View, error) {
	if src.Size() < 4 {
		return 0, view.View{}, wire.ErrBufferUnderflow
	}
	v := binary.LittleEndian.Uint32(src.First(4))
	rest, _ := src.Subspan(4)
	return v, rest, nil
}

func (Fixed32) SkipUnsafe(src view.View) view.View { return src.Advance(4) }

func (Fixed32) Skip(src view.View) (view.View, error) {
	if src.Size() < 4 {
		return view.View{}, wire.ErrBufferUnderflow
	}
	rest, _ := src.Subspan(4)
	return rest, nil
}

// Fixed64 is the fixed64 codec: 8 bytes, little-endian.
type Fixed64 struct{}

func (Fixed64) WireType() wire.Type { return wire.Fixed64 }
func (Fixed64) Size(uint64) int     { return 8 }

func (Fixed64) EncodeUnsafe(v uint64, dst view.View) view.View {
	binary.LittleEndian.PutUint64(dst.First(8), v)
	return dst.Advance(8)
}

func (Fixed64) Encode(v uint64, dst view.View) (view.View, error) {
	if dst.Size() < 8 {
		return view.View{}, wire.ErrBufferOverflow
	}
	binary.LittleEndian.PutUint64(dst.First(8), v)
	rest, _ := dst.Subspan(8)
	return rest, nil
}

func (Fixed64) DecodeUnsafe(src view.View) (uint64, view.View) {
	return binary.LittleEndian.Uint64(src.First(8)), src.Advance(8)
}

func (Fixed64) Decode(src view.View) (uint64, view.View, error) {
	if src.Size() < 8 {
		return 0, view.View{}, wire.ErrBufferUnderflow
	}
	v := binary.LittleEndian.Uint64(src.First(8))
	rest, _ := src.Subspan(8)
	return v, rest, nil
}

func (Fixed64) SkipUnsafe(src view.View) view.View { return src.Advance(8) }

func (Fixed64) Skip(src view.View) (view.View, error) {
	if src.Size() < 8 {
		return view.View{}, wire.ErrBufferUnderflow
	}
	rest, _ := src.Subspan(8)
	return rest, nil
}

// SFixed32 is the sfixed32 codec: Fixed32 over the two's-complement bit
// pattern of a signed value.
type SFixed32 struct{ inner Fixed32 }

func (SFixed32) WireType() wire.Type { return wire.Fixed32 }
func (SFixed32) Size(int32) int      { return 4 }

func (c SFixed32) EncodeUnsafe(v int32, dst view.View) view.View {
	return c.inner.EncodeUnsafe(uint32(v), dst)
}
func (c SFixed32) Encode(v int32, dst view.View) (view.View, error) {
	return c.inner.Encode(uint32(v), dst)
}
func (c SFixed32) DecodeUnsafe(src view.View) (int32, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return int32(u), rest
}
func (c SFixed32) Decode(src view.View) (int32, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	return int32(u), rest, err
}
func (c SFixed32) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c SFixed32) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }

// SFixed64 is the sfixed64 codec.
type SFixed64 struct{ inner Fixed64 }

func (SFixed64) WireType() wire.Type { return wire.Fixed64 }
func (SFixed64) Size(int64) int      { return 8 }

func (c SFixed64) EncodeUnsafe(v int64, dst view.View) view.View {
	return c.inner.EncodeUnsafe(uint64(v), dst)
}
func (c SFixed64) Encode(v int64, dst view.View) (view.View, error) {
	return c.inner.Encode(uint64(v), dst)
}
func (c SFixed64) DecodeUnsafe(src view.View) (int64, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return int64(u), rest
}
func (c SFixed64) Decode(src view.View) (int64, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	return int64(u), rest, err
}
func (c SFixed64) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c SFixed64) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }

// Float32 is the float codec: the IEEE 754 bit pattern of the value over
// Fixed32. NaNs and infinities round-trip bitwise; the codec never
// canonicalizes a NaN payload.
type Float32 struct{ inner Fixed32 }

func (Float32) WireType() wire.Type { return wire.Fixed32 }
func (Float32) Size(float32) int    { return 4 }

func (c Float32) EncodeUnsafe(v float32, dst view.View) view.View {
	return c.inner.EncodeUnsafe(math.Float32bits(v), dst)
}
func (c Float32) Encode(v float32, dst view.View) (view.View, error) {
	return c.inner.Encode(math.Float32bits(v), dst)
}
func (c Float32) DecodeUnsafe(src view.View) (float32, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return math.Float32frombits(u), rest
}
func (c Float32) Decode(src view.View) (float32, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	return math.Float32frombits(u), rest, err
}
func (c Float32) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c Float32) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }

// Float64 is the double codec.
type Float64 struct{ inner Fixed64 }

func (Float64) WireType() wire.Type { return wire.Fixed64 }
func (Float64) Size(float64) int    { return 8 }

func (c Float64) EncodeUnsafe(v float64, dst view.View) view.View {
	return c.inner.EncodeUnsafe(math.Float64bits(v), dst)
}
func (c Float64) Encode(v float64, dst view.View) (view.View, error) {
	return c.inner.Encode(math.Float64bits(v), dst)
}
func (c Float64) DecodeUnsafe(src view.View) (float64, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return math.Float64frombits(u), rest
}
func (c Float64) Decode(src view.View) (float64, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	return math.Float64frombits(u), rest, err
}
func (c Float64) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c Float64) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }
