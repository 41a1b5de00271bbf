package codec

import (
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// encodeZigZag32 maps a signed 32-bit value to an unsigned one so that
// small-magnitude values (positive or negative) stay short on the wire:
// (x << 1) XOR (x >> 31), with the right shift sign-extending.
func encodeZigZag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

func decodeZigZag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

func encodeZigZag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

func decodeZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// Zigzag32 is the sint32 codec: varint<u32> composed with the zigzag
// bijection, so negative values near zero stay short instead of costing the
// 10 bytes a plain signed varint would sign-extend them to.
type Zigzag32 struct{ inner Varint[uint32] }

func NewZigzag32() Zigzag32 { return Zigzag32{inner: NewVarint[uint32]()} }

func (Zigzag32) WireType() wire.Type { return wire.Varint }
func (c Zigzag32) Size(v int32) int  { return c.inner.Size(encodeZigZag32(v)) }

func (c Zigzag32) EncodeUnsafe(v int32, dst view.View) view.View {
	return c.inner.EncodeUnsafe(encodeZigZag32(v), dst)
}

func (c Zigzag32) Encode(v int32, dst view.View) (view.View, error) {
	return c.inner.Encode(encodeZigZag32(v), dst)
}

func (c Zigzag32) DecodeUnsafe(src view.View) (int32, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return decodeZigZag32(u), rest
}

func (c Zigzag32) Decode(src view.View) (int32, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	if err != nil {
		return 0, view.View{}, err
	}
	return decodeZigZag32(u), rest, nil
}

func (c Zigzag32) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c Zigzag32) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }

// Zigzag64 is the sint64 codec.
type Zigzag64 struct{ inner Varint[uint64] }

func NewZigzag64() Zigzag64 { return Zigzag64{inner: NewVarint[uint64]()} }

func (Zigzag64) WireType() wire.Type { return wire.Varint }
func (c Zigzag64) Size(v int64) int  { return c.inner.Size(encodeZigZag64(v)) }

func (c Zigzag64) EncodeUnsafe(v int64, dst view.View) view.View {
	return c.inner.EncodeUnsafe(encodeZigZag64(v), dst)
}

func (c Zigzag64) Encode(v int64, dst view.View) (view.View, error) {
	return c.inner.Encode(encodeZigZag64(v), dst)
}

func (c Zigzag64) DecodeUnsafe(src view.View) (int64, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return decodeZigZag64(u), rest
}

func (c Zigzag64) Decode(src view.View) (int64, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	if err != nil {
		return 0, view.View{}, err
	}
	return decodeZigZag64(u), rest, nil
}

func (c Zigzag64) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c Zigzag64) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }
