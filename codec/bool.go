package codec

import (
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Bool is the bool codec: varint<uint8> where 0 means false and any nonzero
// value means true. Always one byte on encode.
type Bool struct{ inner Varint[uint8] }

func NewBool() Bool { return Bool{inner: NewVarint[uint8]()} }

func (Bool) WireType() wire.Type { return wire.Varint }
func (Bool) Size(bool) int       { return 1 }

func (c Bool) EncodeUnsafe(v bool, dst view.View) view.View {
	return c.inner.EncodeUnsafe(boolToByte(v), dst)
}

func (c Bool) Encode(v bool, dst view.View) (view.View, error) {
	return c.inner.Encode(boolToByte(v), dst)
}

func (c Bool) DecodeUnsafe(src view.View) (bool, view.View) {
	u, rest := c.inner.DecodeUnsafe(src)
	return u != 0, rest
}

func (c Bool) Decode(src view.View) (bool, view.View, error) {
	u, rest, err := c.inner.Decode(src)
	if err != nil {
		return false, view.View{}, err
	}
	return u != 0, rest, nil
}

func (c Bool) SkipUnsafe(src view.View) view.View    { return c.inner.SkipUnsafe(src) }
func (c Bool) Skip(src view.View) (view.View, error) { return c.inner.Skip(src) }

func boolToByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
