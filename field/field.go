// Package field binds codec.Codec values to struct fields of a host message
// type M, producing Binder[M] values that a message.Codec composes into a
// full message encode/decode. Binders carry their own field tag and apply
// proto3 default-value elision; a message.Codec only dispatches by field
// number and delegates the rest to the bound field.
package field

import (
	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Binder is the contract a message.Codec composes: a single field of a
// message, bound to a getter/setter pair on the host type M.
type Binder[M any] interface {
	// Number reports the field number this binder is registered under.
	Number() wire.FieldNumber

	// WireType reports the wire type this field writes when present.
	WireType() wire.Type

	// AcceptsWireType reports whether a decode may accept wt for this field.
	// Most fields only accept their own WireType; repeated scalar fields
	// also accept the packed/unpacked alternate per the wire format's
	// repeated-field tolerance rule.
	AcceptsWireType(wt wire.Type) bool

	// Size reports the number of bytes Encode/EncodeUnsafe would write for
	// this field out of msg, including the field's tag(s). A field holding
	// its zero value (proto3 default elision) or an absent optional/nested
	// value reports 0.
	Size(msg *M) int

	// EncodeUnsafe writes this field's tag and value (if present) at the
	// front of dst and returns the remainder.
	EncodeUnsafe(msg *M, dst view.View) view.View
	// Encode is the safe counterpart of EncodeUnsafe.
	Encode(msg *M, dst view.View) (view.View, error)

	// DecodeValue reads one occurrence of this field's value from src, given
	// the wire type wt already read from the tag, and applies it to msg. The
	// tag itself has already been consumed by the caller.
	DecodeValue(msg *M, wt wire.Type, src view.View) (view.View, error)
}

// MessageCodec is the subset of message.Codec[N] a Nested field needs to
// delegate to. message.Codec[N] satisfies this by its method set; field does
// not import message to avoid a cycle (message imports field).
type MessageCodec[N any] interface {
	SizeFields(m *N) int
	EncodeFieldsUnsafe(m *N, dst view.View) view.View
	EncodeFields(m *N, dst view.View) (view.View, error)
	DecodeFieldsUnsafe(m *N, src view.View) view.View
	DecodeFields(m *N, src view.View) (view.View, error)
}

func encodeTagUnsafe(number wire.FieldNumber, wt wire.Type, dst view.View) view.View {
	return codec.LenVarint.EncodeUnsafe(uint64(wire.MakeTag(number, wt)), dst)
}

func encodeTag(number wire.FieldNumber, wt wire.Type, dst view.View) (view.View, error) {
	return codec.LenVarint.Encode(uint64(wire.MakeTag(number, wt)), dst)
}

func tagSize(number wire.FieldNumber, wt wire.Type) int {
	return wire.TagSize(number, wt)
}

// SkipByWireType advances src past one value of the given wire type, for a
// field number a message.Codec does not recognize. Groups are rejected: this
// module does not support them.
func SkipByWireType(wt wire.Type, src view.View) (view.View, error) {
	switch wt {
	case wire.Varint:
		return codec.LenVarint.Skip(src)
	case wire.Fixed64:
		out, ok := src.Subspan(8)
		if !ok {
			return view.View{}, wire.ErrBufferUnderflow
		}
		return out, nil
	case wire.Fixed32:
		out, ok := src.Subspan(4)
		if !ok {
			return view.View{}, wire.ErrBufferUnderflow
		}
		return out, nil
	case wire.Bytes:
		n, rest, err := codec.LenVarint.Decode(src)
		if err != nil {
			return view.View{}, err
		}
		out, ok := rest.Subspan(int(n))
		if !ok {
			return view.View{}, wire.ErrLengthPrefixOverrun
		}
		return out, nil
	default:
		return view.View{}, wire.ErrUnsupportedWireType
	}
}
