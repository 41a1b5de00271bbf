// Package message composes field.Binder values into a full message codec:
// tag-dispatch decode, skip-on-unknown-field, and the two-pass exact-buffer
// Marshal/Unmarshal pair built on top of the lower codec/view/wire layers.
package message

import (
	"fmt"

	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/field"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Codec is the composed wire codec for a message type M: a named, ordered
// set of field.Binder values, indexed by field number for decode dispatch.
//
// A Codec is stateless once built and safe to share across goroutines.
type Codec[M any] struct {
	name   string
	fields []field.Binder[M]
	byNum  map[wire.FieldNumber]field.Binder[M]
}

// New builds the message codec named name out of fields. name is used only
// in error messages; it plays no role on the wire. New panics if two fields
// share a field number, or any field number is reserved.
func New[M any](name string, fields ...field.Binder[M]) *Codec[M] {
	byNum := make(map[wire.FieldNumber]field.Binder[M], len(fields))
	for _, f := range fields {
		if wire.IsReservedFieldNumber(f.Number()) {
			panic(fmt.Sprintf("message %s: field number %d is reserved or out of range", name, f.Number()))
		}
		if _, dup := byNum[f.Number()]; dup {
			panic(fmt.Sprintf("message %s: field number %d is bound twice", name, f.Number()))
		}
		byNum[f.Number()] = f
	}
	return &Codec[M]{name: name, fields: fields, byNum: byNum}
}

// SizeFields reports the number of bytes EncodeFields/EncodeFieldsUnsafe
// would write for m, with no outer length prefix. This is what a field.Nested
// or field.RepeatedNested wrapping this message calls to size its own
// length-delimited frame.
func (c *Codec[M]) SizeFields(m *M) int {
	total := 0
	for _, f := range c.fields {
		total += f.Size(m)
	}
	return total
}

// Size is an alias of SizeFields, kept distinct in name so a Codec[M] used
// as a top-level message (no enclosing length prefix) reads naturally at
// call sites.
func (c *Codec[M]) Size(m *M) int { return c.SizeFields(m) }

// EncodeFieldsUnsafe writes every present field of m, in declaration order,
// at the front of dst and returns the remainder.
func (c *Codec[M]) EncodeFieldsUnsafe(m *M, dst view.View) view.View {
	rest := dst
	for _, f := range c.fields {
		rest = f.EncodeUnsafe(m, rest)
	}
	return rest
}

// EncodeUnsafe is an alias of EncodeFieldsUnsafe for top-level use.
func (c *Codec[M]) EncodeUnsafe(m *M, dst view.View) view.View {
	return c.EncodeFieldsUnsafe(m, dst)
}

// EncodeFields is the safe counterpart of EncodeFieldsUnsafe.
func (c *Codec[M]) EncodeFields(m *M, dst view.View) (view.View, error) {
	rest := dst
	var err error
	for _, f := range c.fields {
		rest, err = f.Encode(m, rest)
		if err != nil {
			return view.View{}, err
		}
	}
	return rest, nil
}

// Encode is an alias of EncodeFields for top-level use.
func (c *Codec[M]) Encode(m *M, dst view.View) (view.View, error) {
	return c.EncodeFields(m, dst)
}

// Marshal allocates an exactly-sized buffer and encodes m into it.
func (c *Codec[M]) Marshal(m *M) []byte {
	buf := make([]byte, c.SizeFields(m))
	c.EncodeFieldsUnsafe(m, view.Of(buf))
	return buf
}

// DecodeFieldsUnsafe reads fields from the front of src until it is
// exhausted, dispatching each to the bound field.Binder by number and
// skipping unknown field numbers, and returns the (always empty) remainder.
// It trusts src to hold exactly one well-formed sequence of fields; a
// malformed or truncated input surfaces as a panic, not an error.
func (c *Codec[M]) DecodeFieldsUnsafe(m *M, src view.View) view.View {
	cur := src
	for cur.Size() > 0 {
		tagVal, rest := codec.LenVarint.DecodeUnsafe(cur)
		number, wt := wire.ParseTag(wire.Tag(tagVal))
		cur = c.dispatchUnsafe(m, number, wt, rest)
	}
	return cur
}

func (c *Codec[M]) dispatchUnsafe(m *M, number wire.FieldNumber, wt wire.Type, src view.View) view.View {
	f, ok := c.byNum[number]
	if !ok {
		rest, err := field.SkipByWireType(wt, src)
		if err != nil {
			panic(err)
		}
		return rest
	}
	// A known field number is never skipped, even when its wire type is
	// neither the field's own nor a tolerated packed/unpacked alternate:
	// DecodeValue itself enforces that and reports wire.ErrWireTypeMismatch,
	// per spec.md's malformed-message rule. Skipping here would silently
	// treat a malformed field as absent.
	rest, err := f.DecodeValue(m, wt, src)
	if err != nil {
		panic(err)
	}
	return rest
}

// DecodeFields is the safe counterpart of DecodeFieldsUnsafe: it never reads
// past src, and reports the first error encountered instead of panicking.
// On success it returns the (always empty) remainder and a nil error.
func (c *Codec[M]) DecodeFields(m *M, src view.View) (view.View, error) {
	cur := src
	for cur.Size() > 0 {
		tagVal, rest, err := codec.LenVarint.Decode(cur)
		if err != nil {
			return view.View{}, err
		}
		number, wt := wire.ParseTag(wire.Tag(tagVal))

		f, known := c.byNum[number]
		if !known {
			cur, err = field.SkipByWireType(wt, rest)
		} else {
			// A known field number is never skipped, even when its wire type
			// is neither the field's own nor a tolerated packed/unpacked
			// alternate: DecodeValue itself enforces that and reports
			// wire.ErrWireTypeMismatch, per spec.md's malformed-message rule.
			cur, err = f.DecodeValue(m, wt, rest)
		}
		if err != nil {
			return view.View{}, err
		}
	}
	return cur, nil
}

// Unmarshal decodes data into a fresh M.
func (c *Codec[M]) Unmarshal(data []byte) (M, error) {
	var m M
	if _, err := c.DecodeFields(&m, view.Of(data)); err != nil {
		return m, fmt.Errorf("message %s: %w", c.name, err)
	}
	return m, nil
}

// UnmarshalInto decodes data into an existing *M, merging into any fields
// already set (repeated fields accumulate; singular fields are overwritten
// by the last occurrence on the wire, per the wire format's own rule).
func (c *Codec[M]) UnmarshalInto(m *M, data []byte) error {
	if _, err := c.DecodeFields(m, view.Of(data)); err != nil {
		return fmt.Errorf("message %s: %w", c.name, err)
	}
	return nil
}
