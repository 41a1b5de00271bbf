package message

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anirudhraja/wirecodec/codec"
	"github.com/anirudhraja/wirecodec/field"
	"github.com/anirudhraja/wirecodec/view"
	"github.com/anirudhraja/wirecodec/wire"
)

// Student = message<varint<1,u32>, string<3>>
type Student struct {
	ID   uint32
	Name string
}

var studentCodec = New[Student]("Student",
	field.NewScalar[Student](1, codec.NewVarint[uint32](),
		func(s *Student) uint32 { return s.ID },
		func(s *Student, v uint32) { s.ID = v }),
	field.NewScalar[Student](3, codec.String{},
		func(s *Student) string { return s.Name },
		func(s *Student, v string) { s.Name = v }),
)

// Class = message<string<8>, repeated<message<3,Student>>>
type Class struct {
	Name     string
	Students []Student
}

var classCodec = New[Class]("Class",
	field.NewScalar[Class](8, codec.String{},
		func(c *Class) string { return c.Name },
		func(c *Class, v string) { c.Name = v }),
	field.NewRepeatedNested[Class](3, studentCodec,
		func(c *Class) []Student { return c.Students },
		func(c *Class, s Student) { c.Students = append(c.Students, s) }),
)

func TestNestedMessageRoundTrip(t *testing.T) {
	in := Class{
		Name: "class 101",
		Students: []Student{
			{ID: 456, Name: "tom"},
			{ID: 123456, Name: "jerry"},
			{ID: 123, Name: "twice"},
		},
	}

	buf := make([]byte, 64)
	want := classCodec.SizeFields(&in)
	rest := classCodec.EncodeFieldsUnsafe(&in, view.Of(buf))
	got := len(buf) - rest.Size()
	if got != want {
		t.Fatalf("encoded %d bytes, Size() said %d", got, want)
	}
	if got != 45 {
		t.Fatalf("encoded %d bytes, want exactly 45 per the worked example", got)
	}

	var out Class
	if _, err := classCodec.DecodeFields(&out, view.Of(buf[:got])); err != nil {
		t.Fatalf("DecodeFields: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedMessageMarshalUnmarshal(t *testing.T) {
	in := Class{Name: "roster", Students: []Student{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}}

	data := classCodec.Marshal(&in)
	out, err := classCodec.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// UnknownFieldMsg has a single declared field: 1: varint u32.
type UnknownFieldMsg struct {
	X uint32
}

var unknownFieldCodec = New[UnknownFieldMsg]("UnknownFieldMsg",
	field.NewScalar[UnknownFieldMsg](1, codec.NewVarint[uint32](),
		func(m *UnknownFieldMsg) uint32 { return m.X },
		func(m *UnknownFieldMsg, v uint32) { m.X = v }),
)

func TestUnknownFieldIsSkipped(t *testing.T) {
	// field 3: len-delimited "xy", then field 1: varint 42.
	data := []byte{0x1A, 0x02, 'x', 'y', 0x08, 0x2A}

	var got UnknownFieldMsg
	rest, err := unknownFieldCodec.DecodeFields(&got, view.Of(data))
	if err != nil {
		t.Fatalf("DecodeFields: %v", err)
	}
	if rest.Size() != 0 {
		t.Fatalf("remaining = %d, want 0 (fully consumed)", rest.Size())
	}
	if got.X != 42 {
		t.Fatalf("X = %d, want 42", got.X)
	}
}

func TestUnmarshalRejectsMismatchedWireType(t *testing.T) {
	// Student declares field 1 as a varint (wire.Varint). Tag it wire.Bytes
	// instead, a wire type field 1 does not tolerate as a packed/unpacked
	// alternate (that tolerance only applies to repeated scalar fields).
	tag := wire.MakeTag(1, wire.Bytes)
	tagVC := codec.NewVarint[uint64]()
	payload := codec.String{}

	buf := make([]byte, tagVC.Size(uint64(tag))+payload.Size("nope"))
	rest, err := tagVC.Encode(uint64(tag), view.Of(buf))
	if err != nil {
		t.Fatalf("encode tag: %v", err)
	}
	if _, err := payload.Encode("nope", rest); err != nil {
		t.Fatalf("encode payload: %v", err)
	}

	_, err = studentCodec.Unmarshal(buf)
	if err == nil {
		t.Fatal("Unmarshal of a known field tagged with an incompatible wire type should fail")
	}
	if !errors.Is(err, wire.ErrWireTypeMismatch) {
		t.Fatalf("err = %v, want errors.Is(err, wire.ErrWireTypeMismatch)", err)
	}
}

func TestDefaultElisionRoundTrip(t *testing.T) {
	zero := Student{}
	data := studentCodec.Marshal(&zero)
	if len(data) != 0 {
		t.Fatalf("Marshal of an all-zero-valued message = %d bytes, want 0", len(data))
	}

	var out Student
	if err := studentCodec.UnmarshalInto(&out, nil); err != nil {
		t.Fatalf("UnmarshalInto(empty): %v", err)
	}
	if diff := cmp.Diff(zero, out); diff != "" {
		t.Fatalf("decoding an empty buffer should yield all zero values (-want +got):\n%s", diff)
	}
}

func TestDuplicateSingularFieldLastWins(t *testing.T) {
	var buf []byte
	for _, v := range []uint32{1, 2, 3} {
		buf = append(buf, encodeTagAndVarint(t, 1, v)...)
	}

	var got UnknownFieldMsg
	if _, err := unknownFieldCodec.DecodeFields(&got, view.Of(buf)); err != nil {
		t.Fatalf("DecodeFields: %v", err)
	}
	if got.X != 3 {
		t.Fatalf("X = %d, want 3 (last occurrence wins)", got.X)
	}
}

func encodeTagAndVarint(t *testing.T, number wire.FieldNumber, v uint32) []byte {
	t.Helper()
	tag := wire.MakeTag(number, wire.Varint)
	vc := codec.NewVarint[uint64]()
	buf := make([]byte, vc.Size(uint64(tag))+codec.NewVarint[uint32]().Size(v))
	rest, err := vc.Encode(uint64(tag), view.Of(buf))
	if err != nil {
		t.Fatalf("encode tag: %v", err)
	}
	if _, err := codec.NewVarint[uint32]().Encode(v, rest); err != nil {
		t.Fatalf("encode value: %v", err)
	}
	return buf
}

func TestMessageRejectsDuplicateFieldNumber(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic binding the same field number twice")
		}
	}()
	New[Student]("BadStudent",
		field.NewScalar[Student](1, codec.NewVarint[uint32](), nil, nil),
		field.NewScalar[Student](1, codec.String{}, nil, nil),
	)
}

func TestMessageRejectsReservedFieldNumber(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic binding a reserved field number")
		}
	}()
	New[Student]("BadStudent",
		field.NewScalar[Student](19500, codec.NewVarint[uint32](), nil, nil),
	)
}
