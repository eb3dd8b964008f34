// package dvmem implements Variants: a single value whose kind is chosen at runtime.
//
// A Variant holds exactly one of the kinds listed in dvtag.
// Variants are immutable. "Changing" a variable means making a new Variant and rebinding it.
package dvmem

import (
	"bytes"

	"dynvar.org/dynvar"
	"dynvar.org/dynvar/dvtag"
	"dynvar.org/dynvar/internal/bytebuf"
)

type Buf = bytebuf.Buf

// Variant owns the payload of one kind.
// The zero value is an Absent Variant.
//
// The payload is never exposed by reference: Bytes and Opaque.AsBytes return copies.
// Assigning a Variant therefore cannot leak mutable state from one binding to another.
type Variant struct {
	v Value
}

func (v Variant) value() Value {
	if v.v == nil {
		return Absent{}
	}
	return v.v
}

// Value returns the typed payload, for use in a type switch.
func (v Variant) Value() Value {
	return v.value()
}

func (v Variant) Tag() dvtag.Tag {
	return v.value().Tag()
}

// Size is the number of bytes in the payload's byte image.
// It is 0 if and only if the Variant is Absent.
func (v Variant) Size() int {
	return v.value().SizeOf()
}

func (v Variant) IsAbsent() bool {
	return v.Tag() == dvtag.Absent
}

// Bytes returns a freshly allocated copy of the payload's byte image.
// Integers and Floats are little endian; Text ends with dynvar.Terminator.
func (v Variant) Bytes() []byte {
	x := v.value()
	buf := bytebuf.New(x.SizeOf())
	x.Encode(buf)
	return buf.Bytes()
}

// Clone returns a deep copy of v, which shares no memory with v.
func (v Variant) Clone() Variant {
	if o, ok := v.v.(Opaque); ok {
		return Variant{v: NewOpaque(o.d)}
	}
	return v
}

// Equal returns true if a and b have the same Tag and byte image.
func Equal(a, b Variant) bool {
	return a.Tag() == b.Tag() && bytes.Equal(a.Bytes(), b.Bytes())
}

// Fingerprint returns a 256 bit hash of v.
// The byte image is hashed with a key derived from the Tag, so Variants of different kinds
// with the same byte image have different Fingerprints.
func Fingerprint(v Variant) dynvar.ID {
	salt := dynvar.Hash(nil, []byte(v.Tag().String()))
	return dynvar.Hash(&salt, v.Bytes())
}
