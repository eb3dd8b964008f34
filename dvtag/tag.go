// package dvtag defines the closed set of kinds a Variant can hold.
package dvtag

import (
	"strconv"

	"dynvar.org/dynvar"
)

// Tag identifies which interpretation applies to a Variant's byte image.
type Tag uint8

const (
	Absent = Tag(iota)
	Integer
	Float
	Boolean
	Text
	Opaque
)

// All returns every Tag in declaration order.
func All() []Tag {
	return []Tag{Absent, Integer, Float, Boolean, Text, Opaque}
}

func (t Tag) Valid() bool {
	return t <= Opaque
}

// String returns the display name used in rendered Variants.
func (t Tag) String() string {
	switch t {
	case Absent:
		return "null"
	case Integer:
		return "integer"
	case Float:
		return "double"
	case Boolean:
		return "bool"
	case Text:
		return "string"
	case Opaque:
		return "other"
	default:
		return "Tag(" + strconv.Itoa(int(t)) + ")"
	}
}

// Width is the fixed size of the payload in bytes.
// It is 0 for Absent, and for Text and Opaque, whose size depends on the value.
func (t Tag) Width() int {
	switch t {
	case Integer:
		return dynvar.IntegerWidth
	case Float:
		return dynvar.FloatWidth
	case Boolean:
		return dynvar.BooleanWidth
	default:
		return 0
	}
}

// Fixed returns true if every payload with this Tag has the same size.
func (t Tag) Fixed() bool {
	return t.Width() > 0
}
