package dvmem

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"dynvar.org/dynvar/dvtag"
	"dynvar.org/dynvar/internal/bytebuf"
)

func MakeAbsent() Variant {
	return Variant{}
}

// MakeInteger returns an Integer Variant.  The payload is always 8 bytes.
func MakeInteger[T constraints.Signed](x T) Variant {
	return Variant{v: Integer(x)}
}

func MakeFloat(x float64) Variant {
	return Variant{v: Float(x)}
}

func MakeBoolean(x bool) Variant {
	return Variant{v: Boolean(x)}
}

// MakeText returns a Text Variant holding x, up to its first Terminator.
// The size of the Variant is the number of bytes kept plus 1 for the Terminator.
func MakeText(x string) Variant {
	return Variant{v: NewText(x)}
}

// MakeOpaque returns an Opaque Variant holding a copy of the first size bytes of data.
// size must be at least 1, and data must have at least size bytes.
func MakeOpaque(data []byte, size int) (Variant, error) {
	switch {
	case size == 0:
		return Variant{}, fmt.Errorf("%v: %w", dvtag.Opaque, ErrZeroSize)
	case size < 0 || len(data) < size:
		return Variant{}, ErrSize{Tag: dvtag.Opaque, Want: size, Have: len(data)}
	}
	return Variant{v: NewOpaque(data[:size])}, nil
}

// MustOpaque returns an Opaque Variant holding a copy of data, or panics if data is empty.
func MustOpaque(data []byte) Variant {
	v, err := MakeOpaque(data, len(data))
	if err != nil {
		panic(err)
	}
	return v
}

// Decode makes a Variant of kind tag from a byte image, as produced by Variant.Bytes.
// data is copied; the returned Variant does not reference it.
//
// The image must be exactly what Bytes would produce for some Variant of that kind:
// empty for Absent, 8 bytes for Integer and Float, a single 0 or 1 for Boolean,
// characters plus one trailing Terminator for Text, and at least one byte for Opaque.
func Decode(tag dvtag.Tag, data []byte) (Variant, error) {
	if !tag.Valid() {
		return Variant{}, fmt.Errorf("%w: %v", ErrInvalidTag, tag)
	}
	if tag == dvtag.Absent {
		if len(data) != 0 {
			return Variant{}, ErrSize{Tag: tag, Want: 0, Have: len(data)}
		}
		return MakeAbsent(), nil
	}
	if len(data) == 0 {
		return Variant{}, fmt.Errorf("%v: %w", tag, ErrZeroSize)
	}
	if tag.Fixed() && len(data) != tag.Width() {
		return Variant{}, ErrSize{Tag: tag, Want: tag.Width(), Have: len(data)}
	}
	buf := bytebuf.FromBytes(data)
	var x Value
	switch tag {
	case dvtag.Integer:
		x = decodeInteger(buf)
	case dvtag.Float:
		x = decodeFloat(buf)
	case dvtag.Boolean:
		b, err := decodeBoolean(buf)
		if err != nil {
			return Variant{}, err
		}
		x = b
	case dvtag.Text:
		t, err := decodeText(buf)
		if err != nil {
			return Variant{}, err
		}
		x = t
	case dvtag.Opaque:
		x = decodeOpaque(buf)
	default:
		panic(tag)
	}
	return Variant{v: x}, nil
}
