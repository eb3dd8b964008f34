package dvmem

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"dynvar.org/dynvar"
	"dynvar.org/dynvar/dvtag"
)

// Value is the common interface implemented by every payload kind.
// It serves as a Sum type; the set of implementations is closed.
type Value interface {
	Tag() dvtag.Tag
	// SizeOf is the size of the byte image in bytes.
	SizeOf() int
	// Encode writes the byte image into buf, which must be SizeOf bytes long.
	Encode(buf Buf)

	// writeText writes the payload as it appears after the size prefix of RenderValue.
	writeText(sb *strings.Builder)
	isValue()
}

var (
	_ Value = Absent{}
	_ Value = Integer(0)
	_ Value = Float(0)
	_ Value = Boolean(false)
	_ Value = Text("")
	_ Value = Opaque{}
)

// Absent is the absence of a value.  It has no byte image.
type Absent struct{}

func (Absent) isValue()                   {}
func (Absent) Tag() dvtag.Tag             { return dvtag.Absent }
func (Absent) SizeOf() int                { return 0 }
func (Absent) Encode(Buf)                 {}
func (Absent) writeText(*strings.Builder) {}

func (Absent) String() string {
	return "null"
}

// Integer is a signed integer, stored as 8 bytes.
type Integer int64

func (Integer) isValue()       {}
func (Integer) Tag() dvtag.Tag { return dvtag.Integer }
func (Integer) SizeOf() int    { return dynvar.IntegerWidth }

func (x Integer) Encode(buf Buf) {
	buf.Put64(0, uint64(x))
}

func (x Integer) writeText(sb *strings.Builder) {
	sb.WriteString(x.String())
}

func (x Integer) String() string {
	return strconv.FormatInt(int64(x), 10)
}

func decodeInteger(buf Buf) Integer {
	return Integer(buf.Get64(0))
}

// Float is an IEEE 754 double.
type Float float64

func (Float) isValue()       {}
func (Float) Tag() dvtag.Tag { return dvtag.Float }
func (Float) SizeOf() int    { return dynvar.FloatWidth }

func (x Float) Encode(buf Buf) {
	buf.Put64(0, math.Float64bits(float64(x)))
}

func (x Float) writeText(sb *strings.Builder) {
	sb.WriteString(x.String())
}

// String formats x with at most 6 significant digits, dropping trailing zeros,
// and switching to exponent form for very large or very small magnitudes.
func (x Float) String() string {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func decodeFloat(buf Buf) Float {
	return Float(math.Float64frombits(buf.Get64(0)))
}

// Boolean is stored as a single byte, 0 or 1.
type Boolean bool

func (Boolean) isValue()       {}
func (Boolean) Tag() dvtag.Tag { return dvtag.Boolean }
func (Boolean) SizeOf() int    { return dynvar.BooleanWidth }

func (x Boolean) Encode(buf Buf) {
	if x {
		buf.Put8(0, 1)
	} else {
		buf.Put8(0, 0)
	}
}

func (x Boolean) writeText(sb *strings.Builder) {
	sb.WriteString(x.String())
}

func (x Boolean) String() string {
	return strconv.FormatBool(bool(x))
}

func decodeBoolean(buf Buf) (Boolean, error) {
	switch b := buf.Get8(0); b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrMalformed{Tag: dvtag.Boolean, Msg: fmt.Sprintf("byte 0x%02x is neither 0 nor 1", b)}
	}
}

// Text is a sequence of characters containing no Terminator.
// Its byte image is the characters followed by a single Terminator.
type Text string

// NewText returns the Text for x, cut at the first Terminator if x contains one.
func NewText(x string) Text {
	if i := strings.IndexByte(x, dynvar.Terminator); i >= 0 {
		x = x[:i]
	}
	return Text(x)
}

func (Text) isValue()       {}
func (Text) Tag() dvtag.Tag { return dvtag.Text }

func (x Text) SizeOf() int {
	return len(x) + 1
}

func (x Text) Len() int {
	return len(x)
}

func (x Text) Encode(buf Buf) {
	buf.PutBytes(0, []byte(x))
	buf.Put8(len(x), dynvar.Terminator)
}

func (x Text) writeText(sb *strings.Builder) {
	sb.WriteString(string(x))
}

func (x Text) String() string {
	return strconv.Quote(string(x))
}

func decodeText(buf Buf) (Text, error) {
	end := buf.Len() - 1
	if buf.Get8(end) != dynvar.Terminator {
		return "", ErrMalformed{Tag: dvtag.Text, Msg: "missing terminator"}
	}
	if i := buf.IndexByte(dynvar.Terminator); i != end {
		return "", ErrMalformed{Tag: dvtag.Text, Msg: fmt.Sprintf("terminator at %d inside text of length %d", i, end)}
	}
	d := make([]byte, end)
	buf.GetBytes(0, end, d)
	return Text(d), nil
}

// Opaque is arbitrary fixed layout data, which is not otherwise interpreted.
type Opaque struct {
	d []byte
}

// NewOpaque returns a new Opaque holding a copy of xs.
func NewOpaque(xs []byte) Opaque {
	return Opaque{d: slices.Clone(xs)}
}

func (Opaque) isValue()       {}
func (Opaque) Tag() dvtag.Tag { return dvtag.Opaque }

func (o Opaque) SizeOf() int {
	return len(o.d)
}

func (o Opaque) Len() int {
	return len(o.d)
}

func (o Opaque) At(i int) byte {
	return o.d[i]
}

// AsBytes returns a copy of the data.
func (o Opaque) AsBytes() []byte {
	return slices.Clone(o.d)
}

func (o Opaque) Encode(buf Buf) {
	buf.PutBytes(0, o.d)
}

// writeText writes nothing; only the size of an Opaque payload is rendered.
func (Opaque) writeText(*strings.Builder) {}

func (o Opaque) String() string {
	return fmt.Sprintf("%x", o.d)
}

func decodeOpaque(buf Buf) Opaque {
	d := make([]byte, buf.Len())
	buf.GetBytes(0, buf.Len(), d)
	return Opaque{d: d}
}
