package dvmem

import (
	"strconv"
	"strings"

	"dynvar.org/dynvar/dvtag"
)

// RenderValue returns the size of the payload in parentheses, followed by the payload as text.
// Opaque payloads contribute only their size, and an Absent Variant renders as "(0)".
func (v Variant) RenderValue() string {
	x := v.value()
	sb := new(strings.Builder)
	sb.WriteString("(")
	sb.WriteString(strconv.Itoa(x.SizeOf()))
	sb.WriteString(")")
	x.writeText(sb)
	return sb.String()
}

// Render returns the debug form of v: "[" + tag name + ", " + value + "]".
//
//	[null, null]
//	[integer, (8)12]
//	[double, (8)12.34]
//	[bool, (1)TRUE]
//	[string, (14)"Hello, world!"]
//	[other, (4)]
func (v Variant) Render() string {
	s := v.RenderValue()
	switch v.Tag() {
	case dvtag.Text:
		i := strings.IndexByte(s, ')') + 1
		s = s[:i] + `"` + s[i:] + `"`
	case dvtag.Boolean:
		s = strings.ToUpper(s)
	case dvtag.Absent:
		s = "null"
	}
	return "[" + v.Tag().String() + ", " + s + "]"
}

// String implements fmt.Stringer using Render.
func (v Variant) String() string {
	return v.Render()
}
