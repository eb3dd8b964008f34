// package dvtests provides Variants for use in tests.
package dvtests

import (
	"math"

	"dynvar.org/dynvar/dvmem"
)

// InterestingVariants returns a list of Variants worth testing against.
// No two Variants in the list are Equal.
func InterestingVariants() []dvmem.Variant {
	var seq32 []byte
	for i := 1; i <= 32; i++ {
		seq32 = append(seq32, byte(i))
	}
	return []dvmem.Variant{
		dvmem.MakeAbsent(),

		// integers
		dvmem.MakeInteger(0),
		dvmem.MakeInteger(1),
		dvmem.MakeInteger(-1),
		dvmem.MakeInteger(12),
		dvmem.MakeInteger(int64(math.MaxInt64)),
		dvmem.MakeInteger(int64(math.MinInt64)),

		// floats
		dvmem.MakeFloat(0),
		dvmem.MakeFloat(12.34),
		dvmem.MakeFloat(-6.28),
		dvmem.MakeFloat(1e20),
		dvmem.MakeFloat(math.Inf(1)),
		dvmem.MakeFloat(math.NaN()),

		// booleans
		dvmem.MakeBoolean(false),
		dvmem.MakeBoolean(true),

		// text
		dvmem.MakeText(""),
		dvmem.MakeText("Hello, world!"),
		dvmem.MakeText("a)b"),
		dvmem.MakeText("(x)"),

		// opaque
		dvmem.MustOpaque([]byte{0}),
		dvmem.MustOpaque([]byte{0xff, 0x00, 0x00, 0x00}),
		dvmem.MustOpaque(seq32),
	}
}
