package dvcmd

import (
	"context"
	"fmt"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"dynvar.org/dynvar/dvmem"
	"dynvar.org/dynvar/dvtag"
	"dynvar.org/dynvar/internal/bytebuf"
)

var demo = star.Command{
	Metadata: star.Metadata{
		Short: "rebind one variable to every kind, printing it each time",
	},
	Flags: []star.IParam{LogLevelParam},
	F: func(c star.Context) error {
		ctx, err := newContext(c)
		if err != nil {
			return err
		}
		return runDemo(ctx, func(format string, args ...any) {
			c.Printf(format, args...)
		})
	},
}

var kinds = star.Command{
	Metadata: star.Metadata{
		Short: "list the kinds a variable can hold, with their payload widths",
	},
	F: func(c star.Context) error {
		for _, tag := range dvtag.All() {
			switch {
			case tag == dvtag.Absent:
				c.Printf("%-8s -\n", tag)
			case tag.Fixed():
				c.Printf("%-8s %d\n", tag, tag.Width())
			default:
				c.Printf("%-8s variable\n", tag)
			}
		}
		return nil
	},
}

type printfFunc = func(format string, args ...any)

func runDemo(ctx context.Context, printf printfFunc) error {
	var v dvmem.Variant
	show := func() {
		logctx.Debug(ctx, "variable bound", zap.Stringer("tag", v.Tag()), zap.Int("size", v.Size()))
		printf("%v\n", v)
	}
	show()
	v = dvmem.MakeInteger(12)
	show()
	v = dvmem.MakeFloat(12.34)
	show()
	v = dvmem.MakeText("Hello, world!")
	show()
	v = dvmem.MakeBoolean(true)
	show()
	v = dvmem.MakeAbsent()
	show()

	sent := pair{A: 0xff, B: 0x00}
	data := sent.encode()
	var err error
	if v, err = dvmem.MakeOpaque(data, len(data)); err != nil {
		return err
	}
	show()

	got, err := decodePair(v.Bytes())
	if err != nil {
		return err
	}
	printf("sent: %d %d\n", sent.A, sent.B)
	printf("got : %d %d\n", got.A, got.B)
	if got != sent {
		return fmt.Errorf("opaque round trip: sent %v, got %v", sent, got)
	}
	logctx.Info(ctx, "demo complete", zap.Stringer("fingerprint", dvmem.Fingerprint(v)))
	return nil
}

// pair is fixed layout data which only an Opaque variable can hold.
type pair struct {
	A, B uint16
}

const pairSize = 4

func (p pair) encode() []byte {
	buf := bytebuf.New(pairSize)
	buf.Put16(0, p.A)
	buf.Put16(2, p.B)
	return buf.Bytes()
}

func decodePair(data []byte) (pair, error) {
	if len(data) != pairSize {
		return pair{}, fmt.Errorf("pair must be %d bytes. have %d", pairSize, len(data))
	}
	buf := bytebuf.FromBytes(data)
	return pair{A: buf.Get16(0), B: buf.Get16(2)}, nil
}
