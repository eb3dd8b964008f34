package dvmem_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	dv "dynvar.org/dynvar/dvmem"
	"dynvar.org/dynvar/dvtests"
)

func TestRender(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		V   dv.Variant
		Out string
	}{
		{dv.Variant{}, "[null, null]"},
		{dv.MakeAbsent(), "[null, null]"},
		{dv.MakeInteger(12), "[integer, (8)12]"},
		{dv.MakeInteger(-42), "[integer, (8)-42]"},
		{dv.MakeInteger(int64(math.MaxInt64)), "[integer, (8)9223372036854775807]"},
		{dv.MakeInteger(int8(-1)), "[integer, (8)-1]"},
		{dv.MakeFloat(12.34), "[double, (8)12.34]"},
		{dv.MakeFloat(-0.5), "[double, (8)-0.5]"},
		{dv.MakeText("Hello, world!"), `[string, (14)"Hello, world!"]`},
		{dv.MakeText(""), `[string, (1)""]`},
		{dv.MakeText("a)b"), `[string, (4)"a)b"]`},
		{dv.MakeText("say \"hi\""), `[string, (9)"say "hi""]`},
		{dv.MakeBoolean(true), "[bool, (1)TRUE]"},
		{dv.MakeBoolean(false), "[bool, (1)FALSE]"},
		{dv.MustOpaque([]byte{0xff, 0, 0, 0}), "[other, (4)]"},
		{dv.MustOpaque([]byte("abc")), "[other, (3)]"},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, tc.Out, tc.V.Render())
			require.Equal(t, tc.Out, fmt.Sprint(tc.V))
		})
	}
}

func TestRenderValue(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		V   dv.Variant
		Out string
	}{
		{dv.MakeAbsent(), "(0)"},
		{dv.MakeInteger(12), "(8)12"},
		{dv.MakeFloat(12.34), "(8)12.34"},
		{dv.MakeBoolean(true), "(1)true"},
		{dv.MakeText("Hello, world!"), "(14)Hello, world!"},
		{dv.MustOpaque([]byte{1, 2}), "(2)"},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, tc.Out, tc.V.RenderValue())
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()
	for i, v := range dvtests.InterestingVariants() {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			first := v.Render()
			require.Equal(t, first, v.Render())
			require.Equal(t, first, v.Clone().Render())
		})
	}
}

func TestFloatString(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		In  float64
		Out string
	}{
		{0, "0"},
		{12, "12"},
		{12.34, "12.34"},
		{0.5, "0.5"},
		{1.0 / 3, "0.333333"},
		{0.0001, "0.0001"},
		{100000, "100000"},
		{1e6, "1e+06"},
		{123456789, "1.23457e+08"},
		{1e20, "1e+20"},
		{-6.28, "-6.28"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, tc.Out, dv.Float(tc.In).String())
		})
	}
}
