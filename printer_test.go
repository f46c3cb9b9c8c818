package lispy

import (
	"math"
	"testing"
)

func Test_Printer_Atoms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{True, "t"},
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Float(1.5), "1.5"},
		{Float(3), "3.0"}, // integral floats keep a fractional part
		{Float(-0.25), "-0.25"},
		{Str("hello"), "hello"}, // strings render bare
		{Str(""), ""},
		{Sym("foo"), ":foo"},
		{Sym("+"), ":+"},
	}
	for _, c := range cases {
		if got := FormatValue(c.v); got != c.want {
			t.Fatalf("FormatValue(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func Test_Printer_SpecialFloats(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{1e21, "1e+21"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		if got := FormatValue(Float(c.f)); got != c.want {
			t.Fatalf("FormatValue(Float(%v)) = %q, want %q", c.f, got, c.want)
		}
	}
}

func Test_Printer_Lists(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{ListOf(), "()"},
		{ListOf(Int(1), Int(2), Int(3)), "(1 2 3)"},
		{ListOf(Sym("a"), Str("b"), Nil), "(:a b nil)"},
		{ListOf(Int(1), ListOf(Int(2), ListOf(Int(3)))), "(1 (2 (3)))"},
	}
	for _, c := range cases {
		if got := FormatValue(c.v); got != c.want {
			t.Fatalf("FormatValue = %q, want %q", got, c.want)
		}
	}
}

func Test_Printer_IntegersRoundTripThroughTheParser(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, -9007199254740993, math.MaxInt64, math.MinInt64} {
		got := parseSrc(t, FormatValue(Int(n))).Elems()[0]
		wantInt(t, got, n)
	}
}
