package value

import (
	"testing"

	"github.com/kr/pretty"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{IntFromInt64(0), false},
		{IntFromInt64(1), true},
		{Float(0), false},
		{Float(0.1), true},
		{Str(""), false},
		{Str("x"), true},
		{Bool(false), false},
		{Bool(true), true},
		{None, false},
		{Tuple(), false},
		{Tuple(IntFromInt64(0)), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%# v.Truthy() = %v, want %v", pretty.Formatter(c.v), got, c.want)
		}
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{IntFromInt64(-42), "-42"},
		{Float(3), "3.0"},
		{Float(3.5), "3.5"},
		{Str("hi"), "hi"},
		{Bool(true), "True"},
		{Bool(false), "False"},
		{None, "None"},
		{Tuple(IntFromInt64(1), IntFromInt64(2)), "1 2"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%# v.String() = %q, want %q", pretty.Formatter(c.v), got, c.want)
		}
	}
}

func TestFlattenOneLevel(t *testing.T) {
	inner := Tuple(IntFromInt64(1), IntFromInt64(2))
	outer := Tuple(inner, IntFromInt64(3))
	if len(outer.Tuple) != 3 {
		t.Fatalf("expected one level of flattening, got %# v", pretty.Formatter(outer))
	}
}

func TestPack(t *testing.T) {
	if got := Pack(nil); got.Kind != KindNone {
		t.Errorf("Pack(nil) = %v, want None", got)
	}
	if got := Pack([]Value{IntFromInt64(5)}); got.Kind != KindInt {
		t.Errorf("Pack(single) should unwrap, got %v", got)
	}
	if got := Pack([]Value{IntFromInt64(1), IntFromInt64(2)}); got.Kind != KindTuple {
		t.Errorf("Pack(multi) should be a Tuple, got %v", got)
	}
}

func TestCoerceTable(t *testing.T) {
	if v, err := ToInt(Str("42")); err != nil || v.Int.String() != "42" {
		t.Errorf("ToInt(\"42\") = %v, %v", v, err)
	}
	if _, err := ToInt(Str("abc")); err == nil {
		t.Error("ToInt(\"abc\") should fail")
	}
	if v, err := ToFloat(IntFromInt64(7)); err != nil || v.Float != 7 {
		t.Errorf("ToFloat(7) = %v, %v", v, err)
	}
	if v := ToStr(None); v.Str != "None" {
		t.Errorf("ToStr(None) = %q", v.Str)
	}
	if _, err := ToInt(None); err == nil {
		t.Error("ToInt(None) should fail")
	}
	if v := ToBool(Str("")); v.Bool {
		t.Error("ToBool(\"\") should be False")
	}
}
