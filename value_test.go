package jsontree

import (
	"fmt"
	"testing"
)

func TestTypeStrings(t *testing.T) {
	for _, test := range []struct {
		input    Type
		expected string
	}{
		{Null, typeStrings[Null]},
		{Boolean, typeStrings[Boolean]},
		{Number, typeStrings[Number]},
		{String, typeStrings[String]},
		{Array, typeStrings[Array]},
		{Object, typeStrings[Object]},
		{numTypes, "<unknown>"},
		{1000, "<unknown>"},
		{-1, "<unknown>"},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			actual := test.input.String()
			if test.expected != actual {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestType(t *testing.T) {
	for _, test := range []struct {
		input    *Value
		expected Type
	}{
		{&Value{typ: Null}, Null},
		{&Value{typ: Boolean}, Boolean},
		{&Value{typ: Number}, Number},
		{&Value{typ: String}, String},
		{&Value{typ: Array}, Array},
		{&Value{typ: Object}, Object},
		{&Value{typ: numTypes}, typeInvalid},
		{&Value{typ: 1000}, typeInvalid},
		{&Value{typ: -1}, typeInvalid},
		{nil, typeInvalid},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			actual := test.input.Type()
			if test.expected != actual {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	if typ := NewNull().Type(); typ != Null {
		t.Errorf("NewNull: expected Null got %v", typ)
	}
	if b := NewBoolean(true).Bool(); !b {
		t.Errorf("NewBoolean(true): expected true")
	}
	if n := NewNumber(3.5).Num(); n != 3.5 {
		t.Errorf("NewNumber(3.5): expected 3.5 got %v", n)
	}
	if s := NewString("hi").Str(); s != "hi" {
		t.Errorf("NewString: expected hi got %v", s)
	}
	if typ := NewArray().Type(); typ != Array {
		t.Errorf("NewArray: expected Array got %v", typ)
	}
	if typ := NewObject().Type(); typ != Object {
		t.Errorf("NewObject: expected Object got %v", typ)
	}
}

func TestWrongVariantUnwrapsToDefault(t *testing.T) {
	s := NewString("x")
	if s.Bool() != false {
		t.Error("Bool() on a String should default to false")
	}
	if s.Num() != 0 {
		t.Error("Num() on a String should default to 0")
	}
	n := NewNumber(1)
	if n.Str() != "" {
		t.Error("Str() on a Number should default to empty string")
	}
}

func TestDebugStringFormat(t *testing.T) {
	v, err := ParseString(`{"a":[true,null,"x"]}`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	got := v.String()
	want := `{"a": [true, null, "x"]}`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
