package jsontree

import (
	"strings"
	"testing"
)

func TestSerializeNumberPolicy(t *testing.T) {
	obj := NewObject()
	if err := obj.SetNumber("n", 2.0); err != nil {
		t.Fatal(err)
	}
	if err := obj.SetNumber("m", 2.5); err != nil {
		t.Fatal(err)
	}
	if err := obj.SetString("s", `he said "hi"`); err != nil {
		t.Fatal(err)
	}

	out, err := Serialize(obj)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"n":2`) {
		t.Errorf("expected integer form %q in %q", `"n":2`, out)
	}
	if strings.Contains(out, `"n":2.`) {
		t.Errorf("n should not have a fractional part: %q", out)
	}
	if !strings.Contains(out, `"m":2.500000`) {
		t.Errorf("expected fixed float form %q in %q", `"m":2.500000`, out)
	}
	if !strings.Contains(out, `"s":"he said \"hi\""`) {
		t.Errorf("expected escaped quotes in %q", out)
	}

	size, err := SerializeSize(obj)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != size-1 {
		t.Errorf("len(out)=%d, want size-1=%d", len(out), size-1)
	}
}

func TestSerializeSizePredictsExactLength(t *testing.T) {
	inputs := []string{
		`{}`,
		`[]`,
		`{"a":1,"b":[true,null,"x"]}`,
		`[1,2.5,-3,"hi there",{"k":[]}]`,
	}
	for _, in := range inputs {
		v, err := ParseString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		out, err := Serialize(v)
		if err != nil {
			t.Fatalf("serialize %q: %v", in, err)
		}
		size, err := SerializeSize(v)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != size-1 {
			t.Errorf("input %q: len(out)=%d want %d", in, len(out), size-1)
		}
	}
}

func TestSerializeIntoFailsOnSmallBuffer(t *testing.T) {
	v := NewArray()
	_ = v.AppendNumber(1)
	_ = v.AppendNumber(2)

	buf := make([]byte, 2)
	if _, err := SerializeInto(v, buf); err == nil {
		t.Error("expected failure writing into undersized buffer")
	}

	size, _ := SerializeSize(v)
	buf = make([]byte, size)
	n, err := SerializeInto(v, buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf[:n]) != "[1,2]" {
		t.Errorf("got %q want [1,2]", buf[:n])
	}
}

func TestSerializeRejectsNonFiniteNumbers(t *testing.T) {
	for _, f := range []float64{
		1.0 / zero(),
		-1.0 / zero(),
		zero() / zero(),
	} {
		v := NewNumber(f)
		if _, err := Serialize(v); err == nil {
			t.Errorf("value %v: expected serialize failure for non-finite number", f)
		}
	}
}

func zero() float64 { return 0 }

func TestRoundTripParseSerialize(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[true,null,"x"]}`,
		`[1,2.5,-3,"hi there",{"k":[]}]`,
		`{}`,
		`[]`,
	}
	for _, in := range inputs {
		v, err := ParseString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		out, err := Serialize(v)
		if err != nil {
			t.Fatalf("serialize %q: %v", in, err)
		}
		v2, err := ParseString(out)
		if err != nil {
			t.Fatalf("re-parse %q: %v", out, err)
		}
		if !Equals(v, v2) {
			t.Errorf("round trip mismatch: %q -> %q", in, out)
		}
	}
}
