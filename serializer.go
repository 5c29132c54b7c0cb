package jsontree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file implements a two-pass serializer: a size pass that computes
// the exact compact-JSON byte count, and an emit pass that writes the same
// decisions into a buffer.

// maxSafeIntegerMagnitude bounds the integer/float boundary at the largest
// magnitude a float64 can represent exactly as an integer (2^53). This is
// a deliberately wider boundary than a naive 32-bit int truncation check,
// so values up to the full exactly-representable range still serialize in
// integer form instead of falling over to fixed-point.
const maxSafeIntegerMagnitude = 1 << 53

// isIntegral reports whether f should be serialized in integer form: it
// equals its own truncation and falls within the exactly-representable
// integer range.
func isIntegral(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f) && f >= -maxSafeIntegerMagnitude && f <= maxSafeIntegerMagnitude
}

// formatNumber renders f as either the integer form when isIntegral(f), or
// the fixed `%f`-style floating point form otherwise. This is a deliberate
// compatibility contract, not a shortest-round-trip formatter — callers
// depend on the exact byte layout it produces.
func formatNumber(f float64) string {
	if isIntegral(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// sizeOf computes the exact number of bytes the compact serialization of v
// will occupy, excluding the terminator byte SerializeSize adds.
func sizeOf(v *Value) (int, error) {
	switch v.Type() {
	case Null:
		return 4, nil
	case Boolean:
		if v.boolVal {
			return 4, nil
		}
		return 5, nil
	case Number:
		if math.IsNaN(v.numVal) || math.IsInf(v.numVal, 0) {
			return 0, fmt.Errorf("%w: cannot serialize a non-finite number", ErrArgument)
		}
		return len(formatNumber(v.numVal)), nil
	case String:
		return encodedStringLen(v.strVal) + 2, nil
	case Array:
		total := 2 // '[' + ']'
		for i, e := range v.arrVal {
			n, err := sizeOf(e)
			if err != nil {
				return 0, err
			}
			total += n
			if i > 0 {
				total++ // ','
			}
		}
		return total, nil
	case Object:
		total := 2 // '{' + '}'
		for i, m := range v.objVal {
			n, err := sizeOf(m.value)
			if err != nil {
				return 0, err
			}
			total += encodedStringLen(m.name) + 2 // quoted key
			total += 1                            // ':'
			total += n
			if i > 0 {
				total++ // ','
			}
		}
		return total, nil
	default:
		return 0, fmt.Errorf("%w: value has no variant to serialize", ErrArgument)
	}
}

// emitValue writes v's compact JSON form to b, using the same decisions as
// sizeOf.
func emitValue(b *strings.Builder, v *Value) error {
	switch v.Type() {
	case Null:
		b.WriteString("null")
	case Boolean:
		if v.boolVal {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		if math.IsNaN(v.numVal) || math.IsInf(v.numVal, 0) {
			return fmt.Errorf("%w: cannot serialize a non-finite number", ErrArgument)
		}
		b.WriteString(formatNumber(v.numVal))
	case String:
		b.WriteByte('"')
		writeEncodedString(b, v.strVal)
		b.WriteByte('"')
	case Array:
		b.WriteByte('[')
		for i, e := range v.arrVal {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := emitValue(b, e); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case Object:
		b.WriteByte('{')
		for i, m := range v.objVal {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			writeEncodedString(b, m.name)
			b.WriteByte('"')
			b.WriteByte(':')
			if err := emitValue(b, m.value); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("%w: value has no variant to serialize", ErrArgument)
	}
	return nil
}

// SerializeSize returns the byte count serializing v would produce,
// including one terminator byte.
func SerializeSize(v *Value) (int, error) {
	n, err := sizeOf(v)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// Serialize renders v as compact JSON text: no whitespace between tokens,
// formatNumber's Number policy, and writeEncodedString's string escape
// policy.
func Serialize(v *Value) (string, error) {
	size, err := sizeOf(v)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(size)
	if err := emitValue(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// SerializeInto writes v's compact JSON text into buf. buf must have room
// for at least SerializeSize(v) bytes; writing to a smaller buffer fails
// without copying anything into it. It returns the number of bytes
// written (len(text), not including the terminator SerializeSize counts).
func SerializeInto(v *Value, buf []byte) (int, error) {
	need, err := SerializeSize(v)
	if err != nil {
		return 0, err
	}
	if len(buf) < need {
		return 0, fmt.Errorf("%w: buffer too small: need %d bytes, have %d", ErrArgument, need, len(buf))
	}
	text, err := Serialize(v)
	if err != nil {
		return 0, err
	}
	return copy(buf, text), nil
}
