package jsontree

// This file implements the Tree API: typed getters/setters, indexed and
// by-name access, append/replace/remove, and clear. Dotted-path variants
// live in path.go.

// Bool unwraps v as a Boolean, returning false if v is nil or not Boolean.
// Typed getters never fail outright; they return the variant's neutral
// default on a mismatch instead.
func (v *Value) Bool() bool {
	if v.Type() != Boolean {
		return false
	}
	return v.boolVal
}

// Num unwraps v as a Number, returning 0 if v is nil or not Number.
func (v *Value) Num() float64 {
	if v.Type() != Number {
		return 0
	}
	return v.numVal
}

// Str unwraps v as a String, returning "" if v is nil or not String.
func (v *Value) Str() string {
	if v.Type() != String {
		return ""
	}
	return v.strVal
}

// Count returns the number of elements in v: pairs for an Object, elements
// for an Array, 0 for anything else (including a nil or absent v).
func (v *Value) Count() int {
	switch v.Type() {
	case Object:
		return len(v.objVal)
	case Array:
		return len(v.arrVal)
	default:
		return 0
	}
}

// Get returns the value named name in Object v, or an absent Null Value if
// v is not an Object or has no such name.
func (v *Value) Get(name string) *Value {
	if v.Type() != Object {
		return &Value{}
	}
	for _, m := range v.objVal {
		if m.name == name {
			return m.value
		}
	}
	return &Value{}
}

// Has reports whether Object v contains name. It is false if v is not an
// Object.
func (v *Value) Has(name string) bool {
	if v.Type() != Object {
		return false
	}
	for _, m := range v.objVal {
		if m.name == name {
			return true
		}
	}
	return false
}

// Name returns the key at position i in Object v and true, or "" and false
// if v is not an Object or i is out of range.
func (v *Value) Name(i int) (string, bool) {
	if v.Type() != Object || i < 0 || i >= len(v.objVal) {
		return "", false
	}
	return v.objVal[i].name, true
}

// At returns the element at position i in Array v, or an absent Null Value
// if v is not an Array or i is out of range.
func (v *Value) At(i int) *Value {
	if v.Type() != Array || i < 0 || i >= len(v.arrVal) {
		return &Value{}
	}
	return v.arrVal[i]
}

// GetString, GetNumber and GetBoolean combine Get with a typed unwrap for
// one-step named access.
func (v *Value) GetString(name string) string   { return v.Get(name).Str() }
func (v *Value) GetNumber(name string) float64  { return v.Get(name).Num() }
func (v *Value) GetBoolean(name string) bool    { return v.Get(name).Bool() }

// AtString, AtNumber and AtBoolean are the Array-indexed equivalents.
func (v *Value) AtString(i int) string  { return v.At(i).Str() }
func (v *Value) AtNumber(i int) float64 { return v.At(i).Num() }
func (v *Value) AtBoolean(i int) bool   { return v.At(i).Bool() }

// Set replaces-or-inserts name/val in Object v. Names stay unique: a set
// against an existing name replaces its value in place without changing
// Count. It fails with ErrType if v is not an Object,
// ErrArgument if val is nil, and ErrCapacity if inserting a new name would
// exceed ObjectMaxCapacity.
func (v *Value) Set(name string, val *Value) error {
	if v.Type() != Object {
		return ErrType
	}
	if val == nil {
		return ErrArgument
	}
	for i, m := range v.objVal {
		if m.name == name {
			v.objVal[i].value = val
			return nil
		}
	}
	if len(v.objVal) >= ObjectMaxCapacity {
		return ErrCapacity
	}
	v.objVal = appendMember(v.objVal, member{name: name, value: val})
	return nil
}

func (v *Value) SetNull(name string) error           { return v.Set(name, NewNull()) }
func (v *Value) SetBoolean(name string, b bool) error { return v.Set(name, NewBoolean(b)) }
func (v *Value) SetNumber(name string, n float64) error {
	return v.Set(name, NewNumber(n))
}
func (v *Value) SetString(name string, s string) error { return v.Set(name, NewString(s)) }

// Append adds val as the new last element of Array v. It fails with
// ErrType if v is not an Array, ErrArgument if val is nil, and ErrCapacity
// if the append would exceed ArrayMaxCapacity.
func (v *Value) Append(val *Value) error {
	if v.Type() != Array {
		return ErrType
	}
	if val == nil {
		return ErrArgument
	}
	if len(v.arrVal) >= ArrayMaxCapacity {
		return ErrCapacity
	}
	v.arrVal = appendValue(v.arrVal, val)
	return nil
}

func (v *Value) AppendNull() error           { return v.Append(NewNull()) }
func (v *Value) AppendBoolean(b bool) error  { return v.Append(NewBoolean(b)) }
func (v *Value) AppendNumber(n float64) error { return v.Append(NewNumber(n)) }
func (v *Value) AppendString(s string) error { return v.Append(NewString(s)) }

// ReplaceAt overwrites the element at position i in Array v. It fails with
// ErrType if v is not an Array, ErrArgument if val is nil, and ErrArgument
// if i is out of range.
func (v *Value) ReplaceAt(i int, val *Value) error {
	if v.Type() != Array {
		return ErrType
	}
	if val == nil {
		return ErrArgument
	}
	if i < 0 || i >= len(v.arrVal) {
		return ErrArgument
	}
	v.arrVal[i] = val
	return nil
}

// Remove deletes the pair named name from Object v using swap-with-last:
// the last pair in insertion order is moved into the vacated slot, so the
// iteration order of any pair other than the removed one and the former
// last one is preserved, but positional stability across removals is NOT
// guaranteed. It reports whether a pair was removed.
func (v *Value) Remove(name string) bool {
	if v.Type() != Object {
		return false
	}
	for i, m := range v.objVal {
		if m.name == name {
			last := len(v.objVal) - 1
			v.objVal[i] = v.objVal[last]
			v.objVal = v.objVal[:last]
			return true
		}
	}
	return false
}

// RemoveAt deletes the element at position i from Array v using
// swap-with-last: the former last element occupies index i afterward. It
// reports whether an element was removed.
func (v *Value) RemoveAt(i int) bool {
	if v.Type() != Array || i < 0 || i >= len(v.arrVal) {
		return false
	}
	last := len(v.arrVal) - 1
	v.arrVal[i] = v.arrVal[last]
	v.arrVal = v.arrVal[:last]
	return true
}

// Clear empties Object or Array v in place, leaving it with zero elements.
// It does nothing for any other variant.
func (v *Value) Clear() {
	switch v.Type() {
	case Object:
		v.objVal = make([]member, 0, startingCapacity)
	case Array:
		v.arrVal = make([]*Value, 0, startingCapacity)
	}
}

// appendMember grows dst by one member, enforcing the geometric growth
// schedule (double from startingCapacity, capped at ObjectMaxCapacity)
// rather than relying solely on Go's own slice-growth heuristic.
func appendMember(dst []member, m member) []member {
	if len(dst) == cap(dst) {
		grown := make([]member, len(dst), growCapacity(cap(dst), ObjectMaxCapacity))
		copy(grown, dst)
		dst = grown
	}
	return append(dst, m)
}

// appendValue is appendMember's Array counterpart.
func appendValue(dst []*Value, v *Value) []*Value {
	if len(dst) == cap(dst) {
		grown := make([]*Value, len(dst), growCapacity(cap(dst), ArrayMaxCapacity))
		copy(grown, dst)
		dst = grown
	}
	return append(dst, v)
}
