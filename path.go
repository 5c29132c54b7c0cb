package jsontree

import "strings"

// This file implements the dotted-path variants of the Tree API: a name
// like "a.b.c" descends through intermediate Objects.

// DotGet descends root through a dotted path, returning an absent Null
// Value if any segment is missing or any intermediate is not an Object
// (DotGet never auto-creates — only DotSet does).
func (root *Value) DotGet(path string) *Value {
	cur := root
	for _, seg := range strings.Split(path, ".") {
		if cur.Type() != Object {
			return &Value{}
		}
		cur = cur.Get(seg)
	}
	return cur
}

func (root *Value) DotGetString(path string) string   { return root.DotGet(path).Str() }
func (root *Value) DotGetNumber(path string) float64  { return root.DotGet(path).Num() }
func (root *Value) DotGetBoolean(path string) bool    { return root.DotGet(path).Bool() }

// DotSet descends root through a dotted path, auto-creating any missing
// intermediate Object along the way, then sets the final segment to val.
// It fails with ErrType if root or any existing intermediate is not an
// Object, ErrArgument if path is empty or val is nil, and whatever error
// the final Set call produces (e.g. ErrCapacity).
func (root *Value) DotSet(path string, val *Value) error {
	if path == "" || val == nil {
		return ErrArgument
	}
	segs := strings.Split(path, ".")
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		if cur.Type() != Object {
			return ErrType
		}
		next := cur.Get(seg)
		if !cur.Has(seg) {
			next = NewObject()
			if err := cur.Set(seg, next); err != nil {
				return err
			}
		} else if next.Type() != Object {
			return ErrType
		}
		cur = next
	}
	if cur.Type() != Object {
		return ErrType
	}
	return cur.Set(segs[len(segs)-1], val)
}

func (root *Value) DotSetNull(path string) error { return root.DotSet(path, NewNull()) }
func (root *Value) DotSetBoolean(path string, b bool) error {
	return root.DotSet(path, NewBoolean(b))
}
func (root *Value) DotSetNumber(path string, n float64) error {
	return root.DotSet(path, NewNumber(n))
}
func (root *Value) DotSetString(path string, s string) error {
	return root.DotSet(path, NewString(s))
}

// DotRemove descends root through a dotted path and removes the final
// segment. Unlike DotSet it does NOT auto-create: it fails if root or any
// intermediate segment is missing or not an Object.
func (root *Value) DotRemove(path string) error {
	if path == "" {
		return ErrArgument
	}
	segs := strings.Split(path, ".")
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		if cur.Type() != Object {
			return ErrType
		}
		next := cur.Get(seg)
		if next.Type() != Object {
			return ErrArgument
		}
		cur = next
	}
	if cur.Type() != Object {
		return ErrType
	}
	if !cur.Remove(segs[len(segs)-1]) {
		return ErrArgument
	}
	return nil
}
