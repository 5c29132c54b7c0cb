package jsontree

// DeepCopy produces a structurally identical Value tree that shares no
// mutable storage with v — mutating the copy never affects v and vice
// versa. A nil v copies to a fresh Null Value.
func (v *Value) DeepCopy() *Value {
	if v == nil {
		return &Value{}
	}
	cp := &Value{
		typ:     v.typ,
		boolVal: v.boolVal,
		numVal:  v.numVal,
		strVal:  v.strVal,
	}
	switch v.typ {
	case Array:
		cp.arrVal = make([]*Value, len(v.arrVal))
		for i, e := range v.arrVal {
			cp.arrVal[i] = e.DeepCopy()
		}
	case Object:
		cp.objVal = make([]member, len(v.objVal))
		for i, m := range v.objVal {
			cp.objVal[i] = member{name: m.name, value: m.value.DeepCopy()}
		}
	}
	return cp
}
