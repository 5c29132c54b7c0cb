package jsontree

// Validate answers whether value conforms to schema under a small
// structural subset of JSON Schema:
//
//   - a Null schema accepts any value, including one of a mismatched
//     variant — a Null in schema position stands for "anything goes" here,
//     not literally "must be null".
//   - otherwise the variant tags of schema and value must match.
//   - for an Object schema, every (name, schemaChild) pair must have a
//     matching name in value whose child recursively conforms; extra names
//     in value are allowed; an empty schema object accepts any object.
//   - for an Array schema, an empty schema array accepts any array;
//     otherwise the schema's first element is the element schema and every
//     element of value must conform to it.
//   - scalar tags (String, Number, Boolean) require only tag equality.
func Validate(schema, value *Value) bool {
	if schema.Type() == Null {
		return true
	}
	if schema.Type() != value.Type() {
		return false
	}
	switch schema.Type() {
	case Object:
		for _, m := range schema.objVal {
			if !value.Has(m.name) {
				return false
			}
			if !Validate(m.value, value.Get(m.name)) {
				return false
			}
		}
		return true
	case Array:
		if len(schema.arrVal) == 0 {
			return true
		}
		elemSchema := schema.arrVal[0]
		for _, e := range value.arrVal {
			if !Validate(elemSchema, e) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
