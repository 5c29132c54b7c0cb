package jsontree

import "errors"

var (
	// ErrParse covers any syntactic failure: bad token, unterminated string,
	// bad escape, bad surrogate pair, or invalid number shape. Exceeding the
	// nesting depth cap is reported as ErrCapacity.
	ErrParse = errors.New("jsontree: parse error")

	// ErrType is returned when a typed accessor is used as a writer against
	// a Value of the wrong variant. Typed getters never return ErrType —
	// they return the variant's neutral default instead.
	ErrType = errors.New("jsontree: type error")

	// ErrCapacity is returned when an object or array mutation would exceed
	// the hard caps in limits.go, or when parsing would exceed them.
	ErrCapacity = errors.New("jsontree: capacity exceeded")

	// ErrArgument is returned for malformed call arguments: a nil val to
	// store, an empty dotted path, an out-of-range index, or similar caller
	// errors. A writer called on a nil receiver reports ErrType.
	ErrArgument = errors.New("jsontree: invalid argument")

	// ErrDuplicateKey is returned when the parser encounters a second
	// occurrence of an object key already added to that object. Object
	// keys are unique by construction; a repeated key is a parse error,
	// not a silent overwrite.
	ErrDuplicateKey = errors.New("jsontree: duplicate object key")
)
