package formatspec

import "errors"

var (
	// ErrSyntax indicates the specifier string could not be parsed.
	ErrSyntax = errors.New("formatspec: invalid specifier")
	// ErrIncompatible indicates a parsed specifier cannot be applied to
	// the given value's type.
	ErrIncompatible = errors.New("formatspec: specifier incompatible with value")
)
