package enum

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when an argument has the wrong shape,
	// such as an empty name or an ordinal that is not an integer.
	ErrInvalidArgument = errors.New("enum: invalid argument")
	// ErrUnknownName is returned when a name is not declared.
	ErrUnknownName = errors.New("enum: unknown name")
	// ErrUnknownOrdinal is returned when an ordinal is outside the declaration.
	ErrUnknownOrdinal = errors.New("enum: unknown ordinal")
	// ErrAmbiguousName is returned when a declaration is faulty: a name is
	// declared more than once, or a translation is missing for a declared name.
	ErrAmbiguousName = errors.New("enum: ambiguous name")
)
