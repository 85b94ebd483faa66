package parser

import (
	"errors"
)

var (
	// ErrSyntax is returned for malformed input. The wrapping error carries the byte position.
	ErrSyntax = errors.New("syntax error")
	// ErrRecursiveDefinition is returned when a user definition refers to itself, directly or not.
	ErrRecursiveDefinition = errors.New("recursive definition")
	// ErrArity is returned when a user function is called with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)
