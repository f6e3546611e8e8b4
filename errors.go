package jitter

import "errors"

var (
	// ErrInvalidArgument indicates a count, bound or option outside its valid domain.
	ErrInvalidArgument = errors.New("jitter: invalid argument")
	// ErrMalformedPoints indicates a coordinate list that could not be parsed.
	ErrMalformedPoints = errors.New("jitter: malformed point list")
)
