package domain

import "errors"

// ErrInvalidArgument is returned when an input is outside the domain of an operation
// (negative factorial, non-positive password length, unknown hash algorithm).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned when a file requested by a load operation does not exist.
var ErrNotFound = errors.New("not found")

// ErrMalformedData is returned when file content cannot be parsed in the expected shape.
var ErrMalformedData = errors.New("malformed data")

// ErrIOFailure is returned when the underlying filesystem operation fails.
var ErrIOFailure = errors.New("io failure")
