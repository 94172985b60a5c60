package repository

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a uniqueness constraint was violated,
	// e.g. signing up with a taken username.
	ErrDuplicate = errors.New("already exists")
)
