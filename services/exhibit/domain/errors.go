package domain

import "errors"

// Sentinel errors for the exhibit domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates no exhibit item matches the requested key.
	ErrItemNotFound = errors.New("exhibit item not found")

	// ErrItemAlreadyExists indicates an item with the same number already
	// exists for the organization.
	ErrItemAlreadyExists = errors.New("exhibit item already exists")

	// ErrInvalidItem indicates the item violates domain constraints.
	ErrInvalidItem = errors.New("invalid exhibit item")
)
