package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ItemNumber is a value object for the manager-assigned exhibit identifier.
// It is unique per tenant, not globally; visitors type or scan it, so it must
// be short and free of whitespace.
type ItemNumber string

const maxItemNumberLength = 64

var (
	errEmptyOwner       = errors.New("owner id must not be empty")
	errEmptyDescription = errors.New("description must not be empty")
)

// NewItemNumber constructs a valid ItemNumber or returns an error when
// constraints are violated.
func NewItemNumber(s string) (ItemNumber, error) {
	if s == "" {
		return "", errors.New("item number must not be empty")
	}
	if len(s) > maxItemNumberLength {
		return "", fmt.Errorf("item number must not exceed %d characters", maxItemNumberLength)
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return "", errors.New("item number must not contain whitespace")
		}
		if unicode.IsControl(r) {
			return "", errors.New("item number must not contain control characters")
		}
	}
	return ItemNumber(s), nil
}

// String returns the underlying string value.
func (n ItemNumber) String() string {
	return string(n)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title must not be empty")
	}
	if len(title) > 255 {
		return errors.New("title must not exceed 255 characters")
	}
	return nil
}
