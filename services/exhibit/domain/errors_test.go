package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	if ErrItemNotFound == nil {
		t.Fatal("ErrItemNotFound must not be nil")
	}
	if ErrItemAlreadyExists == nil {
		t.Fatal("ErrItemAlreadyExists must not be nil")
	}
	if ErrInvalidItem == nil {
		t.Fatal("ErrInvalidItem must not be nil")
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("resolve visit: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidItem, errors.New("title must not be empty"))
	if !errors.Is(wrapped2, ErrInvalidItem) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidItem")
	}
}
