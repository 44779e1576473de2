package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("deal", "abc-123")

	if got := err.Error(); got != "deal abc-123 not found" {
		t.Errorf("unexpected message: %q", got)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should match a NotFoundError")
	}
	if IsValidation(err) {
		t.Error("IsValidation should not match a NotFoundError")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("rating", "must be between 1 and 5")

	if got := err.Error(); got != "invalid rating: must be between 1 and 5" {
		t.Errorf("unexpected message: %q", got)
	}
	if !IsValidation(err) {
		t.Error("IsValidation should match a ValidationError")
	}
	if IsNotFound(err) {
		t.Error("IsNotFound should not match a ValidationError")
	}
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	wrapped := fmt.Errorf("loading deal: %w", NewNotFoundError("deal", "x"))
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through wrapping")
	}

	wrapped = fmt.Errorf("creating deal: %w", NewValidationError("company", "must not be empty"))
	if !IsValidation(wrapped) {
		t.Error("IsValidation should see through wrapping")
	}
}

func TestPlainErrorsDoNotMatch(t *testing.T) {
	err := errors.New("disk on fire")
	if IsNotFound(err) || IsValidation(err) {
		t.Error("plain errors should not match either predicate")
	}
}
