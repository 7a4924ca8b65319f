package testutil

import (
	"errors"
	"testing"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertConsistencyWarning checks that err is an *AppError flagged as a
// consistency warning.
func AssertConsistencyWarning(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("expected consistency warning, got nil")
	}
	if !apperrors.IsConsistencyWarning(err) {
		t.Fatalf("expected consistency warning, got %v", err)
	}
}
