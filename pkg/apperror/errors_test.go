package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestViolationsCollectAll(t *testing.T) {
	var v Violations
	v.Add("make", "make is required")
	v.AddIf(true, "price", "price must be non-negative")
	v.AddIf(false, "year", "should not appear")

	err := v.Err()
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	appErr := GetAppError(err)
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d, want 422", appErr.Code)
	}
	if len(appErr.Errors) != 2 {
		t.Fatalf("expected both violations reported together, got %d", len(appErr.Errors))
	}
}

func TestViolationsEmpty(t *testing.T) {
	var v Violations
	if err := v.Err(); err != nil {
		t.Fatalf("no violations should yield nil, got %v", err)
	}
}

func TestGetAppErrorWrapsUnknown(t *testing.T) {
	err := fmt.Errorf("query failed: %w", errors.New("connection reset"))
	appErr := GetAppError(err)
	if appErr.Code != http.StatusInternalServerError {
		t.Fatalf("unknown errors map to 500, got %d", appErr.Code)
	}
}

func TestGetAppErrorPreservesWrapped(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrNotFound)
	appErr := GetAppError(wrapped)
	if appErr.Code != http.StatusNotFound {
		t.Fatalf("wrapped AppError must keep its code, got %d", appErr.Code)
	}
}
