package repository

import (
	"errors"
	"fmt"
	"net/http"
	"roomres/shared/failure"
	"testing"

	"github.com/lib/pq"
)

func TestMapExclusionViolation(t *testing.T) {
	wrapped := fmt.Errorf("failed to insert data (reservation): %w", &pq.Error{Code: "23P01"})

	err := mapExclusionViolation(wrapped)

	if failure.GetCode(err) != http.StatusConflict {
		t.Errorf("expected exclusion violation to map to %d, got %d", http.StatusConflict, failure.GetCode(err))
	}
}

func TestMapExclusionViolation_OtherErrorsPassThrough(t *testing.T) {
	original := errors.New("connection refused")

	if err := mapExclusionViolation(original); !errors.Is(err, original) {
		t.Errorf("expected error to pass through unchanged, got %v", err)
	}

	if err := mapExclusionViolation(nil); err != nil {
		t.Errorf("expected nil to pass through, got %v", err)
	}
}
