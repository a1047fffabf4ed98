package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"roomres/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("end date before start date")),
			code:    http.StatusBadRequest,
			message: "end date before start date",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("we only have rooms 1-10"),
			code:    http.StatusBadRequest,
			message: "we only have rooms 1-10",
		},
		{
			name:    "UnprocessableEntity",
			err:     failure.UnprocessableEntity("invalid date format"),
			code:    http.StatusUnprocessableEntity,
			message: "invalid date format",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("reservation not found"),
			code:    http.StatusNotFound,
			message: "reservation not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("room not available"),
			code:    http.StatusConflict,
			message: "room not available",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, failure.GetCode(tt.err))
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.err.Error())
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("checking availability: %w", failure.Conflict("room not available"))

	if code := failure.GetCode(wrapped); code != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, code)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, code)
	}
}
