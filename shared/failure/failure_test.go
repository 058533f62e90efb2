package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"classbook/shared/failure"
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

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
		},
		{
			name:    "InvalidDateParam",
			failure: failure.InvalidDateParam,
			code:    http.StatusBadRequest,
		},
		{
			name:    "InvalidActionParam",
			failure: failure.InvalidActionParam,
			code:    http.StatusBadRequest,
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "failure error carries its own code",
			err:  failure.NotFound("booking not found"),
			code: http.StatusNotFound,
		},
		{
			name: "conflict",
			err:  failure.Conflict("slot is already booked"),
			code: http.StatusConflict,
		},
		{
			name: "unauthorized",
			err:  failure.Unauthorized("invalid username or password"),
			code: http.StatusUnauthorized,
		},
		{
			name: "plain error maps to internal server error",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}
