package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"classbook/shared/failure"
	"classbook/shared/validator"
)

type createRequest struct {
	RoomNo string `json:"room_no" validate:"required"`
	Reason string `json:"reason"  validate:"required,max=500"`
	Status string `json:"status"  validate:"omitempty,oneof=pending approved rejected"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"room_no":"65","reason":"club meeting"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"room_no":"65"}`,
			wantErr: true,
		},
		{
			name:    "invalid enum value",
			body:    `{"room_no":"65","reason":"club meeting","status":"cancelled"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"room_no":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-03-31", "required"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
