package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type sample struct {
		Name string `validate:"required"`
		Env  string `validate:"oneof=development production"`
	}

	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{name: "valid", in: sample{Name: "a", Env: "production"}},
		{name: "missing name", in: sample{Env: "production"}, wantErr: "Field: Name, Tag: required"},
		{name: "bad env", in: sample{Name: "a", Env: "qa"}, wantErr: "Field: Env, Tag: oneof"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateVar("email", "kim@school.kr", "required,email"))

	err := ValidateVar("email", "not-an-email", "required,email")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email: validation failed")
	assert.ErrorIs(t, err, ErrInvalid)
}
