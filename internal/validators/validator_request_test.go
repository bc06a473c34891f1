package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordForm struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()
	red := "#FF0000"
	notColor := "red"

	tests := []struct {
		name    string
		value   any
		fields  []string
		wantErr error
	}{
		{name: "valid", value: passwordForm{Email: "a@x.com", Password: "secret1", Color: &red}},
		{name: "valid pointer", value: &passwordForm{Email: "a@x.com", Password: "secret1"}},
		{name: "missing email", value: passwordForm{Password: "secret1"}, wantErr: ErrRequiredField},
		{name: "bad email", value: passwordForm{Email: "nope", Password: "secret1"}, wantErr: ErrInvalidFormat},
		{name: "short password", value: passwordForm{Email: "a@x.com", Password: "12345"}, wantErr: ErrTooShort},
		{name: "korean password counts runes", value: passwordForm{Email: "a@x.com", Password: "비밀번호입니다"}},
		{name: "bad color", value: passwordForm{Email: "a@x.com", Password: "secret1", Color: &notColor}, wantErr: ErrInvalidFormat},
		{name: "partial ignores other fields", value: passwordForm{Password: "secret1"}, fields: []string{"Password"}},
		{name: "not a struct", value: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.value, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_UsesJSONFieldNames(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.Favorite{CategoryID: "network"})

	require.ErrorIs(t, err, ErrRequiredField)
	assert.Contains(t, err.Error(), `"questionId"`)
}
