package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		confirm  string
		wantErrs []error
	}{
		{name: "valid", fullName: "Ann", email: "a@x.com", password: "secret12", confirm: "secret12"},
		{name: "missing everything", wantErrs: []error{ErrFullNameRequired, ErrEmailRequired, ErrPasswordRequired}},
		{name: "bad email", fullName: "Ann", email: "not-an-email", password: "secret12", confirm: "secret12", wantErrs: []error{ErrEmailInvalid}},
		{name: "display name form", fullName: "Ann", email: "Ann <a@x.com>", password: "secret12", confirm: "secret12", wantErrs: []error{ErrEmailInvalid}},
		{name: "short password", fullName: "Ann", email: "a@x.com", password: "secret1", confirm: "secret1", wantErrs: []error{ErrPasswordTooShort}},
		{name: "mismatch", fullName: "Ann", email: "a@x.com", password: "secret12", confirm: "secret13", wantErrs: []error{ErrPasswordMismatch}},
		{name: "blank name", fullName: "   ", email: "a@x.com", password: "secret12", confirm: "secret12", wantErrs: []error{ErrFullNameRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.fullName, tt.email, []byte(tt.password), []byte(tt.confirm))
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, ValidateLogin(" a@x.com ", []byte("x")))
	assert.ErrorIs(t, ValidateLogin("", []byte("x")), ErrEmailRequired)
	assert.ErrorIs(t, ValidateLogin("a@", []byte("x")), ErrEmailInvalid)
	assert.ErrorIs(t, ValidateLogin("a@x.com", nil), ErrPasswordRequired)
}

func TestPasswordStrength(t *testing.T) {
	assert.Equal(t, StrengthWeak, PasswordStrength([]byte("short")))
	assert.Equal(t, StrengthMedium, PasswordStrength([]byte("eightchr")))
	assert.Equal(t, StrengthMedium, PasswordStrength([]byte("elevenchars")))
	assert.Equal(t, StrengthStrong, PasswordStrength([]byte("twelve-chars")))
}
