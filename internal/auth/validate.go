package auth

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password the registration form accepts.
const MinPasswordLength = 8

var (
	ErrFullNameRequired = errors.New("full name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("enter a valid email address")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Strength grades a password for display while registering.
type Strength string

const (
	StrengthWeak   Strength = "Weak"
	StrengthMedium Strength = "Medium"
	StrengthStrong Strength = "Strong"
)

func PasswordStrength(password []byte) Strength {
	n := utf8.RuneCount(password)
	switch {
	case n >= 12:
		return StrengthStrong
	case n >= MinPasswordLength:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

// ValidateRegistration applies the sign-up form rules. All problems are
// returned joined, in form order.
func ValidateRegistration(fullName, email string, password, confirm []byte) error {
	var errs []error

	if trimSpace(fullName) == "" {
		errs = append(errs, ErrFullNameRequired)
	}
	if err := validateEmail(email); err != nil {
		errs = append(errs, err)
	}
	switch {
	case len(password) == 0:
		errs = append(errs, ErrPasswordRequired)
	case utf8.RuneCount(password) < MinPasswordLength:
		errs = append(errs, ErrPasswordTooShort)
	}
	if string(password) != string(confirm) {
		errs = append(errs, ErrPasswordMismatch)
	}

	return errors.Join(errs...)
}

// ValidateLogin applies the sign-in form rules.
func ValidateLogin(email string, password []byte) error {
	var errs []error
	if err := validateEmail(email); err != nil {
		errs = append(errs, err)
	}
	if len(password) == 0 {
		errs = append(errs, ErrPasswordRequired)
	}
	return errors.Join(errs...)
}

func validateEmail(email string) error {
	email = trimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	// reject "Name <a@x.com>" forms; only a bare address is an email here
	if err != nil || addr.Address != email {
		return ErrEmailInvalid
	}
	return nil
}

func trimSpace(s string) string { return strings.TrimSpace(s) }
