package auth

import (
	"unicode/utf8"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

const (
	minUsernameLength = 3
	minPasswordLength = 3
	// bcrypt rejects anything longer.
	maxPasswordBytes = 72
)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	Username string
	Name     string
	Password string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{
			Field: "username", Code: domain.CodeMissingField, Message: "username is required",
		})
	case utf8.RuneCountInString(i.Username) < minUsernameLength:
		errs = append(errs, domain.FieldError{
			Field: "username", Code: domain.CodeTooShort,
			Message: "username is shorter than the minimum allowed length (3)",
		})
	}

	switch {
	case utf8.RuneCountInString(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{
			Field: "password", Code: domain.CodeTooShort,
			Message: "password must be at least 3 characters long",
		})
	case len(i.Password) > maxPasswordBytes:
		errs = append(errs, domain.FieldError{
			Field: "password", Code: domain.CodeTooLong,
			Message: "password must be at most 72 bytes long",
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for username + password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Code: domain.CodeMissingField, Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Code: domain.CodeMissingField, Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
