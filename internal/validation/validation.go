package validation

import (
	"net/mail"
	"strings"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries all field errors for one request, so a form can show every
// problem at once instead of the first.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return strings.Join(msgs, "; ")
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidateCredentials checks an email/password pair before any store access.
// It returns nil when both fields pass.
func ValidateCredentials(email, password string) *Error {
	var fields []FieldError

	if email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields = append(fields, FieldError{Field: "email", Message: "email is not a valid address"})
	}

	if password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "password is required"})
	} else if len(password) < MinPasswordLength {
		fields = append(fields, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}

	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}

// NormalizeEmail applies the store's email policy: trimmed and lower-cased,
// so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
