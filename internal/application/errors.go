package application

import "errors"

var (
	// ErrUnauthorized is returned when the acting user lacks permission for an operation.
	ErrUnauthorized = errors.New("application: unauthorized")
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrInvalidCredentials is returned when an admin password does not match.
	ErrInvalidCredentials = errors.New("application: invalid credentials")
	// ErrProfileIncomplete is returned when an operation requires a filled-in profile.
	ErrProfileIncomplete = errors.New("application: profile incomplete")
)

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
