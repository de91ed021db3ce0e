package crud

import (
	"errors"
	"fmt"
)

const (
	KeyIDExists   = "idexists"
	KeyIDNull     = "idnull"
	KeyIDInvalid  = "idinvalid"
	KeyIDNotFound = "idnotfound"
	// KeyInvalidReference marks a payload pointing at an entity that does not exist.
	KeyInvalidReference = "invalidreference"
)

var (
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

// ValidationError rejects a request whose identifiers are inconsistent with the operation.
type ValidationError struct {
	Entity  string
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Entity, e.Message, e.Key)
}

func newValidationError(entity, key, message string) error {
	return &ValidationError{Entity: entity, Key: key, Message: message}
}

// IsValidation reports whether err is a ValidationError carrying key. An empty key matches any.
func IsValidation(err error, key string) bool {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	return key == "" || vErr.Key == key
}
