package errors

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidConfigurationError reports a bad construction or restyle parameter.
// The offending call fails; all other state is left untouched.
type InvalidConfigurationError struct {
	Field   string
	Message string
	Err     error
}

// NewInvalidConfiguration constructs an InvalidConfigurationError.
func NewInvalidConfiguration(field, message string, err error) error {
	return &InvalidConfigurationError{Field: field, Message: message, Err: err}
}

func (e *InvalidConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *InvalidConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsInvalidConfiguration reports whether err is an InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var target *InvalidConfigurationError
	return errors.As(err, &target)
}

// UnknownOverrideKeysError lists style override keys that matched no theme
// field. It is non-fatal: the remaining overrides are still applied and the
// resolved theme is returned alongside it.
type UnknownOverrideKeysError struct {
	Keys []string
}

// NewUnknownOverrideKeys constructs an UnknownOverrideKeysError.
func NewUnknownOverrideKeys(keys []string) error {
	return &UnknownOverrideKeysError{Keys: keys}
}

func (e *UnknownOverrideKeysError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown override keys ignored: %s", strings.Join(e.Keys, ", "))
}

// AsUnknownOverrideKeys extracts an UnknownOverrideKeysError if err carries one.
func AsUnknownOverrideKeys(err error) (*UnknownOverrideKeysError, bool) {
	var target *UnknownOverrideKeysError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
