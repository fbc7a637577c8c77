package config

import "fmt"

// ConfigurationError is returned by setters that validate their input
// (SetAPIVersion, SetHashAlgorithm, SetEnvironment) and by the Settings
// loader. A failed setter never mutates the Configuration.
type ConfigurationError struct {
	// Field is the name of the rejected setting, e.g. "environment".
	Field string
	// Value is the rejected input as supplied by the caller.
	Value string
	// Reason is a short human-readable description.
	Reason string
	// Err is the underlying validation error, if any.
	Err error
}

// Error formats the field, the rejected value and the reason.
func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the underlying validation error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func newConfigurationError(field, value, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: reason, Err: err}
}
