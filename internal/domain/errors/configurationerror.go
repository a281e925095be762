package errors

import "fmt"

type ConfigurationError struct {
	message string
}

func (v *ConfigurationError) Error() string {
	return v.message
}

func ConfigurationErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &ConfigurationError{}
