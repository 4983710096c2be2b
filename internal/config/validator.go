package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MultiValidationError represents multiple validation errors.
type MultiValidationError struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "validation failed with %d errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&builder, "  %d. %s\n", i+1, err.Error())
	}
	return builder.String()
}

var (
	validLogLevels = []string{"trace", "debug", "info", "warn", "error"}
	validFormats   = []string{"table", "json", "yaml"}
)

// Validate validates Config.
func (c *Config) Validate() error {
	var errs []ValidationError

	if c.Version == "" {
		errs = append(errs, ValidationError{Field: "version", Message: "version is required"})
	} else if c.Version != SchemaVersion {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %q (expected %q)", c.Version, SchemaVersion),
		})
	}

	if !slices.Contains(validLogLevels, c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of %s", strings.Join(validLogLevels, ", ")),
		})
	}

	if c.Metadata.Path == "" {
		errs = append(errs, ValidationError{Field: "metadata.path", Message: "path is required"})
	}
	if c.Metadata.MaxSize < 0 {
		errs = append(errs, ValidationError{Field: "metadata.max_size", Message: "must not be negative"})
	}

	if !slices.Contains(validFormats, c.Output.Format) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be one of %s", strings.Join(validFormats, ", ")),
		})
	}

	if len(errs) > 0 {
		return &MultiValidationError{Errors: errs}
	}
	return nil
}
