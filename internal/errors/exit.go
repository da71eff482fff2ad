package errors

import "errors"

// Exit codes returned by the implgen binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitUsageError indicates missing or malformed arguments.
	ExitUsageError = 2

	// ExitTemplateReadError indicates a template could not be read.
	ExitTemplateReadError = 3

	// ExitDirectoryCreateError indicates the class directory could not be created.
	ExitDirectoryCreateError = 4

	// ExitWriteError indicates a generated file could not be written.
	ExitWriteError = 5

	// ExitValidationError indicates config schema validation failed.
	ExitValidationError = 6
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError whose code is derived from err.
func NewExitError(err error) *ExitError {
	return &ExitError{Code: ExitCodeFromError(err), Err: err}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrTemplateRead):
		return ExitTemplateReadError
	case errors.Is(err, ErrDirectoryCreate):
		return ExitDirectoryCreateError
	case errors.Is(err, ErrWrite):
		return ExitWriteError
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitUsageError:
		return "Usage Error"
	case ExitTemplateReadError:
		return "Template Read Error"
	case ExitDirectoryCreateError:
		return "Directory Create Error"
	case ExitWriteError:
		return "Write Error"
	case ExitValidationError:
		return "Validation Error"
	default:
		return "Unknown"
	}
}
