package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/reqfile/packages/core/parser"
	"github.com/abdul-hamid-achik/reqfile/packages/http"
)

// Exit codes for reqfile CLI
const (
	// ExitSuccess indicates the request was sent and printed
	ExitSuccess = 0

	// ExitFailure is used for errors without a more specific code
	ExitFailure = 1

	// ExitParseError indicates the request file is not valid TOML/YAML
	ExitParseError = 2

	// ExitConfigError indicates a required field is missing or invalid
	ExitConfigError = 3

	// ExitNetworkError indicates the request could not be completed
	ExitNetworkError = 4

	// ExitFileError indicates the request file could not be read
	ExitFileError = 5

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// usageError marks bad arguments or flag values.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		ue  *usageError
		fe  *parser.FileReadError
		pe  *parser.ParseError
		mfe *http.MissingFieldError
		te  *http.TransportError
	)
	switch {
	case errors.As(err, &ue):
		return ExitUsageError
	case errors.As(err, &fe):
		return ExitFileError
	case errors.As(err, &pe):
		return ExitParseError
	case errors.As(err, &mfe):
		return ExitConfigError
	case errors.As(err, &te):
		return ExitNetworkError
	default:
		return ExitFailure
	}
}
