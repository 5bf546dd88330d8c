package cli

import (
	"errors"

	"skillforge/internal/usecase"
)

// Exit codes returned by skillctl.
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsage      = 2
	ExitNotFound   = 3
	ExitValidation = 5
)

// ExitCode maps a command error onto the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUsage):
		return ExitUsage
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrRoleNotFound),
		errors.Is(err, usecase.ErrProjectNotFound):
		return ExitNotFound
	case errors.Is(err, usecase.ErrInvalidInput):
		return ExitValidation
	default:
		return ExitError
	}
}

var errUsage = errors.New("usage")
