package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrInvalidArgument = errors.New("invalid argument")

	// Schema errors
	ErrUnknownColumn = errors.New("unknown column")

	// Insufficient-data errors
	ErrEmptyColumn     = errors.New("empty column")
	ErrDegenerateInput = errors.New("degenerate input for statistic")
)

// Error constructors with context
func NewInvalidArgumentError(param string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, param, reason)
}

func NewUnknownColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
}

func NewEmptyColumnError(column string) error {
	return fmt.Errorf("%w: %q has no rows", ErrEmptyColumn, column)
}

func NewDegenerateInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, reason)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrUnknownColumn)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrEmptyColumn) ||
		errors.Is(err, ErrDegenerateInput)
}
