package e

import (
	"context"
	"errors"
	"fmt"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDeadline     = errors.New("deadline exceeded")
	ErrCanceled     = errors.New("context canceled")

	ErrEmptyDestination   = fmt.Errorf("destination is required: %w", ErrInvalidInput)
	ErrMissingCoordinates = fmt.Errorf("latitude and longitude are required: %w", ErrInvalidInput)
	ErrInvalidCoordinates = fmt.Errorf("coordinates out of range: %w", ErrInvalidInput)
	ErrNoFilePart         = fmt.Errorf("no file part in request: %w", ErrInvalidInput)
)

func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	return fmt.Errorf("%s: %w", op, err)
}
