package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is returned before any request is sent when a payload
// fails its `validate` tags.
var ErrInvalidInput = errors.New("invalid input")

// one instance caches struct metadata
var validatorInstance = validator.New()

func validateInput(v any) error {
	if err := validatorInstance.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
