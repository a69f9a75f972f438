package schema

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a schema value against its `validate` struct tags.
// Non-struct values pass unchecked.
func Validate(v any) error {
	if v == nil {
		return nil
	}
	err := validate.Struct(v)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	return err
}
