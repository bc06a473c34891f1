package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrRequiredField = errors.New("required field is empty")
	ErrTooShort      = errors.New("value is too short")
	ErrTooLong       = errors.New("value is too long")
	ErrInvalidFormat = errors.New("value has invalid format")
)
