package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates tagged request structs with go-playground/validator.
// Field names in errors are the JSON names of the fields.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a ready to use [RequestValidator].
func NewRequestValidator() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks value against its `validate` tags. When fields are given
// only those (Go field names) are checked. The first failing rule is
// reported.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]
	return fmt.Errorf("%w: field %q failed %q", ruleError(fe.Tag()), fe.Field(), fe.Tag())
}

func ruleError(tag string) error {
	switch tag {
	case "required":
		return ErrRequiredField
	case "min":
		return ErrTooShort
	case "max":
		return ErrTooLong
	default:
		return ErrInvalidFormat
	}
}
