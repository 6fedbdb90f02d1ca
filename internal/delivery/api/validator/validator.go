// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationErrors is returned by Validate when the payload breaks its tags.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		msg := fe.Field + " failed on " + fe.Rule
		if fe.Param != "" {
			msg += "=" + fe.Param
		}
		parts = append(parts, msg)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names and knows the
// marketplace-specific tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})
	_ = v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return currency.IsSupported(fl.Field().String())
	})
	_ = v.RegisterValidation("device_platform", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseDevicePlatform(fl.Field().String())

		return ok
	})

	return &CustomValidator{validate: v}
}

// Validate runs struct validation and flattens the failures.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}
