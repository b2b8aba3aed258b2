// Package validator adapts go-playground/validator to echo with the marketplace field rules.
package validator

import (
	"reflect"
	"strings"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/validation"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds a validator with the mobile, otp and slug tags registered.
func New() *RequestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
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

	_ = validate.RegisterValidation("mobile", stringRule(validation.IsMobile))
	_ = validate.RegisterValidation("otp", stringRule(validation.IsOTP))
	_ = validate.RegisterValidation("slug", stringRule(validation.IsSlug))

	return &RequestValidator{validate: validate}
}

// Validate reports every failing field in the error payload, keyed by JSON name.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(playground.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	failed := make(map[string]string, len(fieldErrors))
	names := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		failed[fieldErr.Field()] = fieldErr.Tag()
		names = append(names, fieldErr.Field())
	}

	return domainerrors.ErrValidationFailed.
		WithMessage("Invalid " + strings.Join(names, ", ")).
		WithData(failed)
}

func stringRule(check func(string) bool) playground.Func {
	return func(fl playground.FieldLevel) bool {
		return check(fl.Field().String())
	}
}
