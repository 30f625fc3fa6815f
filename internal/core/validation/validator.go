// Package validation runs server-side form rules before any state changes.
// Rules live as `validate` struct tags on the port input types; failures are
// reported per form field using the `form` tag as the field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// Form names used in ValidationError.Form and metrics labels.
const (
	FormLogin    = "login"
	FormRegister = "register"
	FormBooking  = "booking"
	FormContact  = "contact"
)

// Validator wraps go-playground/validator with field-level error collection.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator ready for concurrent use.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	return &Validator{v: v}
}

// Validate checks input against its struct tags. It returns nil or a
// *domain.ValidationError listing every failing field.
func (val *Validator) Validate(form string, input any) error {
	err := val.v.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %s form: %w", form, err)
	}

	ve := domain.NewValidationError(form)
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), message(fe))
	}
	return ve
}

// fieldName prefers the form tag, then json, then the Go field name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

// message converts a single FieldError into a human-readable message.
func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, strings.ToLower(fe.Param()))
	case "datetime":
		return field + " must be a valid date (YYYY-MM-DD)"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
