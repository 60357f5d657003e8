package flashduty

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/code19m/errx"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator() //nolint:gochecknoglobals // single immutable validator shared by all clients

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
		return fld.Name
	})
	return v
}

// validateEvent checks ev against the wire protocol constraints and reports
// all violations as a single INVALID_EVENT error with per-field messages.
func validateEvent(ev Event) error {
	err := validate.Struct(ev)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return errx.New(
			fmt.Sprintf("unknown validation error: %s", err.Error()),
			errx.WithCode(CodeInvalidEvent),
			errx.WithType(errx.T_Validation),
		)
	}

	fields := make(errx.M, len(vErrs))
	for _, fieldErr := range vErrs {
		fields[fieldErr.Field()] = getFieldErrDescription(fieldErr)
	}

	return errx.New(
		"event failed validation. See fields for details.",
		errx.WithCode(CodeInvalidEvent),
		errx.WithType(errx.T_Validation),
		errx.WithFields(fields),
	)
}

func getFieldErrDescription(fieldErr validator.FieldError) string {
	param := fieldErr.Param()

	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", param)
		}
		return fmt.Sprintf("Must have at most %s entries", param)
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("Failed validation: %s", fieldErr.Tag())
	}
}
