package usecases

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/police-department/evidence-manager/models"
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	// field errors are keyed by their wire name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateInput returns nil when the input is valid. An error is only returned
// when the input can't be validated at all.
func validateInput(input any) (models.FieldValidationError, error) {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, errors.Wrap(err, "could not validate input")
	}

	fieldErrors := make(models.FieldValidationError, len(validationErrors))
	for _, fe := range validationErrors {
		if _, ok := fieldErrors[fe.Field()]; !ok {
			fieldErrors[fe.Field()] = adaptFieldValidationError(fe)
		}
	}
	return fieldErrors, nil
}

func adaptFieldValidationError(fe validator.FieldError) string {
	inner := func(fe validator.FieldError) string {
		switch fe.ActualTag() {
		case "required":
			return "is required"
		case "notblank":
			return "must not be blank"
		case "email":
			return "must be a valid email address"
		case "oneof":
			opts := strings.Split(fe.Param(), " ")

			return fmt.Sprintf("must be one of %s", strings.Join(opts, ", "))
		case "min":
			return fmt.Sprintf("must have at least %s character", fe.Param())
		case "max":
			return fmt.Sprintf("must have at most %s character", fe.Param())
		}

		return "is invalid"
	}

	return fmt.Sprintf("field `%s` %s", fe.Field(), inner(fe))
}
