package validation

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bryanspearman/blog-v1/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by running validator.Struct on their tags.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data (path params and JSON body) into
// payload and validates it.
//
// Bind failures become a 400 BAD_REQUEST, except for non-400 echo errors
// such as 415 Unsupported Media Type which are returned unchanged.
// Validation failures become a 400 VALIDATION_ERROR whose message names the
// first failing field and whose errors list every failing field.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		code := errs.CodeValidation
		return errs.NewBadRequestError(msg, true, &code, fieldErrors, nil)
	}

	return nil
}

func bindError(err error) error {
	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return errs.NewBadRequestError("Invalid request", false, nil, nil, nil)
	}

	if echoErr.Code != http.StatusBadRequest {
		return echoErr
	}

	message, ok := echoErr.Message.(string)
	if !ok || message == "" {
		message = http.StatusText(http.StatusBadRequest)
	}

	return errs.NewBadRequestError(message, true, nil, nil, nil)
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, ce := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}
		if len(fieldErrors) == 0 {
			return "", nil
		}
		return fmt.Sprintf("Invalid `%s` in request body: %s", fieldErrors[0].Field, fieldErrors[0].Error), fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// InvalidValidationError and friends: a programming error, but still
		// reported to the client as a validation failure.
		httpErr := errs.ValidationError(err)
		return httpErr.Message, []errs.FieldError{}
	}

	message := ""
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		case "uuid":
			msg = "must be a valid UUID"

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		if message == "" {
			if fe.Tag() == "required" {
				message = errs.MissingFieldMessage(field)
			} else {
				message = fmt.Sprintf("Invalid `%s` in request body: %s", field, msg)
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return message, fieldErrors
}
