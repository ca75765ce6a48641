package commons

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	apperrors "boutique/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody decodes the request body into dest and runs its validate tags.
// An empty body leaves dest zero-valued. Failures are returned as
// *errors.ValidationError.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *apperrors.ValidationError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("validation failed")
	}
	details := make([]apperrors.ValidationDetail, 0, len(errs))
	for _, fieldErr := range errs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fieldErr.Field(),
			Message: fieldErr.Field() + " " + validationMessage(fieldErr),
		})
	}
	return apperrors.NewValidationError("validation failed", details...)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "ne":
		return fmt.Sprintf("must not be %s", fe.Param())
	}
	return "is invalid"
}
