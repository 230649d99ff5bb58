package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var ErrInvalid = errors.New("validation failed")

// ValidateStruct validates s by its `validate` tags.
func ValidateStruct(s interface{}) error {
	return describe(validate.Struct(s))
}

// ValidateVar validates a single value against tag, e.g. "required,email".
func ValidateVar(field string, value interface{}, tag string) error {
	if err := describe(validate.Var(value, tag)); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

func describe(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	errMsgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		if e.Field() == "" {
			errMsgs = append(errMsgs, fmt.Sprintf("Tag: %s, Param: %s", e.Tag(), e.Param()))
			continue
		}
		errMsgs = append(errMsgs, fmt.Sprintf(
			"Field: %s, Tag: %s, Param: %s", e.Field(), e.Tag(), e.Param(),
		))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errMsgs, "; "))
}
