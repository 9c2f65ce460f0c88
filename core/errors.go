package core

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// TranslateError wraps validator errors into a ValidationError carrying
// one translated message per failed field. Other errors pass through.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		flds := make([]FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			flds = append(flds, FieldError{Field: fe.Field(), Error: fe.Translate(Translator)})
		}
		return NewValidationError(err, flds...)
	}
	return err
}
