package util

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to its validation message, for
// re-rendering admin forms with per-field notices.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = message
}

func (fe FieldErrors) Has() bool {
	return len(fe) > 0
}

// ValidationError carries field-level messages out of a service so the form
// can be re-rendered with them. Nothing is persisted when it is returned.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// BindingErrors converts gin binding failures into field-level messages.
// Anything that is not a validator error (e.g. a type mismatch) is reported
// on the pseudo-field "form".
func BindingErrors(err error) FieldErrors {
	fe := FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.Add("form", "invalid form data")
		return fe
	}
	for _, v := range verrs {
		field := snakeCase(v.Field())
		switch v.Tag() {
		case "required":
			fe.Add(field, "This field is required.")
		case "min":
			fe.Add(field, "Value is too small.")
		case "oneof":
			fe.Add(field, "Invalid choice.")
		default:
			fe.Add(field, "Invalid value.")
		}
	}
	return fe
}

// snakeCase converts a struct field name to its form tag spelling, so
// messages land under the same keys the templates render.
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if boundary {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
