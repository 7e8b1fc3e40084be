// Package forms checks form input before it is handed to a store. Rules are
// the `validate` struct tags of the models, evaluated by
// go-playground/validator; failures come back as one message per field.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is matched by every *ValidationError.
var ErrInvalid = errors.New("invalid input")

// ValidationError maps a field's JSON name to its first failing rule,
// phrased for the user.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate checks a struct. It returns nil, a *ValidationError, or an
// error for input that is not a struct.
func (f *Validator) Validate(s any) error {
	err := f.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	t := reflect.Indirect(reflect.ValueOf(s)).Type()
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		if _, seen := out.Fields[fe.Field()]; seen {
			continue
		}
		out.Fields[fe.Field()] = message(label(t, fe), fe)
	}
	return out
}

func label(t reflect.Type, fe validator.FieldError) string {
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if l := sf.Tag.Get("label"); l != "" {
			return l
		}
	}
	return fe.Field()
}

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s can't exceed %s characters", label, fe.Param())
	case "containsany":
		return label + " must contain at least one lowercase letter"
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}
