package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const NonFieldErrors = "non_field_errors"

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// AsValidationError converts validator and JSON decoding failures into a
// ValidationError. Other errors are returned unchanged.
func AsValidationError(err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := &ValidationError{}
		for _, fe := range fieldErrs {
			out.Add(fe.Field(), fieldMessage(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = NonFieldErrors
		}
		return NewValidationError(field, fmt.Sprintf("A valid %s is required.", typeName(typeErr.Type.Kind().String())))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewValidationError(NonFieldErrors, "JSON parse error: "+syntaxErr.Error())
	}

	return err
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if fe.Kind().String() == "string" {
			return "This field may not be blank."
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func typeName(kind string) string {
	switch kind {
	case "int", "int32", "int64":
		return "integer"
	case "bool":
		return "boolean"
	case "float32", "float64":
		return "number"
	default:
		return kind
	}
}

// validateInput runs full validation, or, for partial updates, only the
// fields the client actually sent. present holds Go struct field names.
func validateInput(in interface{}, partial bool, present []string) error {
	var err error
	if partial {
		if len(present) == 0 {
			return nil
		}
		err = Validate.StructPartial(in, present...)
	} else {
		err = Validate.Struct(in)
	}
	return AsValidationError(err)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
