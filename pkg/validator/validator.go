package validator

import (
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// Validator provides validation functionality
type Validator interface {
	Validate(interface{}) error
}

// FieldError describes one failed struct field.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// Errors is returned by Validate when one or more fields fail.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

var defaultMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of",
}

type validator struct {
	engine *playground.Validate
}

func New() Validator {
	engine := playground.New()
	engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &validator{engine: engine}
}

func (v *validator) Validate(obj interface{}) error {
	err := v.engine.Struct(obj)
	if err == nil {
		return nil
	}

	errs, ok := err.(playground.ValidationErrors)
	if !ok {
		return err
	}

	out := make(Errors, 0, len(errs))
	for _, e := range errs {
		msg := defaultMessages[e.Tag()]
		if msg == "" {
			msg = e.Error()
		} else if e.Param() != "" {
			msg = fmt.Sprintf("%s [%s]", msg, e.Param())
		}
		out = append(out, FieldError{
			Field:   e.Namespace(),
			Tag:     e.Tag(),
			Message: msg,
		})
	}
	return out
}
