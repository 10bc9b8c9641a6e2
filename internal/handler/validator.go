package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs and path values against their tags.
type Validator struct {
	v *validator.Validate
}

// creatureNamePattern matches PokeAPI slugs such as "mr-mime" or "porygon2".
var creatureNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// GetValidator returns the process-wide validator, building it on first use.
var GetValidator = sync.OnceValue(newValidator)

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// errors name fields the way clients spell them
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("creaturename", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return name == "" || creatureNamePattern.MatchString(name)
	}); err != nil {
		panic(err)
	}

	return &Validator{v: v}
}

func (v *Validator) ValidateStruct(s interface{}) error { return v.v.Struct(s) }

// ValidateVar checks a single value against a tag string such as "required,max=64".
func (v *Validator) ValidateVar(field interface{}, tag string) error { return v.v.Var(field, tag) }

// fixed messages per failing tag; parameterized tags are handled in fieldMessage
var tagMessages = map[string]string{
	"required":     "This field is required",
	"creaturename": "Invalid creature name",
	"excludesall":  "Contains invalid characters",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	}
	return "Invalid value"
}

// FormatValidationError flattens validator errors into a field -> message map.
// Errors that did not come from the validator collapse to a single "error" key.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": ErrMsgInvalidRequestFormat}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return out
}
