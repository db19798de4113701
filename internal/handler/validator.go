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

// resourceIDPattern matches catalog ids such as "wheat" or "fertilizer_spreader".
var resourceIDPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// Validator checks request bodies against their struct tags. Field names in
// its errors are the JSON names clients send.
type Validator struct {
	validate *validator.Validate
}

// GetValidator returns the shared request validator.
var GetValidator = sync.OnceValue(newValidator)

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("resource_id", func(fl validator.FieldLevel) bool {
		return resourceIDPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

// ValidateStruct validates s using its tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError maps each failing field to a message safe to show a
// player. Errors that are not validation errors collapse to one "error" key.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errs[e.Field()] = fieldMessage(e)
	}
	return errs
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "resource_id":
		return "Must be a lowercase id like \"wheat\""
	case "max":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	}
	return "Invalid value"
}
