// Package validation checks request values against the `validate` struct
// tags declared in internal/models. It is pure: inputs are classified,
// never modified.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	// MinPhoneDigits is the minimum number of digits a phone number must carry.
	MinPhoneDigits = 10

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// FieldError is a single user-correctable problem with one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is returned by Validate when the input does not satisfy its schema.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Get returns the message for field, or "" if the field is valid.
func (e *Errors) Get(field string) string {
	if e == nil {
		return ""
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Map returns the errors keyed by field path.
func (e *Errors) Map() map[string]string {
	out := make(map[string]string)
	if e == nil {
		return out
	}
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// ServiceLookup reports whether a catalog slug exists.
type ServiceLookup interface {
	Has(slug string) bool
}

// Validator wraps a configured go-playground validator. It is safe for
// concurrent use once constructed.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator. services backs the catalog_service tag; when nil
// any non-empty slug is accepted.
func New(services ServiceLookup) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// RegisterValidation only fails on an empty tag.
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		return countDigits(fl.Field().String()) >= MinPhoneDigits
	})
	_ = v.RegisterValidation("bcrypt_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	_ = v.RegisterValidation("catalog_service", func(fl validator.FieldLevel) bool {
		slug := fl.Field().String()
		if services == nil {
			return slug != ""
		}
		return services.Has(slug)
	})

	return &Validator{v: v}
}

// Validate returns nil when s satisfies its tags, *Errors when it does not,
// and any other error when s cannot be validated at all.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate: %w", err)
	}

	out := &Errors{Fields: make([]FieldError, 0, len(ve))}
	for _, fe := range ve {
		path := fieldPath(fe)
		out.Fields = append(out.Fields, FieldError{Field: path, Message: message(path, fe)})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace, so
// "RegisterRequest.username" becomes "username".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

var messages = map[string]string{
	"username.min":                "Username must be at least 3 characters",
	"username.max":                "Username must be at most 20 characters",
	"password.min":                "Password must be at least 6 characters",
	"password.bcrypt_len":         "Password must be at most 72 bytes",
	"fullName.min":                "Name must be at least 2 characters",
	"email.email":                 "Invalid email address",
	"phone.phone_digits":          "Phone number must be at least 10 digits",
	"serviceType.required":        "Please select a service",
	"serviceType.catalog_service": "Please select a service",
	"details.min":                 "Please provide some project details",
}

func message(path string, fe validator.FieldError) string {
	if m, ok := messages[path+"."+fe.Tag()]; ok {
		return m
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", path, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", path, fe.Param())
	case "email":
		return "Invalid email address"
	}
	return fmt.Sprintf("%s is invalid", path)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
