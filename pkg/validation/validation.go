// Package validation wraps go-playground/validator behind a single Validate
// call that reports every violated field at once, not just the first. Both
// PUT bodies and the reconstructed result of PATCH merges go through it
// before anything is persisted.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ibanPattern       = regexp.MustCompile(`^[A-Z]{2}[0-9]{13,32}$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	cryptogramPattern = regexp.MustCompile(`^[0-9]{3,4}$`)
	pinCodePattern    = regexp.MustCompile(`^[0-9]{4}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations against the JSON field names the caller sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "iban_format", ibanPattern)
	mustRegister(v, "card_number", cardNumberPattern)
	mustRegister(v, "cryptogram", cryptogramPattern)
	mustRegister(v, "pin_code", pinCodePattern)
	return v
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// FieldError is a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full set of violations found on one input.
type Errors struct {
	Violations []FieldError `json:"violations"`
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Struct validates the given input and returns *Errors carrying every
// violation, or nil when the input is valid.
func Struct(input any) error {
	return collect(validate.Struct(input))
}

// StructExcept validates the input while skipping the named struct fields.
// Used after PATCH merges when a write-only field (the card PIN) was not
// part of the delta and only its hash exists on the stored entity.
func StructExcept(input any, fields ...string) error {
	return collect(validate.StructExcept(input, fields...))
}

func collect(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Errors{Violations: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, FieldError{
			Field:   fieldName(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldName strips the top-level struct name from the namespace, leaving the
// JSON field path.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "numeric":
		return "must contain only digits"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "datetime":
		return "must match the date format " + fe.Param()
	case "iban_format":
		return "must match ^[A-Z]{2}[0-9]{13,32}$"
	case "card_number":
		return "must be a 16 digit number"
	case "cryptogram":
		return "must be a 3 or 4 digit number"
	case "pin_code":
		return "must be a 4 digit number"
	default:
		return "failed constraint " + fe.Tag()
	}
}
