package common

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Violation describes one failed validation rule on a request field.
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+":"+v.Rule)
	}
	return fmt.Sprintf("%s (%s)", ErrValidation.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON/form field names instead of Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
		// maxbytes bounds the encoded length of a string, unlike max which counts runes.
		_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
			limit, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return len(fl.Field().String()) <= limit
		})
	})
	return validate
}

// Validate checks struct tags on v and returns a *ValidationError listing every violation.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	out := &ValidationError{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, Violation{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// NewValidationError builds a ValidationError for a single field, for checks done outside struct tags.
func NewValidationError(field, rule, param string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Rule: rule, Param: param}}}
}
