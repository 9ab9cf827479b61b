// Package inputval validates typed request structs.
//
// Rules live in `validate` struct tags (go-playground/validator syntax) and
// the human-readable field name in a `label` tag:
//
//	type createReportInput struct {
//	    Type     string   `validate:"required,max=50" label:"Type"`
//	    Quantity *float64 `validate:"required,gte=0" label:"Quantity"`
//	}
//
//	if res := inputval.Validate(in); res.HasErrors() {
//	    // res.First() is a ready-to-show message
//	}
package inputval

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
			return f.Name
		})
	})
	return v
}

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the failed rules of one Validate call, in field order.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "" when valid.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// Validate checks s against its struct tags.
func Validate(s any) Result {
	err := instance().Struct(s)
	if err == nil {
		return Result{}
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return Result{Errors: []FieldError{{Message: err.Error()}}}
	}
	out := Result{Errors: make([]FieldError, 0, len(ves))}
	for _, fe := range ves {
		out.Errors = append(out.Errors, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "latitude":
		return fmt.Sprintf("%s must be a latitude between -90 and 90.", label)
	case "longitude":
		return fmt.Sprintf("%s must be a longitude between -180 and 180.", label)
	default:
		return fmt.Sprintf("%s is invalid.", strings.TrimSpace(label))
	}
}
