// Package validation checks request bodies before they reach the services.
// Length and presence rules come from `validate` struct tags; the crime date
// range is an explicit function evaluated against the current clock.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"CRIME_JOURNAL_BACK-END/internal/dto"
)

// FieldError is a single failed constraint.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + " " + f.Message
}

// Errors is returned when a request fails validation.
type Errors []FieldError

func (e Errors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages renders each failure as "field message".
func (e Errors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.String())
	}
	return out
}

type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New returns a Validator using the local wall clock.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Validator reading the current time from now.
func NewWithClock(now func() time.Time) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, now: now}
}

// Profile validates a profile create/update body.
func (v *Validator) Profile(req *dto.CreateProfileRequest) error {
	return v.result(v.structErrors(req))
}

// CrimeJournal validates a journal create/update body, including the date range.
func (v *Validator) CrimeJournal(req *dto.CreateCrimeJournalRequest) error {
	errs := v.structErrors(req)

	var date *time.Time
	if req.DateCrime != nil {
		date = &req.DateCrime.Time
	}
	if err := CheckCrimeDate(date, v.now()); err != nil {
		errs = append(errs, FieldError{Field: "dateCrime", Message: err.Error()})
	}
	return v.result(errs)
}

func (v *Validator) result(errs Errors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) structErrors(s any) Errors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "request", Message: err.Error()}}
	}
	typ := reflect.Indirect(reflect.ValueOf(s)).Type()
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(typ, fe)})
	}
	return out
}

func message(typ reflect.Type, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must not be null"
	case "min":
		if hi, ok := ruleParam(typ, fe.StructField(), "max"); ok {
			return fmt.Sprintf("length must be between %s and %s", fe.Param(), hi)
		}
		return fmt.Sprintf("length must be at least %s", fe.Param())
	case "max":
		if lo, ok := ruleParam(typ, fe.StructField(), "min"); ok {
			return fmt.Sprintf("length must be between %s and %s", lo, fe.Param())
		}
		return fmt.Sprintf("length must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// ruleParam finds the parameter of another rule on the same field, so
// "min=3,max=20" reports both bounds whichever one failed.
func ruleParam(typ reflect.Type, field, rule string) (string, bool) {
	sf, ok := typ.FieldByName(field)
	if !ok {
		return "", false
	}
	for _, r := range strings.Split(sf.Tag.Get("validate"), ",") {
		if name, param, found := strings.Cut(r, "="); found && name == rule {
			return param, true
		}
	}
	return "", false
}
