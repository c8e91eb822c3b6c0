package salary

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents an input value outside its expected range
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("input validation error: %s - %s", e.Field, e.Message)
}

const maxPercentageTag = "max_percentage"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// gte lets +Inf through
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	v.RegisterStructValidation(inputStructLevel, Input{})
	return v
}

func inputStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(Input)
	if in.DiscountType == DiscountPercentage && in.DiscountValue > 100 {
		sl.ReportError(in.DiscountValue, "discount_value", "DiscountValue", maxPercentageTag, "100")
	}
}

// Validate reports the first suspicious field. Compute does not call it; the
// caller decides whether a warning is enough.
func (in Input) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	return in.mapValidationError(errs[0])
}

func (in Input) mapValidationError(e validator.FieldError) *ValidationError {
	field := in.fieldLabel(e)
	switch e.Tag() {
	case "finite":
		return &ValidationError{Field: field, Message: "not a number"}
	case "gte":
		return &ValidationError{Field: field, Message: "must not be negative"}
	case "oneof":
		return &ValidationError{Field: field, Message: fmt.Sprintf("unknown type %q, treated as fixed", e.Value())}
	case maxPercentageTag:
		return &ValidationError{Field: field, Message: "percentage above 100"}
	default:
		return &ValidationError{Field: field, Message: "invalid value"}
	}
}

// fieldLabel names a work day by its label instead of its position.
func (in Input) fieldLabel(e validator.FieldError) string {
	ns := e.Namespace()
	i := strings.Index(ns, "work_days[")
	if i < 0 {
		return e.Field()
	}
	rest := ns[i+len("work_days["):]
	j := strings.IndexByte(rest, ']')
	if j < 0 {
		return e.Field()
	}
	n, err := strconv.Atoi(rest[:j])
	if err != nil || n < 0 || n >= len(in.WorkDays) {
		return e.Field()
	}
	return in.WorkDays[n].Label
}
