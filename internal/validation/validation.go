// Package validation checks creation and update payloads against each entity's
// constraint set. Constraints live as `validate` struct tags on the dto types;
// this package owns the shared validator and turns its failures into
// *apierror.ValidationError keyed by JSON field name.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"gestorcash/internal/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DatePattern is the only accepted calendar date shape (zero-padded ISO).
var DatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// MaxMoney bounds the absolute value of a money field (NUMERIC(12,2)).
var MaxMoney = decimal.New(1, 10)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON (or query) name so clients see what they sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0, gte=0 work without panicking ("Bad field type decimal.Decimal").
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})

	// money reads the decimal from the parent struct: the custom type func
	// above has already turned fl.Field() into a float64.
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, ok := decimalField(fl)
		return ok && IsMoney(d)
	})
	return v
}

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	f := reflect.Indirect(parent.FieldByName(fl.StructFieldName()))
	if !f.IsValid() || !f.CanInterface() {
		return decimal.Decimal{}, false
	}
	d, ok := f.Interface().(decimal.Decimal)
	return d, ok
}

// IsMoney reports whether d fits a NUMERIC(12,2) column exactly: at most two
// decimal places and an absolute value below MaxMoney.
func IsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(2)) && d.Abs().LessThan(MaxMoney)
}

// IsDate reports whether s matches YYYY-MM-DD.
func IsDate(s string) bool { return DatePattern.MatchString(s) }

// Struct validates req and returns nil or an *apierror.ValidationError.
func Struct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apierror.Field("body", err.Error())
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = constraint(fe)
	}
	return apierror.NewValidation(fields)
}

// constraint renders the violated rule, e.g. "gt=0", "min=10", "isodate".
func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
