package customvalidator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers all project-specific validation rules
// on the given validator instance. null.String fields validate as their
// inner string; an absent value looks empty so `omitempty` applies.
func RegisterCustomValidations(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(nullStringValue, null.String{})
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("inspection_date", isInspectionDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("email_shape", hasEmailShape); err != nil {
		return err
	}
	return nil
}

// jsonFieldName makes validation errors report fields by their json name
// instead of the Go struct field.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func nullStringValue(field reflect.Value) interface{} {
	if ns, ok := field.Interface().(null.String); ok && ns.Valid {
		return ns.String
	}
	return ""
}

var inspectionDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func isInspectionDate(fl validator.FieldLevel) bool {
	return inspectionDateRegex.MatchString(fl.Field().String())
}

// hasEmailShape is intentionally loose: the mock identity layer only
// requires an "@" somewhere in the address.
func hasEmailShape(fl validator.FieldLevel) bool {
	return strings.Contains(fl.Field().String(), "@")
}
