package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Declarative, fail-fast request validation. Rules live as struct tags on the
// request types; the first violated rule is reported with a human-readable
// message naming the offending field. No side effects.

var phonePattern = regexp.MustCompile(`^\+?[\d\s-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names, not Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Loose phone pattern shared by the contact and career forms.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// Struct validates v and returns nil or the first violation's message.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	return fmt.Errorf("%s", message(verrs[0]))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "uri", "url":
		return fmt.Sprintf("%q must be a valid uri", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%q must be a valid UUID", field)
	case "phone":
		return fmt.Sprintf("%q fails to match the required pattern", field)
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
