package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// probability accepts float fields in [0, 1].
	if err := validate.RegisterValidation("probability", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.Float32 && fl.Field().Kind() != reflect.Float64 {
			return false
		}
		p := fl.Field().Float()
		return p >= 0 && p <= 1
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}
