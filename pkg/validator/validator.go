package validator

import (
	"github.com/go-playground/validator/v10"

	"go-storemap-api/internal/model"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Location type is a closed enum; everything else on the models is
	// covered by builtin tags.
	validate.RegisterValidation("location_type", func(fl validator.FieldLevel) bool {
		if t, ok := fl.Field().Interface().(model.LocationType); ok {
			return t.Valid()
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
