package validate

import (
	"reflect"
	"time"

	"github.com/Astemirdum/shareit/pkg/datetime"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterCustomTypeFunc(dateTimeValue, datetime.DateTime{})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("future", future)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func dateTimeValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(datetime.DateTime); ok {
		return d.Time
	}
	return nil
}

// future accepts a time.Time strictly after the current instant.
func future(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}
