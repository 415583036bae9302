package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-natours/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// StructValidator validates structs by their `validate` tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator builds a validator with the domain rules registered.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// messages use the JSON names the client sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("dpositive", decimalPositive)
	v.RegisterStructValidation(tourDiscountBelowPrice, models.Tour{})

	return &StructValidator{validate: v}
}

// Validate checks obj against its tags. When fields are given, only those
// struct fields (Go names) are validated.
func (v *StructValidator) Validate(_ context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartial(obj, fields...)
	} else {
		err = v.validate.Struct(obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}

	return &ValidationError{Messages: messages}
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please provide %s", field)
	case "email":
		return "Please provide a valid email"
	case "eqfield":
		return "Passwords are not the same!"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s is either: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt", "dpositive":
		return fmt.Sprintf("%s must be greater than 0", field)
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", field)
	case "discount":
		return fmt.Sprintf("Discount price (%v) should be below regular price", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// decimalValue lets numeric tags such as gt=0 apply to decimal fields.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func decimalPositive(fl validator.FieldLevel) bool {
	switch d := fl.Field().Interface().(type) {
	case float64:
		return d > 0
	case decimal.Decimal:
		return d.IsPositive()
	default:
		return false
	}
}

func tourDiscountBelowPrice(sl validator.StructLevel) {
	tour := sl.Current().Interface().(models.Tour)
	if tour.PriceDiscount == nil {
		return
	}

	if !tour.PriceDiscount.LessThan(tour.Price) {
		sl.ReportError(tour.PriceDiscount.String(), "priceDiscount", "PriceDiscount", "discount", "")
	}
}
