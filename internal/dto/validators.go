package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations adds the decimal-aware tags used by the request
// DTOs. The built-in numeric comparisons (gt, gte) do not work on
// decimal.Decimal, which is a struct to the validator.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("dgt0", decimalGreaterThanZero); err != nil {
		return err
	}
	return v.RegisterValidation("dgte0", decimalNonNegative)
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.GreaterThan(decimal.Zero)
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}
