package validator

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired         = "is required"
	ErrMinValue         = "must be at least %s"
	ErrMaxValue         = "must be at most %s"
	ErrMaxLength        = "must be at most %s characters long"
	ErrInvalidButton    = "must be one of coin, return, select, up, down"
	ErrInvalidCoin      = "must be an accepted coin denomination"
	ErrDefaultInvalid   = "is invalid"
	ErrRequiredWithCoin = "is required for coin buttons"
)

// Denominations lists the coins the kiosk accepts.
var Denominations = []int{1, 2, 5, 10}

var buttons = []string{"coin", "return", "select", "up", "down"}

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("button", validateButton)
	validator.RegisterValidation("denomination", validateDenomination)

	return validator
}

func validateButton(fl validator.FieldLevel) bool {
	return slices.Contains(buttons, fl.Field().String())
}

func validateDenomination(fl validator.FieldLevel) bool {
	return slices.Contains(Denominations, int(fl.Field().Int()))
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "required_if":
		return ErrRequiredWithCoin
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "button":
		return ErrInvalidButton
	case "denomination":
		return ErrInvalidCoin
	default:
		return ErrDefaultInvalid
	}
}
