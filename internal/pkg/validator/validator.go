// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// On top of the built-in tags (e.g. `required`, `eth_addr`, `gte`) it registers an
// `amount` tag that accepts a non-negative 256-bit integer written either in decimal
// or as a 0x-prefixed hexadecimal string.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"
)

// ErrValidation is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidation = errors.New("validation error")

var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Destination': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// amountTag is the custom tag validating 256-bit unsigned amounts.
const amountTag = "amount"

// Init initializes the validator singleton and registers the custom tags.
//
// It is safe to call Init multiple times; only the first call takes effect.
func Init() {
	initValidatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
		if err := validator.RegisterValidation(amountTag, validateAmount); err != nil {
			panic(fmt.Sprintf("validator: registering %q tag: %v", amountTag, err))
		}
	})
}

// validateAmount accepts strings that parse as a uint256 value.
func validateAmount(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}

	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		_, err = uint256.FromHex(s)
	} else {
		_, err = uint256.FromDecimal(s)
	}

	return err == nil
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidation as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidation and one formatted message for each field that failed validation.
//
//	type Input struct {
//	    Spender string `validate:"required,eth_addr"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidation) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
