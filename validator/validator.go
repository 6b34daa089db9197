package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use json tags for field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom OTP purpose validator
	v.RegisterValidation("otp_purpose", validateOTPPurpose)

	return &Validator{
		validator: v,
	}
}

// ValidateStruct validates a struct and returns formatted errors
func (v *Validator) ValidateStruct(s interface{}) error {
	if s == nil {
		return fmt.Errorf("input cannot be nil")
	}

	if err := v.validator.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errors []string
			for _, validationErr := range validationErrors {
				errors = append(errors, v.formatFieldError(validationErr))
			}
			return fmt.Errorf("validation failed: %s", strings.Join(errors, "; "))
		}
		// Handle other validation errors (like InvalidValidationError)
		return fmt.Errorf("validation error: %v", err)
	}
	return nil
}

// formatFieldError formats a single field validation error
func (v *Validator) formatFieldError(err validator.FieldError) string {
	field := err.Field()
	tag := err.Tag()
	param := err.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", field, param)
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "otp_purpose":
		return fmt.Sprintf("%s must be either %q or %q", field, entity.OTPPurposeRegister, entity.OTPPurposeLogin)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// validateOTPPurpose restricts OTP purposes to the two the ledger knows
func validateOTPPurpose(fl validator.FieldLevel) bool {
	purpose := fl.Field().String()
	return purpose == entity.OTPPurposeRegister || purpose == entity.OTPPurposeLogin
}
