package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"commerce-insights/internal/analytics"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("granularity", validateGranularity)
	_ = v.RegisterValidation("segment_name", validateSegmentName)
	_ = v.RegisterValidation("order_ref", validateOrderRef)
	_ = v.RegisterValidation("retail_customer_id", validateRetailCustomerID)
	_ = v.RegisterValidation("date_only", validateDateOnly)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateGranularity validates that a series granularity is one of the
// supported bucket sizes
func validateGranularity(fl validator.FieldLevel) bool {
	return analytics.IsValidGranularity(strings.ToLower(fl.Field().String()))
}

// validateSegmentName validates that a segment label is one of the defined segments
func validateSegmentName(fl validator.FieldLevel) bool {
	return analytics.IsValidSegment(fl.Field().String())
}

// validateOrderRef validates that an invoice reference follows the ledger format
// Format: 6-7 digits, optionally prefixed with C for credit notes
func validateOrderRef(fl validator.FieldLevel) bool {
	orderRef := fl.Field().String()
	if orderRef == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^C?\d{6,7}$`, orderRef)
	return matched
}

// validateRetailCustomerID validates that a customer identifier is a short numeric code
func validateRetailCustomerID(fl validator.FieldLevel) bool {
	customerID := fl.Field().String()
	if customerID == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{4,8}$`, customerID)
	return matched
}

// validateDateOnly validates a calendar date in YYYY-MM-DD form
func validateDateOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
