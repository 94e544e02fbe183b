package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/WashRewards_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

var tierIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("tierid", validateTierID)
	_ = v.RegisterValidation("stattype", validateStatType)
	_ = v.RegisterValidation("operator", validateOperator)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "tierid":
			errs[field] = "Invalid tier id"
		case "stattype":
			errs[field] = "Unknown statistic"
		case "operator":
			errs[field] = "Unknown operator"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Allow empty if not required (handled by 'required' tag if needed)
func validateTierID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return id == "" || tierIDPattern.MatchString(id)
}

func validateStatType(fl validator.FieldLevel) bool {
	return domain.StatType(fl.Field().String()).Valid()
}

func validateOperator(fl validator.FieldLevel) bool {
	return domain.Operator(fl.Field().String()).Valid()
}
