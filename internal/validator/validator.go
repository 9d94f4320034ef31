// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var periodKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("movement_kind", validateMovementKind)
		_ = v.RegisterValidation("frequency", validateFrequency)
		_ = v.RegisterValidation("payer", validatePayer)
		_ = v.RegisterValidation("goal_priority", validateGoalPriority)
		_ = v.RegisterValidation("period_key", validatePeriodKey)
	}
}

func validateMovementKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "fixed", "variable":
		return true
	}
	return false
}

func validatePayer(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "partner_one", "partner_two", "joint":
		return true
	}
	return false
}

func validateGoalPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validatePeriodKey(fl validator.FieldLevel) bool {
	return periodKeyRegex.MatchString(fl.Field().String())
}
