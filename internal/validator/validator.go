// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fluxo/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	}
}

// validateTransactionKind accepts any spelling the normalization
// function can resolve, including the legacy vocabularies still present
// in imported data.
func validateTransactionKind(fl validator.FieldLevel) bool {
	_, ok := models.ParseKind(fl.Field().String())
	return ok
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
