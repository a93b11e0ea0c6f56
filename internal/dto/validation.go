package dto

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/opms-dev/opms_backend/internal/core/domain"
)

// RegisterCustomValidations wires domain-aware validators into gin's
// binding engine. Called once at startup.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("txnstatus", validTransactionStatus)
}

// validTransactionStatus accepts the folder status enum, case-insensitively.
func validTransactionStatus(fl validator.FieldLevel) bool {
	switch domain.TransactionStatus(strings.ToUpper(fl.Field().String())) {
	case domain.StatusPending, domain.StatusPaid, domain.StatusDeclined:
		return true
	}
	return false
}
