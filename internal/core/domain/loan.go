package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a bank loan tracked alongside check folders. Repayments within a
// billing week feed the weekly billing summary as "other loans".
type Loan struct {
	LoanID     string          `json:"loanID"`
	OwnerID    string          `json:"ownerID"`
	Branch     string          `json:"branch"`
	Name       string          `json:"name"`
	BankName   string          `json:"bankName"`
	Amount     decimal.Decimal `json:"amount"`
	DateIssued *time.Time      `json:"dateIssued,omitempty"`
	DatePaid   *time.Time      `json:"datePaid,omitempty"`
	IsArchived bool            `json:"isArchived"`
	ArchivedAt *time.Time      `json:"archivedAt,omitempty"`
	AuditFields
}
