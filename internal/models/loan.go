package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the loans table row.
type Loan struct {
	LoanID     string          `db:"loan_id"`
	OwnerID    string          `db:"owner_id"`
	Branch     string          `db:"branch"`
	Name       string          `db:"name"`
	BankName   string          `db:"bank_name"`
	Amount     decimal.Decimal `db:"amount"`
	DateIssued *time.Time      `db:"date_issued"`
	DatePaid   *time.Time      `db:"date_paid"`
	IsArchived bool            `db:"is_archived"`
	ArchivedAt *time.Time      `db:"archived_at"`
	AuditFields
}
