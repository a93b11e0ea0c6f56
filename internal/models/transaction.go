package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus mirrors the domain status enum at the storage layer.
type TransactionStatus string

const (
	Pending  TransactionStatus = "PENDING"
	Paid     TransactionStatus = "PAID"
	Declined TransactionStatus = "DECLINED"
)

// Deduction is the JSONB shape of one deduction line.
type Deduction struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Transaction is the transactions table row. Folders have parent_id NULL;
// child checks reference their folder's transaction_id.
type Transaction struct {
	TransactionID  string            `db:"transaction_id"`
	OwnerID        string            `db:"owner_id"`
	Branch         string            `db:"branch"`
	ParentID       *string           `db:"parent_id"`
	Name           string            `db:"name"`
	CheckNo        string            `db:"check_no"`
	CheckDate      time.Time         `db:"check_date"`
	DueDate        *time.Time        `db:"due_date"`
	Status         TransactionStatus `db:"status"`
	CheckAmount    decimal.Decimal   `db:"check_amount"`
	CounteredCheck decimal.Decimal   `db:"countered_check"`
	EWT            decimal.Decimal   `db:"ewt"`
	Deductions     []Deduction       `db:"deductions"` // JSONB column
	Notes          string            `db:"notes"`
	PaidAt         *time.Time        `db:"paid_at"`
	PaidBy         *string           `db:"paid_by"`
	IsArchived     bool              `db:"is_archived"`
	ArchivedAt     *time.Time        `db:"archived_at"`
	AuditFields
}
