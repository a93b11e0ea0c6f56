package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus indicates the payment state of a transaction folder.
// Children carry the folder's status; they are never independently payable.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusPaid     TransactionStatus = "PAID"
	StatusDeclined TransactionStatus = "DECLINED"
)

// IsTerminal reports whether no further status transition is allowed.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusDeclined
}

// Deduction is a single named deduction applied to a child check.
// Order is preserved as entered by the user.
type Deduction struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Transaction is either a folder (ParentID nil) batching issued checks, or a
// child check line under a folder. Both live in the same collection and are
// always scoped to an owner and branch.
type Transaction struct {
	TransactionID  string            `json:"transactionID"`
	OwnerID        string            `json:"ownerID"`
	Branch         string            `json:"branch"`
	ParentID       *string           `json:"parentID,omitempty"`
	Name           string            `json:"name"`
	CheckNo        string            `json:"checkNo"`
	CheckDate      time.Time         `json:"checkDate"`
	DueDate        *time.Time        `json:"dueDate,omitempty"`
	Status         TransactionStatus `json:"status"`
	CheckAmount    decimal.Decimal   `json:"checkAmount"`
	CounteredCheck decimal.Decimal   `json:"counteredCheck"`
	EWT            decimal.Decimal   `json:"ewt"`
	Deductions     []Deduction       `json:"deductions"`
	Notes          string            `json:"notes"`
	PaidAt         *time.Time        `json:"paidAt,omitempty"`
	PaidBy         *string           `json:"paidBy,omitempty"`
	IsArchived     bool              `json:"isArchived"`
	ArchivedAt     *time.Time        `json:"archivedAt,omitempty"`
	AuditFields
}

// IsFolder reports whether the transaction is a parent folder.
func (t *Transaction) IsFolder() bool {
	return t.ParentID == nil
}

// IsComplete reports whether a child check carries everything reconciliation
// needs: a check number, a positive check amount, and a non-zero countered
// amount. A zero countered check means "not yet reconciled" even when set
// explicitly. Folders are never complete in this sense.
func (t *Transaction) IsComplete() bool {
	if t.IsFolder() {
		return false
	}
	return t.CheckNo != "" &&
		t.CheckAmount.IsPositive() &&
		!t.CounteredCheck.IsZero()
}

// DeriveChildAmounts computes the countered-check and EWT amounts for a child
// from its check amount and deduction list. The countered check is the check
// amount net of all deductions; EWT is the sum of deductions whose name is
// "EWT" (case-insensitive).
func DeriveChildAmounts(checkAmount decimal.Decimal, deductions []Deduction) (countered, ewt decimal.Decimal) {
	totalDeductions := decimal.Zero
	ewt = decimal.Zero
	for _, d := range deductions {
		totalDeductions = totalDeductions.Add(d.Amount)
		if strings.EqualFold(strings.TrimSpace(d.Name), "EWT") {
			ewt = ewt.Add(d.Amount)
		}
	}
	return checkAmount.Sub(totalDeductions), ewt
}

// FolderTotals is the derived money view of a folder. It is recomputed from
// the current child set on every read and never stored.
type FolderTotals struct {
	CheckAmount      decimal.Decimal `json:"checkAmount"`
	CounteredTotal   decimal.Decimal `json:"counteredTotal"`
	EWTTotal         decimal.Decimal `json:"ewtTotal"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// CalculateFolderTotals sums a folder's non-archived children. Archived
// children are skipped so a soft-deleted check drops out of the totals
// immediately.
func CalculateFolderTotals(children []Transaction) FolderTotals {
	totals := FolderTotals{
		CheckAmount:    decimal.Zero,
		CounteredTotal: decimal.Zero,
		EWTTotal:       decimal.Zero,
	}
	for _, c := range children {
		if c.IsArchived {
			continue
		}
		totals.CheckAmount = totals.CheckAmount.Add(c.CheckAmount)
		totals.CounteredTotal = totals.CounteredTotal.Add(c.CounteredCheck)
		totals.EWTTotal = totals.EWTTotal.Add(c.EWT)
	}
	totals.RemainingBalance = totals.CheckAmount.Sub(totals.CounteredTotal)
	return totals
}
