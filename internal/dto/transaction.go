package dto

import (
	"time"

	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeductionInput is one deduction line on a child check, in entry order.
type DeductionInput struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateFolderRequest creates a new transaction folder. Amounts are never
// accepted here; a folder's money view is derived from its children.
type CreateFolderRequest struct {
	Name      string     `json:"name" binding:"required"`
	CheckDate time.Time  `json:"checkDate" binding:"required" time_format:"2006-01-02"`
	DueDate   *time.Time `json:"dueDate,omitempty" time_format:"2006-01-02"`
	Notes     string     `json:"notes"`
}

// CreateChildRequest adds an issued check under a pending folder.
type CreateChildRequest struct {
	Name        string           `json:"name" binding:"required"`
	CheckNo     string           `json:"checkNo"`
	CheckDate   *time.Time       `json:"checkDate,omitempty" time_format:"2006-01-02"`
	CheckAmount decimal.Decimal  `json:"checkAmount"`
	Deductions  []DeductionInput `json:"deductions"`
	Notes       string           `json:"notes"`
}

// UpdateFolderRequest merges folder header fields. Amounts and status are
// not updatable through this request.
type UpdateFolderRequest struct {
	Name      *string    `json:"name,omitempty"`
	CheckDate *time.Time `json:"checkDate,omitempty" time_format:"2006-01-02"`
	DueDate   *time.Time `json:"dueDate,omitempty" time_format:"2006-01-02"`
	Notes     *string    `json:"notes,omitempty"`
}

// UpdateChildRequest merges child check fields. Parent and owner are fixed
// at creation; countered check and EWT are rederived from the new amounts.
type UpdateChildRequest struct {
	Name        *string           `json:"name,omitempty"`
	CheckNo     *string           `json:"checkNo,omitempty"`
	CheckDate   *time.Time        `json:"checkDate,omitempty" time_format:"2006-01-02"`
	CheckAmount *decimal.Decimal  `json:"checkAmount,omitempty"`
	Deductions  *[]DeductionInput `json:"deductions,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
}

// PayFolderRequest carries the optional reconciliation notes.
type PayFolderRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ListTransactionsRequest filters folder listings by status.
type ListTransactionsRequest struct {
	Status string `form:"status" binding:"required,txnstatus"`
}

// DeductionResponse mirrors one deduction line.
type DeductionResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// TransactionResponse is the wire shape of a folder or child check.
type TransactionResponse struct {
	TransactionID  string              `json:"transactionID"`
	Branch         string              `json:"branch"`
	ParentID       *string             `json:"parentID,omitempty"`
	Name           string              `json:"name"`
	CheckNo        string              `json:"checkNo,omitempty"`
	CheckDate      time.Time           `json:"checkDate"`
	DueDate        *time.Time          `json:"dueDate,omitempty"`
	Status         string              `json:"status"`
	CheckAmount    decimal.Decimal     `json:"checkAmount"`
	CounteredCheck decimal.Decimal     `json:"counteredCheck"`
	EWT            decimal.Decimal     `json:"ewt"`
	Deductions     []DeductionResponse `json:"deductions,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	PaidAt         *time.Time          `json:"paidAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// FolderDetailResponse is a folder together with its (optional) children.
type FolderDetailResponse struct {
	Folder   TransactionResponse   `json:"folder"`
	Children []TransactionResponse `json:"children,omitempty"`
}

// FolderTotalsResponse is the recomputed money view of a folder.
type FolderTotalsResponse struct {
	CheckAmount      decimal.Decimal `json:"checkAmount"`
	CounteredTotal   decimal.Decimal `json:"counteredTotal"`
	EWTTotal         decimal.Decimal `json:"ewtTotal"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// ToTransactionResponse converts a domain.Transaction to its wire shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	deductions := make([]DeductionResponse, len(t.Deductions))
	for i, d := range t.Deductions {
		deductions[i] = DeductionResponse{Name: d.Name, Amount: d.Amount}
	}
	return TransactionResponse{
		TransactionID:  t.TransactionID,
		Branch:         t.Branch,
		ParentID:       t.ParentID,
		Name:           t.Name,
		CheckNo:        t.CheckNo,
		CheckDate:      t.CheckDate,
		DueDate:        t.DueDate,
		Status:         string(t.Status),
		CheckAmount:    t.CheckAmount,
		CounteredCheck: t.CounteredCheck,
		EWT:            t.EWT,
		Deductions:     deductions,
		Notes:          t.Notes,
		PaidAt:         t.PaidAt,
		CreatedAt:      t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i := range ts {
		responses[i] = ToTransactionResponse(&ts[i])
	}
	return responses
}

// ToFolderTotalsResponse converts derived folder totals.
func ToFolderTotalsResponse(t domain.FolderTotals) FolderTotalsResponse {
	return FolderTotalsResponse{
		CheckAmount:      t.CheckAmount,
		CounteredTotal:   t.CounteredTotal,
		EWTTotal:         t.EWTTotal,
		RemainingBalance: t.RemainingBalance,
	}
}

// ToDomainDeductions converts deduction inputs preserving entry order.
func ToDomainDeductions(inputs []DeductionInput) []domain.Deduction {
	ds := make([]domain.Deduction, len(inputs))
	for i, in := range inputs {
		ds[i] = domain.Deduction{Name: in.Name, Amount: in.Amount}
	}
	return ds
}
