package dto

import (
	"time"

	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddLoanRequest records a bank loan against a branch.
type AddLoanRequest struct {
	Name       string          `json:"name" binding:"required"`
	BankName   string          `json:"bankName"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	DateIssued *time.Time      `json:"dateIssued,omitempty" time_format:"2006-01-02"`
	DatePaid   *time.Time      `json:"datePaid,omitempty" time_format:"2006-01-02"`
}

// LoanResponse is the wire shape of a loan.
type LoanResponse struct {
	LoanID     string          `json:"loanID"`
	Branch     string          `json:"branch"`
	Name       string          `json:"name"`
	BankName   string          `json:"bankName,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	DateIssued *time.Time      `json:"dateIssued,omitempty"`
	DatePaid   *time.Time      `json:"datePaid,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToLoanResponse converts a domain.Loan to its wire shape.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:     l.LoanID,
		Branch:     l.Branch,
		Name:       l.Name,
		BankName:   l.BankName,
		Amount:     l.Amount,
		DateIssued: l.DateIssued,
		DatePaid:   l.DatePaid,
		CreatedAt:  l.CreatedAt,
	}
}

// ToLoanResponses converts a slice of domain loans.
func ToLoanResponses(ls []domain.Loan) []LoanResponse {
	responses := make([]LoanResponse, len(ls))
	for i := range ls {
		responses[i] = ToLoanResponse(&ls[i])
	}
	return responses
}
