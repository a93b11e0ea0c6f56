package repositories

import (
	"context"
	"time"

	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanRepository defines persistence operations for loans.
type LoanRepository interface {
	// CreateLoan inserts a loan row.
	CreateLoan(ctx context.Context, loan domain.Loan) error

	// ListLoansByBranch returns non-archived loans for a branch, most
	// recently issued first.
	ListLoansByBranch(ctx context.Context, ownerID, branch string) ([]domain.Loan, error)

	// SumLoanRepayments totals loan amounts with date_paid within [from, to)
	// for the weekly billing summary.
	SumLoanRepayments(ctx context.Context, ownerID, branch string, from, to time.Time) (decimal.Decimal, error)
}
