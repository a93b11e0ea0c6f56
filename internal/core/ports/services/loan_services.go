package services

import (
	"context"

	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/opms-dev/opms_backend/internal/dto"
)

// LoanService manages branch loans.
type LoanService interface {
	// AddLoan records a loan against a branch.
	AddLoan(ctx context.Context, ownerID, branch string, req dto.AddLoanRequest) (*domain.Loan, error)

	// ListLoans lists non-archived loans for a branch; store failures
	// degrade to an empty list.
	ListLoans(ctx context.Context, ownerID, branch string) ([]domain.Loan, error)
}
