package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portsrepo "github.com/opms-dev/opms_backend/internal/core/ports/repositories"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/dto"
)

// loanService implements the LoanService interface.
type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepository
}

// NewLoanService creates a new loan service.
func NewLoanService(loanRepo portsrepo.LoanRepository) portssvc.LoanService {
	return &loanService{loanRepo: loanRepo}
}

// Ensure loanService implements the LoanService interface
var _ portssvc.LoanService = (*loanService)(nil)

// AddLoan records a loan against a branch.
func (s *loanService) AddLoan(ctx context.Context, ownerID, branch string, req dto.AddLoanRequest) (*domain.Loan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("loan name is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("loan amount must be positive")
	}

	now := time.Now().UTC()
	loan := domain.Loan{
		LoanID:     uuid.New().String(),
		OwnerID:    ownerID,
		Branch:     branch,
		Name:       name,
		BankName:   strings.TrimSpace(req.BankName),
		Amount:     req.Amount,
		DateIssued: req.DateIssued,
		DatePaid:   req.DatePaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.loanRepo.CreateLoan(ctx, loan); err != nil {
		s.LogError(ctx, err, "Failed to create loan", slog.String("branch", branch))
		return nil, err
	}

	s.LogInfo(ctx, "Loan recorded",
		slog.String("loan_id", loan.LoanID), slog.String("branch", branch))
	return &loan, nil
}

// ListLoans lists non-archived loans for a branch. Store failures degrade to
// an empty list so the billing screen keeps rendering.
func (s *loanService) ListLoans(ctx context.Context, ownerID, branch string) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoansByBranch(ctx, ownerID, branch)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans, degrading to empty list",
			slog.String("branch", branch))
		return []domain.Loan{}, nil
	}
	return loans, nil
}
