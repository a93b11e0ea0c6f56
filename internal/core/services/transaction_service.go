package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portsrepo "github.com/opms-dev/opms_backend/internal/core/ports/repositories"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/dto"
)

// transactionService implements the TransactionService interface.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionService {
	return &transactionService{txnRepo: txnRepo}
}

// Ensure transactionService implements the TransactionService interface
var _ portssvc.TransactionService = (*transactionService)(nil)

// CreateFolder creates a new pending transaction folder.
func (s *transactionService) CreateFolder(ctx context.Context, ownerID, branch string, req dto.CreateFolderRequest) (*domain.Transaction, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("folder name is required")
	}
	if req.CheckDate.IsZero() {
		return nil, apperrors.NewValidationError("check date is required")
	}

	now := time.Now().UTC()
	folder := domain.Transaction{
		TransactionID:  uuid.NewString(),
		OwnerID:        ownerID,
		Branch:         branch,
		Name:           req.Name,
		CheckDate:      req.CheckDate,
		DueDate:        req.DueDate,
		Status:         domain.StatusPending,
		CheckAmount:    decimal.Zero,
		CounteredCheck: decimal.Zero,
		EWT:            decimal.Zero,
		Deductions:     []domain.Deduction{},
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.txnRepo.CreateTransaction(ctx, folder); err != nil {
		s.LogError(ctx, err, "Failed to create transaction folder", slog.String("branch", branch))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction folder created",
		slog.String("transaction_id", folder.TransactionID), slog.String("branch", branch))
	return &folder, nil
}

// CreateChild adds an issued check under a pending folder.
func (s *transactionService) CreateChild(ctx context.Context, ownerID, branch, folderID string, req dto.CreateChildRequest) (*domain.Transaction, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("check name is required")
	}
	if req.CheckAmount.IsNegative() {
		return nil, apperrors.NewValidationError("check amount cannot be negative")
	}
	deductions := dto.ToDomainDeductions(req.Deductions)
	for _, d := range deductions {
		if d.Amount.IsNegative() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("deduction %q cannot be negative", d.Name))
		}
	}

	folder, err := s.txnRepo.FindTransactionByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	if !folder.IsFolder() || folder.IsArchived || folder.Branch != branch {
		return nil, apperrors.NewNotFoundError("folder " + folderID + " not found")
	}
	if folder.Status != domain.StatusPending {
		// No new children once the folder has been settled.
		return nil, apperrors.NewAppError(409, "folder "+folderID+" is no longer pending", apperrors.ErrAlreadyPaid)
	}

	now := time.Now().UTC()
	checkDate := now
	if req.CheckDate != nil {
		checkDate = *req.CheckDate
	}
	countered, ewt := domain.DeriveChildAmounts(req.CheckAmount, deductions)

	child := domain.Transaction{
		TransactionID:  uuid.NewString(),
		OwnerID:        ownerID,
		Branch:         branch,
		ParentID:       &folder.TransactionID,
		Name:           req.Name,
		CheckNo:        req.CheckNo,
		CheckDate:      checkDate,
		Status:         domain.StatusPending,
		CheckAmount:    req.CheckAmount,
		CounteredCheck: countered,
		EWT:            ewt,
		Deductions:     deductions,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.txnRepo.CreateTransaction(ctx, child); err != nil {
		s.LogError(ctx, err, "Failed to create child check", slog.String("folder_id", folderID))
		return nil, err
	}

	s.LogInfo(ctx, "Child check created",
		slog.String("transaction_id", child.TransactionID), slog.String("folder_id", folderID))
	return &child, nil
}

// UpdateFolder merges header fields of a folder.
func (s *transactionService) UpdateFolder(ctx context.Context, ownerID, folderID string, req dto.UpdateFolderRequest) (*domain.Transaction, error) {
	folder, err := s.txnRepo.FindTransactionByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	if !folder.IsFolder() || folder.IsArchived {
		return nil, apperrors.NewNotFoundError("folder " + folderID + " not found")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationError("folder name cannot be empty")
		}
		folder.Name = *req.Name
	}
	if req.CheckDate != nil {
		folder.CheckDate = *req.CheckDate
	}
	if req.DueDate != nil {
		folder.DueDate = req.DueDate
	}
	if req.Notes != nil {
		folder.Notes = *req.Notes
	}
	folder.LastUpdatedAt = time.Now().UTC()
	folder.LastUpdatedBy = ownerID

	if err := s.txnRepo.UpdateTransaction(ctx, *folder); err != nil {
		s.LogError(ctx, err, "Failed to update folder", slog.String("folder_id", folderID))
		return nil, err
	}
	return folder, nil
}

// UpdateChild merges child fields and rederives the countered-check and EWT
// amounts from the resulting check amount and deduction list.
func (s *transactionService) UpdateChild(ctx context.Context, ownerID, childID string, req dto.UpdateChildRequest) (*domain.Transaction, error) {
	child, err := s.txnRepo.FindTransactionByID(ctx, ownerID, childID)
	if err != nil {
		return nil, err
	}
	if child.IsFolder() || child.IsArchived {
		return nil, apperrors.NewNotFoundError("child check " + childID + " not found")
	}

	if req.Name != nil {
		child.Name = *req.Name
	}
	if req.CheckNo != nil {
		child.CheckNo = *req.CheckNo
	}
	if req.CheckDate != nil {
		child.CheckDate = *req.CheckDate
	}
	if req.Notes != nil {
		child.Notes = *req.Notes
	}
	if req.CheckAmount != nil {
		if req.CheckAmount.IsNegative() {
			return nil, apperrors.NewValidationError("check amount cannot be negative")
		}
		child.CheckAmount = *req.CheckAmount
	}
	if req.Deductions != nil {
		deductions := dto.ToDomainDeductions(*req.Deductions)
		for _, d := range deductions {
			if d.Amount.IsNegative() {
				return nil, apperrors.NewValidationError(fmt.Sprintf("deduction %q cannot be negative", d.Name))
			}
		}
		child.Deductions = deductions
	}

	child.CounteredCheck, child.EWT = domain.DeriveChildAmounts(child.CheckAmount, child.Deductions)
	child.LastUpdatedAt = time.Now().UTC()
	child.LastUpdatedBy = ownerID

	if err := s.txnRepo.UpdateTransaction(ctx, *child); err != nil {
		s.LogError(ctx, err, "Failed to update child check", slog.String("child_id", childID))
		return nil, err
	}
	return child, nil
}

// GetFolder fetches a folder, optionally with its children (oldest first).
func (s *transactionService) GetFolder(ctx context.Context, ownerID, folderID string, includeChildren bool) (*domain.Transaction, []domain.Transaction, error) {
	folder, err := s.txnRepo.FindTransactionByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, nil, err
	}
	if !folder.IsFolder() {
		return nil, nil, apperrors.NewNotFoundError("folder " + folderID + " not found")
	}

	if !includeChildren {
		return folder, nil, nil
	}

	children, err := s.txnRepo.FindChildrenByParentID(ctx, ownerID, folderID)
	if err != nil {
		return nil, nil, err
	}
	return folder, children, nil
}

// ListFoldersByStatus lists a branch's folders by status. A store failure
// degrades to an empty list so dashboards keep rendering.
func (s *transactionService) ListFoldersByStatus(ctx context.Context, ownerID, branch string, status domain.TransactionStatus) ([]domain.Transaction, error) {
	folders, err := s.txnRepo.ListFoldersByStatus(ctx, ownerID, branch, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list folders, returning empty result",
			slog.String("branch", branch), slog.String("status", string(status)))
		return []domain.Transaction{}, nil
	}
	return folders, nil
}

// ArchiveTransaction soft-deletes a folder or child.
func (s *transactionService) ArchiveTransaction(ctx context.Context, ownerID, transactionID string) error {
	updated, err := s.txnRepo.SetArchived(ctx, ownerID, transactionID, true, ownerID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to archive transaction", slog.String("transaction_id", transactionID))
		return err
	}
	if !updated {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	s.LogInfo(ctx, "Transaction archived", slog.String("transaction_id", transactionID))
	return nil
}

// RestoreTransaction clears the archive flag; status is untouched, so the
// item comes back exactly as it was.
func (s *transactionService) RestoreTransaction(ctx context.Context, ownerID, transactionID string) error {
	updated, err := s.txnRepo.SetArchived(ctx, ownerID, transactionID, false, ownerID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to restore transaction", slog.String("transaction_id", transactionID))
		return err
	}
	if !updated {
		return apperrors.NewNotFoundError("archived transaction " + transactionID + " not found")
	}
	s.LogInfo(ctx, "Transaction restored", slog.String("transaction_id", transactionID))
	return nil
}

// PurgeTransaction permanently removes an archived item.
func (s *transactionService) PurgeTransaction(ctx context.Context, ownerID, transactionID string) error {
	deleted, err := s.txnRepo.DeleteArchivedPermanently(ctx, ownerID, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to purge transaction", slog.String("transaction_id", transactionID))
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("archived transaction " + transactionID + " not found")
	}
	s.LogInfo(ctx, "Transaction purged", slog.String("transaction_id", transactionID))
	return nil
}

// ListArchived lists the owner's archived items across branches.
func (s *transactionService) ListArchived(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	items, err := s.txnRepo.ListArchived(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list archived transactions, returning empty result")
		return []domain.Transaction{}, nil
	}
	return items, nil
}
