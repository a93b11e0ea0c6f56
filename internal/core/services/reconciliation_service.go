package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portsrepo "github.com/opms-dev/opms_backend/internal/core/ports/repositories"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
)

// reconciliationService implements the ReconciliationService interface.
type reconciliationService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewReconciliationService creates a new reconciliation service.
func NewReconciliationService(txnRepo portsrepo.TransactionRepository) portssvc.ReconciliationService {
	return &reconciliationService{txnRepo: txnRepo}
}

// Ensure reconciliationService implements the ReconciliationService interface
var _ portssvc.ReconciliationService = (*reconciliationService)(nil)

// ComputeFolderTotals recomputes the folder money view from the current
// child set. The result is never stored, so it cannot drift from the
// committed children.
func (s *reconciliationService) ComputeFolderTotals(ctx context.Context, ownerID, folderID string) (*domain.FolderTotals, error) {
	folder, err := s.txnRepo.FindTransactionByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	if !folder.IsFolder() {
		return nil, apperrors.NewNotFoundError("folder " + folderID + " not found")
	}

	children, err := s.txnRepo.FindChildrenByParentID(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}

	totals := domain.CalculateFolderTotals(children)
	return &totals, nil
}

// MarkFolderPaid transitions a folder PENDING→PAID once every child check is
// complete. The transition itself is a conditional update at the storage
// layer, so of two concurrent calls exactly one wins; the loser sees
// ErrAlreadyPaid.
func (s *reconciliationService) MarkFolderPaid(ctx context.Context, ownerID, folderID string, notes *string) (*domain.Transaction, error) {
	folder, err := s.loadPendingFolder(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}

	children, err := s.txnRepo.FindChildrenByParentID(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, apperrors.NewAppError(409, "folder "+folderID+" has no child checks", apperrors.ErrIncompleteChildren)
	}
	for i := range children {
		if !children[i].IsComplete() {
			s.LogDebug(ctx, "Child check incomplete, refusing payment",
				slog.String("folder_id", folderID), slog.String("child_id", children[i].TransactionID))
			return nil, apperrors.NewAppError(409, "child check "+children[i].TransactionID+" is incomplete", apperrors.ErrIncompleteChildren)
		}
	}

	return s.settleFolder(ctx, folder, domain.StatusPaid, notes)
}

// DeclineFolder transitions a folder PENDING→DECLINED. Completeness is not
// required to decline.
func (s *reconciliationService) DeclineFolder(ctx context.Context, ownerID, folderID string, notes *string) (*domain.Transaction, error) {
	folder, err := s.loadPendingFolder(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	return s.settleFolder(ctx, folder, domain.StatusDeclined, notes)
}

// loadPendingFolder fetches a folder and verifies it can still be settled.
func (s *reconciliationService) loadPendingFolder(ctx context.Context, ownerID, folderID string) (*domain.Transaction, error) {
	folder, err := s.txnRepo.FindTransactionByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	if !folder.IsFolder() || folder.IsArchived {
		return nil, apperrors.NewNotFoundError("folder " + folderID + " not found")
	}
	if folder.Status != domain.StatusPending {
		return nil, apperrors.NewAppError(409, "folder "+folderID+" is already "+string(folder.Status), apperrors.ErrAlreadyPaid)
	}
	return folder, nil
}

// settleFolder performs the conditional status update and reports the
// stamped folder. A lost race surfaces as ErrAlreadyPaid.
func (s *reconciliationService) settleFolder(ctx context.Context, folder *domain.Transaction, status domain.TransactionStatus, notes *string) (*domain.Transaction, error) {
	now := time.Now().UTC()
	updated, err := s.txnRepo.UpdateFolderStatusIfPending(ctx, folder.OwnerID, folder.TransactionID, status, notes, folder.OwnerID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to settle folder",
			slog.String("folder_id", folder.TransactionID), slog.String("status", string(status)))
		return nil, err
	}
	if !updated {
		// Someone else settled (or archived) the folder between our read and
		// the conditional update.
		return nil, apperrors.NewAppError(409, "folder "+folder.TransactionID+" was settled concurrently", apperrors.ErrAlreadyPaid)
	}

	folder.Status = status
	folder.PaidAt = &now
	folder.PaidBy = &folder.OwnerID
	if notes != nil {
		folder.Notes = *notes
	}
	folder.LastUpdatedAt = now
	folder.LastUpdatedBy = folder.OwnerID

	s.LogInfo(ctx, "Folder settled",
		slog.String("folder_id", folder.TransactionID), slog.String("status", string(status)))
	return folder, nil
}
