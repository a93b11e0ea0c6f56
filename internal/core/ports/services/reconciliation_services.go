package services

import (
	"context"

	"github.com/opms-dev/opms_backend/internal/core/domain"
)

// ReconciliationService validates folder completeness and drives the
// terminal status transitions.
type ReconciliationService interface {
	// ComputeFolderTotals recomputes the folder money view from its current
	// children. Never cached.
	ComputeFolderTotals(ctx context.Context, ownerID, folderID string) (*domain.FolderTotals, error)

	// MarkFolderPaid transitions PENDING→PAID. Fails with ErrNotFound,
	// ErrAlreadyPaid or ErrIncompleteChildren; under two concurrent calls
	// exactly one succeeds.
	MarkFolderPaid(ctx context.Context, ownerID, folderID string, notes *string) (*domain.Transaction, error)

	// DeclineFolder transitions PENDING→DECLINED with the same guarantees.
	DeclineFolder(ctx context.Context, ownerID, folderID string, notes *string) (*domain.Transaction, error)
}
