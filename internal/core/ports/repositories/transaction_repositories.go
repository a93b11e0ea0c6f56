package repositories

import (
	"context"
	"time"

	"github.com/opms-dev/opms_backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for transaction
// folders and child checks. Every method requires the owning user; methods
// touching listings additionally require the branch. A row belonging to a
// different owner behaves exactly like a missing row.
type TransactionRepository interface {
	// CreateTransaction inserts a folder or child row.
	CreateTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID returns a transaction scoped to its owner.
	// Returns apperrors.ErrNotFound when absent or owned by someone else.
	FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// FindChildrenByParentID returns the non-archived children of a folder,
	// oldest first.
	FindChildrenByParentID(ctx context.Context, ownerID, parentID string) ([]domain.Transaction, error)

	// ListFoldersByStatus returns non-archived folders for a branch filtered
	// by status, newest check date first.
	ListFoldersByStatus(ctx context.Context, ownerID, branch string, status domain.TransactionStatus) ([]domain.Transaction, error)

	// UpdateTransaction persists mutable fields of a folder or child. Status,
	// parent and ownership columns are never written by this method.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateFolderStatusIfPending atomically transitions a folder out of
	// PENDING and stamps its children with the same status inside one
	// database transaction. The update is conditioned on the folder still
	// being PENDING and not archived; it reports false when no row matched,
	// leaving the caller to distinguish not-found from already-settled.
	UpdateFolderStatusIfPending(ctx context.Context, ownerID, folderID string, status domain.TransactionStatus, notes *string, actorID string, at time.Time) (bool, error)

	// SetArchived flips the soft-delete flag. Archiving sets archived_at,
	// restoring clears it; status is untouched either way.
	SetArchived(ctx context.Context, ownerID, transactionID string, archived bool, actorID string, at time.Time) (bool, error)

	// ListArchived returns all archived transactions for an owner across
	// branches, most recently archived first.
	ListArchived(ctx context.Context, ownerID string) ([]domain.Transaction, error)

	// DeleteArchivedPermanently removes an archived row (and, for folders,
	// its children) for good. Non-archived rows are never deleted.
	DeleteArchivedPermanently(ctx context.Context, ownerID, transactionID string) (bool, error)
}
