package services

import (
	"context"

	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/opms-dev/opms_backend/internal/dto"
)

// TransactionService manages the folder/child aggregate lifecycle. All
// operations act on behalf of an owner; owner mismatches are reported as
// not-found.
type TransactionService interface {
	// CreateFolder creates a pending transaction folder for a branch.
	CreateFolder(ctx context.Context, ownerID, branch string, req dto.CreateFolderRequest) (*domain.Transaction, error)

	// CreateChild adds an issued check under a pending folder. Fails with
	// ErrNotFound when the folder is absent or archived and ErrAlreadyPaid
	// when the folder has left PENDING.
	CreateChild(ctx context.Context, ownerID, branch, folderID string, req dto.CreateChildRequest) (*domain.Transaction, error)

	// UpdateFolder merges header fields of a folder (name, dates, notes).
	UpdateFolder(ctx context.Context, ownerID, folderID string, req dto.UpdateFolderRequest) (*domain.Transaction, error)

	// UpdateChild merges child fields and rederives its amounts.
	UpdateChild(ctx context.Context, ownerID, childID string, req dto.UpdateChildRequest) (*domain.Transaction, error)

	// GetFolder fetches a folder, optionally with its children.
	GetFolder(ctx context.Context, ownerID, folderID string, includeChildren bool) (*domain.Transaction, []domain.Transaction, error)

	// ListFoldersByStatus lists a branch's folders by status. Store failures
	// degrade to an empty list; they are logged, not propagated.
	ListFoldersByStatus(ctx context.Context, ownerID, branch string, status domain.TransactionStatus) ([]domain.Transaction, error)

	// ArchiveTransaction soft-deletes a folder or child.
	ArchiveTransaction(ctx context.Context, ownerID, transactionID string) error

	// RestoreTransaction brings an archived item back with its prior status.
	RestoreTransaction(ctx context.Context, ownerID, transactionID string) error

	// PurgeTransaction permanently removes an archived item.
	PurgeTransaction(ctx context.Context, ownerID, transactionID string) error

	// ListArchived lists the owner's archived items across branches.
	ListArchived(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}
