package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portsrepo "github.com/opms-dev/opms_backend/internal/core/ports/repositories"
	"github.com/opms-dev/opms_backend/internal/models"
	"github.com/opms-dev/opms_backend/internal/utils/mapping"
)

const transactionColumns = `
	transaction_id, owner_id, branch, parent_id, name, check_no, check_date, due_date,
	status, check_amount, countered_check, ewt, deductions, notes, paid_at, paid_by,
	is_archived, archived_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for folder and check data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// marshalDeductions encodes the deduction lines for the JSONB column. A nil
// slice is stored as an empty array so reads never see JSON null.
func marshalDeductions(ds []models.Deduction) ([]byte, error) {
	if ds == nil {
		ds = []models.Deduction{}
	}
	raw, err := json.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to encode deductions: %w", err)
	}
	return raw, nil
}

// scanTransaction scans one row in transactionColumns order.
func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var rawDeductions []byte

	err := row.Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.Branch,
		&m.ParentID,
		&m.Name,
		&m.CheckNo,
		&m.CheckDate,
		&m.DueDate,
		&m.Status,
		&m.CheckAmount,
		&m.CounteredCheck,
		&m.EWT,
		&rawDeductions,
		&m.Notes,
		&m.PaidAt,
		&m.PaidBy,
		&m.IsArchived,
		&m.ArchivedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	if len(rawDeductions) > 0 {
		if err := json.Unmarshal(rawDeductions, &m.Deductions); err != nil {
			return models.Transaction{}, fmt.Errorf("failed to decode deductions for %s: %w", m.TransactionID, err)
		}
	}
	return m, nil
}

// collectTransactions drains a result set of transaction rows.
func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTransaction inserts a folder or child row.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	rawDeductions, err := marshalDeductions(m.Deductions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Branch,
		m.ParentID,
		m.Name,
		m.CheckNo,
		m.CheckDate,
		m.DueDate,
		m.Status,
		m.CheckAmount,
		m.CounteredCheck,
		m.EWT,
		rawDeductions,
		m.Notes,
		m.PaidAt,
		m.PaidBy,
		m.IsArchived,
		m.ArchivedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewStoreUnavailableError("failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction scoped to its owner. A row
// owned by someone else behaves exactly like a missing row.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreUnavailableError("failed to find transaction "+transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindChildrenByParentID returns the non-archived children of a folder, oldest first.
func (r *PgxTransactionRepository) FindChildrenByParentID(ctx context.Context, ownerID, parentID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE parent_id = $1 AND owner_id = $2 AND is_archived = FALSE
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, parentID, ownerID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query children of "+parentID, err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to scan children of "+parentID, err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListFoldersByStatus returns non-archived folders for a branch filtered by
// status, newest check date first.
func (r *PgxTransactionRepository) ListFoldersByStatus(ctx context.Context, ownerID, branch string, status domain.TransactionStatus) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND branch = $2 AND parent_id IS NULL
		  AND status = $3 AND is_archived = FALSE
		ORDER BY check_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, branch, models.TransactionStatus(status))
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query folders for branch "+branch, err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to scan folders for branch "+branch, err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// UpdateTransaction persists the mutable fields of a folder or child.
// Status, parent and ownership columns are never written here.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	rawDeductions, err := marshalDeductions(m.Deductions)
	if err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET name = $3, check_no = $4, check_date = $5, due_date = $6,
		    check_amount = $7, countered_check = $8, ewt = $9, deductions = $10,
		    notes = $11, last_updated_at = $12, last_updated_by = $13
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Name,
		m.CheckNo,
		m.CheckDate,
		m.DueDate,
		m.CheckAmount,
		m.CounteredCheck,
		m.EWT,
		rawDeductions,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewStoreUnavailableError("failed to update transaction "+m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateFolderStatusIfPending atomically transitions a folder out of PENDING
// and stamps its children with the same status inside one database
// transaction. The folder update is conditioned on status = PENDING, so under
// concurrent settle attempts exactly one caller sees a matched row.
func (r *PgxTransactionRepository) UpdateFolderStatusIfPending(ctx context.Context, ownerID, folderID string, status domain.TransactionStatus, notes *string, actorID string, at time.Time) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	folderQuery := `
		UPDATE transactions
		SET status = $3, notes = COALESCE($4, notes), paid_at = $5, paid_by = $6,
		    last_updated_at = $5, last_updated_by = $6
		WHERE transaction_id = $1 AND owner_id = $2 AND parent_id IS NULL
		  AND status = $7 AND is_archived = FALSE;
	`
	tag, err := tx.Exec(ctx, folderQuery,
		folderID, ownerID, models.TransactionStatus(status), notes, at, actorID, models.Pending,
	)
	if err != nil {
		return false, apperrors.NewStoreUnavailableError("failed to settle folder "+folderID, err)
	}
	if tag.RowsAffected() == 0 {
		// Not pending anymore, archived, or not this owner's folder.
		return false, nil
	}

	childQuery := `
		UPDATE transactions
		SET status = $3, paid_at = $4, paid_by = $5,
		    last_updated_at = $4, last_updated_by = $5
		WHERE parent_id = $1 AND owner_id = $2 AND is_archived = FALSE;
	`
	if _, err := tx.Exec(ctx, childQuery, folderID, ownerID, models.TransactionStatus(status), at, actorID); err != nil {
		return false, apperrors.NewStoreUnavailableError("failed to stamp children of "+folderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

// SetArchived flips the soft-delete flag. Archiving stamps archived_at,
// restoring clears it; status is untouched either way.
func (r *PgxTransactionRepository) SetArchived(ctx context.Context, ownerID, transactionID string, archived bool, actorID string, at time.Time) (bool, error) {
	var archivedAt *time.Time
	if archived {
		archivedAt = &at
	}

	query := `
		UPDATE transactions
		SET is_archived = $3, archived_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE transaction_id = $1 AND owner_id = $2 AND is_archived = NOT $3;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, ownerID, archived, archivedAt, at, actorID)
	if err != nil {
		return false, apperrors.NewStoreUnavailableError("failed to set archive flag on "+transactionID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListArchived returns all archived transactions for an owner across
// branches, most recently archived first.
func (r *PgxTransactionRepository) ListArchived(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND is_archived = TRUE
		ORDER BY archived_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query archived transactions", err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to scan archived transactions", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// DeleteArchivedPermanently removes an archived row for good. Children of a
// deleted folder go with it via the parent_id ON DELETE CASCADE constraint.
// Non-archived rows are never deleted.
func (r *PgxTransactionRepository) DeleteArchivedPermanently(ctx context.Context, ownerID, transactionID string) (bool, error) {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2 AND is_archived = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, ownerID)
	if err != nil {
		return false, apperrors.NewStoreUnavailableError("failed to delete transaction "+transactionID, err)
	}
	return tag.RowsAffected() > 0, nil
}
