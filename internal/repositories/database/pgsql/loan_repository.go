package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portsrepo "github.com/opms-dev/opms_backend/internal/core/ports/repositories"
	"github.com/opms-dev/opms_backend/internal/models"
	"github.com/opms-dev/opms_backend/internal/utils/mapping"
)

const loanColumns = `
	loan_id, owner_id, branch, name, bank_name, amount, date_issued, date_paid,
	is_archived, archived_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan data.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepository {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLoanRepository implements portsrepo.LoanRepository
var _ portsrepo.LoanRepository = (*PgxLoanRepository)(nil)

// CreateLoan inserts a loan row.
func (r *PgxLoanRepository) CreateLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)

	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LoanID,
		m.OwnerID,
		m.Branch,
		m.Name,
		m.BankName,
		m.Amount,
		m.DateIssued,
		m.DatePaid,
		m.IsArchived,
		m.ArchivedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewStoreUnavailableError("failed to insert loan "+m.LoanID, err)
	}
	return nil
}

// ListLoansByBranch returns non-archived loans for a branch, most recently
// issued first.
func (r *PgxLoanRepository) ListLoansByBranch(ctx context.Context, ownerID, branch string) ([]domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE owner_id = $1 AND branch = $2 AND is_archived = FALSE
		ORDER BY date_issued DESC NULLS LAST, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, branch)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query loans for branch "+branch, err)
	}
	defer rows.Close()

	var ms []models.Loan
	for rows.Next() {
		var m models.Loan
		err := rows.Scan(
			&m.LoanID,
			&m.OwnerID,
			&m.Branch,
			&m.Name,
			&m.BankName,
			&m.Amount,
			&m.DateIssued,
			&m.DatePaid,
			&m.IsArchived,
			&m.ArchivedAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewStoreUnavailableError("failed to scan loan row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to read loans for branch "+branch, err)
	}
	return mapping.ToDomainLoanSlice(ms), nil
}

// SumLoanRepayments totals loan amounts with date_paid within [from, to).
func (r *PgxLoanRepository) SumLoanRepayments(ctx context.Context, ownerID, branch string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM loans
		WHERE owner_id = $1 AND branch = $2 AND is_archived = FALSE
		  AND date_paid >= $3 AND date_paid < $4;
	`
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, ownerID, branch, from, to).Scan(&total)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, apperrors.NewStoreUnavailableError("failed to sum loan repayments", err)
	}
	return total, nil
}
