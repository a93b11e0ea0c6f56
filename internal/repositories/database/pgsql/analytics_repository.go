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
)

type PgxAnalyticsRepository struct {
	BaseRepository
}

// newPgxAnalyticsRepository creates a new repository for earnings aggregates.
func newPgxAnalyticsRepository(pool *pgxpool.Pool) portsrepo.AnalyticsRepository {
	return &PgxAnalyticsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAnalyticsRepository implements portsrepo.AnalyticsRepository
var _ portsrepo.AnalyticsRepository = (*PgxAnalyticsRepository)(nil)

// paidFolderFilter restricts aggregates to PAID, non-archived folders of one
// owner and branch with paid_at inside [from, to). The folder amount is
// always derived from its non-archived children, never read from a stored
// column.
const paidFolderFilter = `
	FROM transactions f
	JOIN transactions c ON c.parent_id = f.transaction_id AND c.is_archived = FALSE
	WHERE f.owner_id = $1 AND f.branch = $2 AND f.parent_id IS NULL
	  AND f.status = 'PAID' AND f.is_archived = FALSE
	  AND f.paid_at >= $3 AND f.paid_at < $4`

// sumGroupedByPaidAtPart runs a countered-check sum grouped by one date part
// of paid_at.
func (r *PgxAnalyticsRepository) sumGroupedByPaidAtPart(ctx context.Context, part, ownerID, branch string, from, to time.Time) (map[int]decimal.Decimal, error) {
	query := `
		SELECT EXTRACT(` + part + ` FROM f.paid_at)::int AS bucket, SUM(c.countered_check) AS total
	` + paidFolderFilter + `
		GROUP BY bucket;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, branch, from, to)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query paid totals by "+part, err)
	}
	defer rows.Close()

	totals := make(map[int]decimal.Decimal)
	for rows.Next() {
		var bucket int
		var total decimal.Decimal
		if err := rows.Scan(&bucket, &total); err != nil {
			return nil, apperrors.NewStoreUnavailableError("failed to scan paid totals by "+part, err)
		}
		totals[bucket] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to read paid totals by "+part, err)
	}
	return totals, nil
}

// GetMonthlyPaidTotals sums paid folder amounts grouped by calendar month of
// paid_at within [from, to). Months without payments are absent from the map.
func (r *PgxAnalyticsRepository) GetMonthlyPaidTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (map[int]decimal.Decimal, error) {
	return r.sumGroupedByPaidAtPart(ctx, "MONTH", ownerID, branch, from, to)
}

// GetDailyPaidTotals sums paid folder amounts grouped by day-of-month of
// paid_at within [from, to).
func (r *PgxAnalyticsRepository) GetDailyPaidTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (map[int]decimal.Decimal, error) {
	return r.sumGroupedByPaidAtPart(ctx, "DAY", ownerID, branch, from, to)
}

// GetPaidChildTotals sums check_amount, countered_check and ewt over the
// children of folders paid within [from, to).
func (r *PgxAnalyticsRepository) GetPaidChildTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (domain.PaidCheckTotals, error) {
	query := `
		SELECT COALESCE(SUM(c.check_amount), 0),
		       COALESCE(SUM(c.countered_check), 0),
		       COALESCE(SUM(c.ewt), 0)
	` + paidFolderFilter + `;
	`
	var totals domain.PaidCheckTotals
	err := r.Pool.QueryRow(ctx, query, ownerID, branch, from, to).Scan(
		&totals.CheckAmount,
		&totals.CounteredTotal,
		&totals.EWTTotal,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.PaidCheckTotals{}, apperrors.NewStoreUnavailableError("failed to query paid check totals", err)
	}
	return totals, nil
}
