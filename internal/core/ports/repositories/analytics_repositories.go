package repositories

import (
	"context"
	"time"

	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnalyticsRepository exposes the grouped sums the analytics service folds
// into chart data. Only PAID, non-archived folders with a recorded paid_at
// contribute; a folder's amount is the sum of its non-archived children's
// countered checks, computed inside the query rather than read from a
// stored column.
type AnalyticsRepository interface {
	// GetMonthlyPaidTotals sums paid folder amounts grouped by calendar
	// month of paid_at within [from, to). Months without payments are
	// absent from the map.
	GetMonthlyPaidTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (map[int]decimal.Decimal, error)

	// GetDailyPaidTotals sums paid folder amounts grouped by day-of-month
	// of paid_at within [from, to).
	GetDailyPaidTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (map[int]decimal.Decimal, error)

	// GetPaidChildTotals sums check_amount, countered_check and ewt over the
	// children of folders paid within [from, to).
	GetPaidChildTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (domain.PaidCheckTotals, error)
}
