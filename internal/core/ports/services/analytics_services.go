package services

import (
	"context"

	"github.com/opms-dev/opms_backend/internal/core/domain"
)

// AnalyticsService derives earnings reports from paid folders.
type AnalyticsService interface {
	// GetAnalyticsSummary builds the yearly chart with a weekly drill-down
	// into one month.
	GetAnalyticsSummary(ctx context.Context, ownerID, branch string, year, month int) (*domain.AnalyticsSummary, error)

	// GetWeeklyBillingSummary aggregates one ISO week of billing activity.
	GetWeeklyBillingSummary(ctx context.Context, ownerID, branch string, year, week int) (*domain.WeeklyBillingSummary, error)
}
