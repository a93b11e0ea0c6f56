package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portsrepo "github.com/opms-dev/opms_backend/internal/core/ports/repositories"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
)

// monthlyChartScale is the fixed denominator for monthly chart bars. A fixed
// scale keeps bars comparable across periods instead of auto-scaling each
// year to its own maximum; a month above the scale renders as a full (100%)
// bar.
var monthlyChartScale = decimal.NewFromInt(2_000_000)

var oneHundred = decimal.NewFromInt(100)

// analyticsService implements the AnalyticsService interface.
type analyticsService struct {
	BaseService
	analyticsRepo portsrepo.AnalyticsRepository
	loanRepo      portsrepo.LoanRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(analyticsRepo portsrepo.AnalyticsRepository, loanRepo portsrepo.LoanRepository) portssvc.AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo, loanRepo: loanRepo}
}

// Ensure analyticsService implements the AnalyticsService interface
var _ portssvc.AnalyticsService = (*analyticsService)(nil)

// GetAnalyticsSummary builds the yearly earnings chart plus the 4-week
// breakdown of one month. Store failures degrade to zeroed data so the
// dashboard keeps rendering; the error is logged.
func (s *analyticsService) GetAnalyticsSummary(ctx context.Context, ownerID, branch string, year, month int) (*domain.AnalyticsSummary, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month must be between 1 and 12")
	}
	if year < 1 {
		return nil, apperrors.NewValidationError("year is invalid")
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	monthlyTotals, err := s.analyticsRepo.GetMonthlyPaidTotals(ctx, ownerID, branch, yearStart, yearEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly totals, degrading to empty chart",
			slog.String("branch", branch), slog.Int("year", year))
		monthlyTotals = map[int]decimal.Decimal{}
	}

	summary := &domain.AnalyticsSummary{
		Year:             year,
		Month:            month,
		TotalYearEarning: decimal.Zero,
		MonthTotal:       decimal.Zero,
		Months:           make([]domain.MonthBreakdown, 0, 12),
		Weeks:            make([]domain.WeekBreakdown, 0, 4),
	}

	for m := 1; m <= 12; m++ {
		total, ok := monthlyTotals[m]
		if !ok {
			total = decimal.Zero
		}
		summary.TotalYearEarning = summary.TotalYearEarning.Add(total)
		summary.Months = append(summary.Months, domain.MonthBreakdown{
			Month:   m,
			Total:   total,
			Percent: chartPercent(total),
		})
	}
	if total, ok := monthlyTotals[month]; ok {
		summary.MonthTotal = total
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	dailyTotals, err := s.analyticsRepo.GetDailyPaidTotals(ctx, ownerID, branch, monthStart, monthEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to load daily totals, degrading to empty weeks",
			slog.String("branch", branch), slog.Int("year", year), slog.Int("month", month))
		dailyTotals = map[int]decimal.Decimal{}
	}

	weekTotals := [5]decimal.Decimal{}
	for i := range weekTotals {
		weekTotals[i] = decimal.Zero
	}
	for day, total := range dailyTotals {
		weekTotals[weekOfMonth(day)] = weekTotals[weekOfMonth(day)].Add(total)
	}
	for w := 1; w <= 4; w++ {
		summary.Weeks = append(summary.Weeks, domain.WeekBreakdown{Week: w, Total: weekTotals[w]})
	}

	return summary, nil
}

// GetWeeklyBillingSummary aggregates one ISO week of billing: child sums of
// folders paid in the week plus loan repayments dated within it.
func (s *analyticsService) GetWeeklyBillingSummary(ctx context.Context, ownerID, branch string, year, week int) (*domain.WeeklyBillingSummary, error) {
	if week < 1 || week > 53 {
		return nil, apperrors.NewValidationError("week must be between 1 and 53")
	}
	if year < 1 {
		return nil, apperrors.NewValidationError("year is invalid")
	}

	weekStart := isoWeekStart(year, week)
	weekEnd := weekStart.AddDate(0, 0, 7)

	totals, err := s.analyticsRepo.GetPaidChildTotals(ctx, ownerID, branch, weekStart, weekEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to load weekly check totals, degrading to zero",
			slog.String("branch", branch), slog.Int("year", year), slog.Int("week", week))
		totals = domain.PaidCheckTotals{
			CheckAmount:    decimal.Zero,
			CounteredTotal: decimal.Zero,
			EWTTotal:       decimal.Zero,
		}
	}

	loanTotal, err := s.loanRepo.SumLoanRepayments(ctx, ownerID, branch, weekStart, weekEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to load weekly loan repayments, degrading to zero",
			slog.String("branch", branch), slog.Int("year", year), slog.Int("week", week))
		loanTotal = decimal.Zero
	}

	return &domain.WeeklyBillingSummary{
		Year:           year,
		Week:           week,
		CheckAmount:    totals.CheckAmount,
		EWTCollected:   totals.EWTTotal,
		CounteredCheck: totals.CounteredTotal,
		OtherLoans:     loanTotal,
	}, nil
}

// chartPercent maps a monthly total onto the fixed chart scale, capped at
// 100 so an exceptional month cannot blow out the layout.
func chartPercent(total decimal.Decimal) decimal.Decimal {
	percent := total.Div(monthlyChartScale).Mul(oneHundred)
	if percent.GreaterThan(oneHundred) {
		return oneHundred
	}
	return percent
}

// weekOfMonth buckets a day of month into weeks 1..4. Days 29-31 fold into
// week 4 so the breakdown always has exactly four buckets.
func weekOfMonth(day int) int {
	week := (day-1)/7 + 1
	if week > 4 {
		week = 4
	}
	return week
}

// isoWeekStart returns the UTC midnight Monday starting the given ISO week.
func isoWeekStart(year, week int) time.Time {
	// January 4th is always inside ISO week 1 of its year.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)
	return week1Monday.AddDate(0, 0, (week-1)*7)
}
