package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/core/services"
)

// --- Mock AnalyticsRepository ---
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) GetMonthlyPaidTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (map[int]decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, branch, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]decimal.Decimal), args.Error(1)
}

func (m *MockAnalyticsRepository) GetDailyPaidTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (map[int]decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, branch, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]decimal.Decimal), args.Error(1)
}

func (m *MockAnalyticsRepository) GetPaidChildTotals(ctx context.Context, ownerID, branch string, from, to time.Time) (domain.PaidCheckTotals, error) {
	args := m.Called(ctx, ownerID, branch, from, to)
	return args.Get(0).(domain.PaidCheckTotals), args.Error(1)
}

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) CreateLoan(ctx context.Context, loan domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) ListLoansByBranch(ctx context.Context, ownerID, branch string) ([]domain.Loan, error) {
	args := m.Called(ctx, ownerID, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) SumLoanRepayments(ctx context.Context, ownerID, branch string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, branch, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockAnalyticsRepo *MockAnalyticsRepository
	mockLoanRepo      *MockLoanRepository
	service           portssvc.AnalyticsService
	ownerID           string
	branch            string
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockAnalyticsRepo = new(MockAnalyticsRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.service = services.NewAnalyticsService(suite.mockAnalyticsRepo, suite.mockLoanRepo)
	suite.ownerID = uuid.NewString()
	suite.branch = "main-office"
}

func (suite *AnalyticsServiceTestSuite) monthPercent(summary *domain.AnalyticsSummary, month int) decimal.Decimal {
	for _, m := range summary.Months {
		if m.Month == month {
			return m.Percent
		}
	}
	suite.FailNowf("month missing from breakdown", "month %d", month)
	return decimal.Zero
}

func (suite *AnalyticsServiceTestSuite) TestGetAnalyticsSummary_FixedScalePercentages() {
	ctx := context.Background()

	// 100,000 against the 2,000,000 chart scale is 5%; 2,100,000 exceeds the
	// scale and caps at 100%.
	suite.mockAnalyticsRepo.On("GetMonthlyPaidTotals", ctx, suite.ownerID, suite.branch,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
		Return(map[int]decimal.Decimal{
			1: dec("100000"),
			2: dec("2100000"),
		}, nil).Once()
	suite.mockAnalyticsRepo.On("GetDailyPaidTotals", ctx, suite.ownerID, suite.branch,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
		Return(map[int]decimal.Decimal{}, nil).Once()

	summary, err := suite.service.GetAnalyticsSummary(ctx, suite.ownerID, suite.branch, 2025, 1)

	suite.Require().NoError(err)
	suite.Len(summary.Months, 12)
	suite.True(suite.monthPercent(summary, 1).Equal(dec("5")))
	suite.True(suite.monthPercent(summary, 2).Equal(dec("100")))
	suite.True(suite.monthPercent(summary, 3).IsZero())
	suite.True(summary.TotalYearEarning.Equal(dec("2200000")))
	suite.True(summary.MonthTotal.Equal(dec("100000")))
	suite.mockAnalyticsRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetAnalyticsSummary_WeekBuckets() {
	ctx := context.Background()

	suite.mockAnalyticsRepo.On("GetMonthlyPaidTotals", ctx, suite.ownerID, suite.branch,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(map[int]decimal.Decimal{}, nil).Once()
	// Days 1, 8 and 29-31 exercise the bucket edges: days past 28 fold into
	// week 4.
	suite.mockAnalyticsRepo.On("GetDailyPaidTotals", ctx, suite.ownerID, suite.branch,
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)).
		Return(map[int]decimal.Decimal{
			1:  dec("10"),
			7:  dec("5"),
			8:  dec("20"),
			22: dec("40"),
			29: dec("100"),
			31: dec("200"),
		}, nil).Once()

	summary, err := suite.service.GetAnalyticsSummary(ctx, suite.ownerID, suite.branch, 2025, 7)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Weeks, 4)
	suite.Equal(1, summary.Weeks[0].Week)
	suite.True(summary.Weeks[0].Total.Equal(dec("15")))
	suite.True(summary.Weeks[1].Total.Equal(dec("20")))
	suite.True(summary.Weeks[2].Total.IsZero())
	suite.True(summary.Weeks[3].Total.Equal(dec("340")))
}

func (suite *AnalyticsServiceTestSuite) TestGetAnalyticsSummary_InvalidMonth() {
	ctx := context.Background()

	summary, err := suite.service.GetAnalyticsSummary(ctx, suite.ownerID, suite.branch, 2025, 13)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AnalyticsServiceTestSuite) TestGetAnalyticsSummary_DegradesOnStoreError() {
	ctx := context.Background()

	suite.mockAnalyticsRepo.On("GetMonthlyPaidTotals", ctx, suite.ownerID, suite.branch,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()
	suite.mockAnalyticsRepo.On("GetDailyPaidTotals", ctx, suite.ownerID, suite.branch,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	summary, err := suite.service.GetAnalyticsSummary(ctx, suite.ownerID, suite.branch, 2025, 1)

	suite.Require().NoError(err)
	suite.Len(summary.Months, 12)
	suite.True(summary.TotalYearEarning.IsZero())
	for _, w := range summary.Weeks {
		suite.True(w.Total.IsZero())
	}
}

func (suite *AnalyticsServiceTestSuite) TestGetWeeklyBillingSummary() {
	ctx := context.Background()

	// ISO week 1 of 2026 starts Monday 2025-12-29.
	weekStart := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 7)

	suite.mockAnalyticsRepo.On("GetPaidChildTotals", ctx, suite.ownerID, suite.branch, weekStart, weekEnd).
		Return(domain.PaidCheckTotals{
			CheckAmount:    dec("5000"),
			CounteredTotal: dec("4800"),
			EWTTotal:       dec("120"),
		}, nil).Once()
	suite.mockLoanRepo.On("SumLoanRepayments", ctx, suite.ownerID, suite.branch, weekStart, weekEnd).
		Return(dec("300"), nil).Once()

	summary, err := suite.service.GetWeeklyBillingSummary(ctx, suite.ownerID, suite.branch, 2026, 1)

	suite.Require().NoError(err)
	suite.Equal(2026, summary.Year)
	suite.Equal(1, summary.Week)
	suite.True(summary.CheckAmount.Equal(dec("5000")))
	suite.True(summary.CounteredCheck.Equal(dec("4800")))
	suite.True(summary.EWTCollected.Equal(dec("120")))
	suite.True(summary.OtherLoans.Equal(dec("300")))
	suite.mockAnalyticsRepo.AssertExpectations(suite.T())
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetWeeklyBillingSummary_InvalidWeek() {
	ctx := context.Background()

	summary, err := suite.service.GetWeeklyBillingSummary(ctx, suite.ownerID, suite.branch, 2026, 54)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
