package dto

import (
	"github.com/opms-dev/opms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthBreakdownResponse is one bar of the yearly earnings chart.
type MonthBreakdownResponse struct {
	Month   int             `json:"month"`
	Total   decimal.Decimal `json:"total"`
	Percent decimal.Decimal `json:"percent"`
}

// WeekBreakdownResponse is one bucket of the 4-week month breakdown.
type WeekBreakdownResponse struct {
	Week  int             `json:"week"`
	Total decimal.Decimal `json:"total"`
}

// AnalyticsSummaryResponse is the earnings chart payload.
type AnalyticsSummaryResponse struct {
	Year             int                      `json:"year"`
	Month            int                      `json:"month"`
	TotalYearEarning decimal.Decimal          `json:"totalYearEarning"`
	MonthTotal       decimal.Decimal          `json:"monthTotal"`
	Months           []MonthBreakdownResponse `json:"months"`
	Weeks            []WeekBreakdownResponse  `json:"weeks"`
}

// WeeklyBillingSummaryResponse is one ISO week of billing activity.
type WeeklyBillingSummaryResponse struct {
	Year           int             `json:"year"`
	Week           int             `json:"week"`
	CheckAmount    decimal.Decimal `json:"checkAmount"`
	EWTCollected   decimal.Decimal `json:"ewtCollected"`
	CounteredCheck decimal.Decimal `json:"counteredCheck"`
	OtherLoans     decimal.Decimal `json:"otherLoans"`
}

// ToAnalyticsSummaryResponse converts the domain summary to its wire shape.
func ToAnalyticsSummaryResponse(s *domain.AnalyticsSummary) AnalyticsSummaryResponse {
	months := make([]MonthBreakdownResponse, len(s.Months))
	for i, m := range s.Months {
		months[i] = MonthBreakdownResponse{Month: m.Month, Total: m.Total, Percent: m.Percent}
	}
	weeks := make([]WeekBreakdownResponse, len(s.Weeks))
	for i, w := range s.Weeks {
		weeks[i] = WeekBreakdownResponse{Week: w.Week, Total: w.Total}
	}
	return AnalyticsSummaryResponse{
		Year:             s.Year,
		Month:            s.Month,
		TotalYearEarning: s.TotalYearEarning,
		MonthTotal:       s.MonthTotal,
		Months:           months,
		Weeks:            weeks,
	}
}

// ToWeeklyBillingSummaryResponse converts the domain weekly summary.
func ToWeeklyBillingSummaryResponse(s *domain.WeeklyBillingSummary) WeeklyBillingSummaryResponse {
	return WeeklyBillingSummaryResponse{
		Year:           s.Year,
		Week:           s.Week,
		CheckAmount:    s.CheckAmount,
		EWTCollected:   s.EWTCollected,
		CounteredCheck: s.CounteredCheck,
		OtherLoans:     s.OtherLoans,
	}
}
