package domain

import "github.com/shopspring/decimal"

// MonthBreakdown is one bar of the 12-month earnings chart. Percent is the
// bar height against the fixed chart scale, capped at 100.
type MonthBreakdown struct {
	Month   int             `json:"month"`
	Total   decimal.Decimal `json:"total"`
	Percent decimal.Decimal `json:"percent"`
}

// WeekBreakdown is one bucket of the 4-week breakdown of a month.
type WeekBreakdown struct {
	Week  int             `json:"week"`
	Total decimal.Decimal `json:"total"`
}

// AnalyticsSummary is the combined earnings view for a year with a weekly
// drill-down into one month. All totals come from paid, non-archived folders.
type AnalyticsSummary struct {
	Year             int              `json:"year"`
	Month            int              `json:"month"`
	TotalYearEarning decimal.Decimal  `json:"totalYearEarning"`
	MonthTotal       decimal.Decimal  `json:"monthTotal"`
	Months           []MonthBreakdown `json:"months"`
	Weeks            []WeekBreakdown  `json:"weeks"`
}

// PaidCheckTotals carries the raw child sums over a set of paid folders, as
// produced by the aggregation query for a billing window.
type PaidCheckTotals struct {
	CheckAmount    decimal.Decimal
	CounteredTotal decimal.Decimal
	EWTTotal       decimal.Decimal
}

// WeeklyBillingSummary aggregates one ISO week of billing activity: the
// check/EWT/countered sums of folders paid in the week plus loan repayments
// dated within it.
type WeeklyBillingSummary struct {
	Year           int             `json:"year"`
	Week           int             `json:"week"`
	CheckAmount    decimal.Decimal `json:"checkAmount"`
	EWTCollected   decimal.Decimal `json:"ewtCollected"`
	CounteredCheck decimal.Decimal `json:"counteredCheck"`
	OtherLoans     decimal.Decimal `json:"otherLoans"`
}
