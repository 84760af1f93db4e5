package domain

import "github.com/shopspring/decimal"

// GroupAll selects every account regardless of management group.
const GroupAll = "all"

type SortField string

const (
	SortByRevenue    SortField = "revenue"
	SortByCommission SortField = "commission"
	SortByLoss       SortField = "loss"
)

// DetailSource names the list a drill-down lookup is resolved against.
type DetailSource string

const (
	SourceAccounts     DetailSource = "accounts"
	SourceSpecialRange DetailSource = "special_range"
)

// AccountSelection holds the selectors of the account revenue table.
type AccountSelection struct {
	Group  string
	SortBy SortField
}

type Overview struct {
	GeneratedAt string
	Summary     Summary
}

type RankedAccount struct {
	Rank    int
	Account Account
}

// AccountRevenueView is the filtered, sorted account table. The totals cover
// the filtered rows only.
type AccountRevenueView struct {
	Selection          AccountSelection
	Rows               []RankedAccount
	FilteredRevenue    decimal.Decimal
	FilteredCommission decimal.Decimal
}

type CommissionSummaryView struct {
	Group              string
	Rows               []Account
	FilteredRevenue    decimal.Decimal
	FilteredCommission decimal.Decimal
}

// SpecialRangeView totals always cover the whole special range list.
type SpecialRangeView struct {
	Rows            []RangeEntry
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
}

type Detail struct {
	Source  DetailSource
	Account string
	Stocks  []StockEntry
}

// ChartSeries is a labelled series ready for a chart renderer. Percentages is
// only filled for pie projections.
type ChartSeries struct {
	Labels      []string
	Values      []decimal.Decimal
	Percentages []string
	Colors      []string
}

type ChartSet struct {
	GainPie ChartSeries
	GainBar ChartSeries
	LossPie ChartSeries
	LossBar ChartSeries
	// LossEmpty is set when no stock lost money; the loss series are empty.
	LossEmpty bool
}

type MissingRecordsView struct {
	Records []MissingRecord
	Empty   bool
}
