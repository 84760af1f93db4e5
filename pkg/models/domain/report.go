package domain

import "github.com/shopspring/decimal"

// Report is the loaded dataset. It is built once and never mutated afterwards.
type Report struct {
	GeneratedAt    string
	Summary        Summary
	Stocks         []Stock
	Accounts       []Account
	SpecialRange   []RangeEntry
	MissingRecords []MissingRecord
}

// Summary holds the totals computed upstream by the report generator.
type Summary struct {
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
	TotalLoss       decimal.Decimal
	TotalStocks     int
	TotalAccounts   int
}

// Stock is the revenue of one IPO summed across every account.
type Stock struct {
	Name    string
	Revenue decimal.Decimal
}

type Account struct {
	Account         string
	ManagementGroup string
	RateGroup       string          // "35%"
	Rate            decimal.Decimal // 0.35
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
	TotalLoss       decimal.Decimal
	Stocks          []StockEntry
}

// StockEntry is the per-account breakdown of one stock.
type StockEntry struct {
	StockName   string
	Revenue     decimal.Decimal
	Commission  decimal.Decimal
	IsSpecial   bool
	SpecialNote string
}

// RangeEntry is the commission of one account restricted to the special stock range.
// Account is not guaranteed to match any Account.Account.
type RangeEntry struct {
	Account         string
	ManagementGroup string
	RateGroup       string
	RangeRevenue    decimal.Decimal
	RangeCommission decimal.Decimal
	HasZijinExtra   bool
	Stocks          []StockEntry
}

// MissingRecord points at a source spreadsheet cell lacking a sell price.
type MissingRecord struct {
	Account string
	Stock   string
	Row     int
	Col     string
}
