package store

import "github.com/shopspring/decimal"

// ReportDocument is the JSON document produced by the upstream report generator.
type ReportDocument struct {
	GeneratedAt    string               `json:"generated_at"`
	Summary        SummaryRecord        `json:"summary"`
	Stocks         []StockRecord        `json:"stocks"`
	Accounts       []AccountRecord      `json:"accounts"`
	SpecialRange   []RangeRecord        `json:"special_range"`
	MissingRecords []MissingPriceRecord `json:"missing_records"`
}

type SummaryRecord struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	TotalLoss       decimal.Decimal `json:"total_loss"`
	TotalStocks     int             `json:"total_stocks"`
	TotalAccounts   int             `json:"total_accounts"`
}

type StockRecord struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

type AccountRecord struct {
	Account         string               `json:"account"`
	Rate            decimal.Decimal      `json:"rate"`
	RateGroup       string               `json:"rate_group"`
	ManagementGroup *string              `json:"management_group"`
	TotalRevenue    decimal.Decimal      `json:"total_revenue"`
	TotalCommission decimal.Decimal      `json:"total_commission"`
	TotalLoss       decimal.Decimal      `json:"total_loss"`
	Stocks          []AccountStockRecord `json:"stocks"`
}

type AccountStockRecord struct {
	StockName   string          `json:"stock_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	Commission  decimal.Decimal `json:"commission"`
	IsSpecial   bool            `json:"is_special"`
	SpecialNote *string         `json:"special_note"`
}

type RangeRecord struct {
	Account         string               `json:"account"`
	RateGroup       string               `json:"rate_group"`
	ManagementGroup *string              `json:"management_group"`
	RangeRevenue    decimal.Decimal      `json:"range_revenue"`
	RangeCommission decimal.Decimal      `json:"range_commission"`
	HasZijinExtra   bool                 `json:"has_zijin_extra"`
	Stocks          []AccountStockRecord `json:"stocks"`
}

type MissingPriceRecord struct {
	Account string `json:"account"`
	Stock   string `json:"stock"`
	Row     int    `json:"row"`
	Col     string `json:"col"`
}
