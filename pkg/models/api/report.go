package api

type Overview struct {
	GeneratedAt     string  `json:"generated_at"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
	TotalLoss       float64 `json:"total_loss"`
	TotalStocks     int     `json:"total_stocks"`
	TotalAccounts   int     `json:"total_accounts"`
}

type AccountRow struct {
	Rank            int     `json:"rank,omitempty"`
	Account         string  `json:"account"`
	ManagementGroup string  `json:"management_group"`
	RateGroup       string  `json:"rate_group"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
	TotalLoss       float64 `json:"total_loss"`
}

type AccountRevenueView struct {
	Group              string       `json:"group"`
	SortBy             string       `json:"sort_by"`
	Rows               []AccountRow `json:"rows"`
	FilteredRevenue    float64      `json:"filtered_revenue"`
	FilteredCommission float64      `json:"filtered_commission"`
}

type CommissionSummaryView struct {
	Group              string       `json:"group"`
	Rows               []AccountRow `json:"rows"`
	FilteredRevenue    float64      `json:"filtered_revenue"`
	FilteredCommission float64      `json:"filtered_commission"`
}

type RangeRow struct {
	Account         string  `json:"account"`
	ManagementGroup string  `json:"management_group,omitempty"`
	RateGroup       string  `json:"rate_group"`
	RangeRevenue    float64 `json:"range_revenue"`
	RangeCommission float64 `json:"range_commission"`
	HasZijinExtra   bool    `json:"has_zijin_extra"`
}

type SpecialRangeView struct {
	Rows            []RangeRow `json:"rows"`
	TotalRevenue    float64    `json:"total_revenue"`
	TotalCommission float64    `json:"total_commission"`
}

type StockEntry struct {
	StockName   string  `json:"stock_name"`
	Revenue     float64 `json:"revenue"`
	Commission  float64 `json:"commission"`
	IsSpecial   bool    `json:"is_special"`
	SpecialNote string  `json:"special_note,omitempty"`
}

type Detail struct {
	Source  string       `json:"source"`
	Account string       `json:"account"`
	Stocks  []StockEntry `json:"stocks"`
}

type ChartSeries struct {
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	Percentages []string  `json:"percentages,omitempty"`
	Colors      []string  `json:"colors"`
}

type Charts struct {
	GainPie   ChartSeries `json:"gain_pie"`
	GainBar   ChartSeries `json:"gain_bar"`
	LossPie   ChartSeries `json:"loss_pie"`
	LossBar   ChartSeries `json:"loss_bar"`
	LossEmpty bool        `json:"loss_empty"`
}

type MissingRecord struct {
	Account string `json:"account"`
	Stock   string `json:"stock"`
	Row     int    `json:"row"`
	Col     string `json:"col"`
}

type MissingRecords struct {
	Records []MissingRecord `json:"records"`
	Empty   bool            `json:"empty"`
}
