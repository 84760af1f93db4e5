package report

import (
	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func account(name, group string, revenue, commission, loss string) domain.Account {
	return domain.Account{
		Account:         name,
		ManagementGroup: group,
		RateGroup:       "35%",
		Rate:            d("0.35"),
		TotalRevenue:    d(revenue),
		TotalCommission: d(commission),
		TotalLoss:       d(loss),
	}
}

func fixtureReport() *domain.Report {
	a := account("A", "X", "100", "10", "0")
	a.RateGroup = "20%"
	a.Stocks = []domain.StockEntry{
		{StockName: "S1", Revenue: d("60"), Commission: d("6")},
		{StockName: "S2", Revenue: d("40"), Commission: d("4"), IsSpecial: true, SpecialNote: "Zijin"},
	}
	b := account("B", "Y", "-50", "0", "50")
	b.RateGroup = "10%"

	return &domain.Report{
		GeneratedAt: "2025-06-20 10:00:00",
		Summary: domain.Summary{
			TotalRevenue:    d("50"),
			TotalCommission: d("10"),
			TotalLoss:       d("50"),
			TotalStocks:     3,
			TotalAccounts:   2,
		},
		Stocks: []domain.Stock{
			{Name: "S1", Revenue: d("60")},
			{Name: "S2", Revenue: d("40")},
			{Name: "S3", Revenue: d("-50")},
		},
		Accounts: []domain.Account{a, b},
		SpecialRange: []domain.RangeEntry{
			{Account: "R1", RateGroup: "30%", RangeRevenue: d("10"), RangeCommission: d("3")},
			{Account: "R2", RateGroup: "50%", RangeRevenue: d("40"), RangeCommission: d("20"), HasZijinExtra: true},
		},
		MissingRecords: []domain.MissingRecord{
			{Account: "A", Stock: "S9", Row: 4, Col: "F"},
		},
	}
}
