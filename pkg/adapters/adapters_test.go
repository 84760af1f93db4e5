package adapters

import (
	"testing"

	"github.com/de-tools/ipo-report/pkg/models/api"
	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/de-tools/ipo-report/pkg/models/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMapStoreReportToDomain(t *testing.T) {
	group := "A组"
	note := "含紫金国际"
	doc := &store.ReportDocument{
		GeneratedAt: "2025-06-20",
		Summary:     store.SummaryRecord{TotalRevenue: d("10"), TotalStocks: 1, TotalAccounts: 1},
		Stocks:      []store.StockRecord{{Name: "S1", Revenue: d("10")}},
		Accounts: []store.AccountRecord{{
			Account:         "张三",
			Rate:            d("0.35"),
			RateGroup:       "35%",
			ManagementGroup: &group,
			TotalRevenue:    d("10"),
			Stocks: []store.AccountStockRecord{
				{StockName: "S1", Revenue: d("10"), Commission: d("3.5"), IsSpecial: true, SpecialNote: &note},
			},
		}},
		SpecialRange: []store.RangeRecord{{Account: "王五", RangeCommission: d("2"), HasZijinExtra: true}},
		MissingRecords: []store.MissingPriceRecord{
			{Account: "张三", Stock: "S2", Row: 5, Col: "C"},
		},
	}

	r := MapStoreReportToDomain(doc)
	require.NotNil(t, r)

	assert.Equal(t, "2025-06-20", r.GeneratedAt)
	assert.Equal(t, 1, r.Summary.TotalStocks)
	assert.Equal(t, []domain.Stock{{Name: "S1", Revenue: d("10")}}, r.Stocks)

	require.Len(t, r.Accounts, 1)
	a := r.Accounts[0]
	assert.Equal(t, "A组", a.ManagementGroup)
	assert.Equal(t, "0.35", a.Rate.String())
	assert.Equal(t, []domain.StockEntry{
		{StockName: "S1", Revenue: d("10"), Commission: d("3.5"), IsSpecial: true, SpecialNote: note},
	}, a.Stocks)

	require.Len(t, r.SpecialRange, 1)
	assert.Equal(t, "", r.SpecialRange[0].ManagementGroup)
	assert.NotNil(t, r.SpecialRange[0].Stocks)
	assert.Equal(t, []domain.MissingRecord{{Account: "张三", Stock: "S2", Row: 5, Col: "C"}}, r.MissingRecords)

	assert.Nil(t, MapStoreReportToDomain(nil))
}

func TestMapAccountRevenueDomainToApi(t *testing.T) {
	view := domain.AccountRevenueView{
		Selection: domain.AccountSelection{Group: domain.GroupAll, SortBy: domain.SortByCommission},
		Rows: []domain.RankedAccount{{
			Rank: 1,
			Account: domain.Account{
				Account: "A", ManagementGroup: "X", RateGroup: "20%",
				TotalRevenue: d("100.25"), TotalCommission: d("10"), TotalLoss: d("0"),
			},
		}},
		FilteredRevenue:    d("100.25"),
		FilteredCommission: d("10"),
	}

	assert.Equal(t, api.AccountRevenueView{
		Group:  "all",
		SortBy: "commission",
		Rows: []api.AccountRow{{
			Rank: 1, Account: "A", ManagementGroup: "X", RateGroup: "20%",
			TotalRevenue: 100.25, TotalCommission: 10, TotalLoss: 0,
		}},
		FilteredRevenue:    100.25,
		FilteredCommission: 10,
	}, MapAccountRevenueDomainToApi(view))
}

func TestMapEmptyViewsToApi(t *testing.T) {
	assert.Equal(t, []api.AccountRow{}, MapCommissionSummaryDomainToApi(domain.CommissionSummaryView{}).Rows)
	assert.Equal(t, []api.RangeRow{}, MapSpecialRangeDomainToApi(domain.SpecialRangeView{}).Rows)
	assert.Equal(t, []api.StockEntry{}, MapDetailDomainToApi(domain.Detail{}).Stocks)
	assert.Equal(t, []api.MissingRecord{}, MapMissingRecordsDomainToApi(domain.MissingRecordsView{Empty: true}).Records)

	charts := MapChartSetDomainToApi(domain.ChartSet{LossEmpty: true})
	assert.True(t, charts.LossEmpty)
	assert.Equal(t, api.ChartSeries{Labels: []string{}, Values: []float64{}, Colors: []string{}}, charts.LossPie)
}

func TestMapChartSeriesDomainToApi(t *testing.T) {
	series := domain.ChartSeries{
		Labels:      []string{"S1", "Other"},
		Values:      []decimal.Decimal{d("75.5"), d("24.5")},
		Percentages: []string{"75.5", "24.5"},
		Colors:      []string{"#FF6384", "#36A2EB"},
	}

	assert.Equal(t, api.ChartSeries{
		Labels:      []string{"S1", "Other"},
		Values:      []float64{75.5, 24.5},
		Percentages: []string{"75.5", "24.5"},
		Colors:      []string{"#FF6384", "#36A2EB"},
	}, MapChartSeriesDomainToApi(series))
}
