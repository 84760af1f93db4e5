package adapters

import (
	"github.com/de-tools/ipo-report/pkg/models/api"
	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

func MapOverviewDomainToApi(o domain.Overview) api.Overview {
	return api.Overview{
		GeneratedAt:     o.GeneratedAt,
		TotalRevenue:    o.Summary.TotalRevenue.InexactFloat64(),
		TotalCommission: o.Summary.TotalCommission.InexactFloat64(),
		TotalLoss:       o.Summary.TotalLoss.InexactFloat64(),
		TotalStocks:     o.Summary.TotalStocks,
		TotalAccounts:   o.Summary.TotalAccounts,
	}
}

func MapAccountRevenueDomainToApi(v domain.AccountRevenueView) api.AccountRevenueView {
	rows := make([]api.AccountRow, 0, len(v.Rows))
	for _, r := range v.Rows {
		row := MapAccountDomainToApi(r.Account)
		row.Rank = r.Rank
		rows = append(rows, row)
	}

	return api.AccountRevenueView{
		Group:              v.Selection.Group,
		SortBy:             string(v.Selection.SortBy),
		Rows:               rows,
		FilteredRevenue:    v.FilteredRevenue.InexactFloat64(),
		FilteredCommission: v.FilteredCommission.InexactFloat64(),
	}
}

func MapCommissionSummaryDomainToApi(v domain.CommissionSummaryView) api.CommissionSummaryView {
	rows := make([]api.AccountRow, 0, len(v.Rows))
	for _, a := range v.Rows {
		rows = append(rows, MapAccountDomainToApi(a))
	}

	return api.CommissionSummaryView{
		Group:              v.Group,
		Rows:               rows,
		FilteredRevenue:    v.FilteredRevenue.InexactFloat64(),
		FilteredCommission: v.FilteredCommission.InexactFloat64(),
	}
}

func MapAccountDomainToApi(a domain.Account) api.AccountRow {
	return api.AccountRow{
		Account:         a.Account,
		ManagementGroup: a.ManagementGroup,
		RateGroup:       a.RateGroup,
		TotalRevenue:    a.TotalRevenue.InexactFloat64(),
		TotalCommission: a.TotalCommission.InexactFloat64(),
		TotalLoss:       a.TotalLoss.InexactFloat64(),
	}
}

func MapSpecialRangeDomainToApi(v domain.SpecialRangeView) api.SpecialRangeView {
	rows := make([]api.RangeRow, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, api.RangeRow{
			Account:         r.Account,
			ManagementGroup: r.ManagementGroup,
			RateGroup:       r.RateGroup,
			RangeRevenue:    r.RangeRevenue.InexactFloat64(),
			RangeCommission: r.RangeCommission.InexactFloat64(),
			HasZijinExtra:   r.HasZijinExtra,
		})
	}

	return api.SpecialRangeView{
		Rows:            rows,
		TotalRevenue:    v.TotalRevenue.InexactFloat64(),
		TotalCommission: v.TotalCommission.InexactFloat64(),
	}
}

func MapDetailDomainToApi(d domain.Detail) api.Detail {
	stocks := make([]api.StockEntry, 0, len(d.Stocks))
	for _, s := range d.Stocks {
		stocks = append(stocks, api.StockEntry{
			StockName:   s.StockName,
			Revenue:     s.Revenue.InexactFloat64(),
			Commission:  s.Commission.InexactFloat64(),
			IsSpecial:   s.IsSpecial,
			SpecialNote: s.SpecialNote,
		})
	}

	return api.Detail{
		Source:  string(d.Source),
		Account: d.Account,
		Stocks:  stocks,
	}
}

func MapChartSetDomainToApi(c domain.ChartSet) api.Charts {
	return api.Charts{
		GainPie:   MapChartSeriesDomainToApi(c.GainPie),
		GainBar:   MapChartSeriesDomainToApi(c.GainBar),
		LossPie:   MapChartSeriesDomainToApi(c.LossPie),
		LossBar:   MapChartSeriesDomainToApi(c.LossBar),
		LossEmpty: c.LossEmpty,
	}
}

func MapChartSeriesDomainToApi(s domain.ChartSeries) api.ChartSeries {
	return api.ChartSeries{
		Labels:      nonNil(s.Labels),
		Values:      toFloats(s.Values),
		Percentages: s.Percentages,
		Colors:      nonNil(s.Colors),
	}
}

func MapMissingRecordsDomainToApi(v domain.MissingRecordsView) api.MissingRecords {
	records := make([]api.MissingRecord, 0, len(v.Records))
	for _, m := range v.Records {
		records = append(records, api.MissingRecord{
			Account: m.Account,
			Stock:   m.Stock,
			Row:     m.Row,
			Col:     m.Col,
		})
	}
	return api.MissingRecords{Records: records, Empty: v.Empty}
}

func toFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		out = append(out, v.InexactFloat64())
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
