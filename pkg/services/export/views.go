package export

import (
	"github.com/de-tools/ipo-report/pkg/models/domain"
)

const (
	AccountRevenueBase    = "account_revenue"
	CommissionSummaryBase = "commission_summary"
	SpecialRangeBase      = "special_range"

	ZijinExtraNote = "Includes Zijin International"
)

var AccountRevenueColumns = []Column[domain.RankedAccount]{
	{Label: "Rank", Value: func(r domain.RankedAccount) any { return r.Rank }},
	{Label: "Account", Value: func(r domain.RankedAccount) any { return r.Account.Account }},
	{Label: "Rate Group", Value: func(r domain.RankedAccount) any { return r.Account.RateGroup }},
	{Label: "Total Revenue", Value: func(r domain.RankedAccount) any { return r.Account.TotalRevenue.InexactFloat64() }},
	{Label: "Total Commission", Value: func(r domain.RankedAccount) any { return r.Account.TotalCommission.InexactFloat64() }},
	{Label: "Total Loss", Value: func(r domain.RankedAccount) any { return r.Account.TotalLoss.InexactFloat64() }},
}

var CommissionSummaryColumns = []Column[domain.Account]{
	{Label: "Account", Value: func(a domain.Account) any { return a.Account }},
	{Label: "Rate Group", Value: func(a domain.Account) any { return a.RateGroup }},
	{Label: "Total Revenue", Value: func(a domain.Account) any { return a.TotalRevenue.InexactFloat64() }},
	{Label: "Total Commission", Value: func(a domain.Account) any { return a.TotalCommission.InexactFloat64() }},
	{Label: "Total Loss", Value: func(a domain.Account) any { return a.TotalLoss.InexactFloat64() }},
}

var SpecialRangeColumns = []Column[domain.RangeEntry]{
	{Label: "Account", Value: func(e domain.RangeEntry) any { return e.Account }},
	{Label: "Rate Group", Value: func(e domain.RangeEntry) any { return e.RateGroup }},
	{Label: "Range Revenue", Value: func(e domain.RangeEntry) any { return e.RangeRevenue.InexactFloat64() }},
	{Label: "Range Commission", Value: func(e domain.RangeEntry) any { return e.RangeCommission.InexactFloat64() }},
	{Label: "Note", Value: func(e domain.RangeEntry) any {
		if e.HasZijinExtra {
			return ZijinExtraNote
		}
		return ""
	}},
}

var DetailColumns = []Column[domain.StockEntry]{
	{Label: "Stock", Value: func(s domain.StockEntry) any { return s.StockName }},
	{Label: "Revenue", Value: func(s domain.StockEntry) any { return s.Revenue.InexactFloat64() }},
	{Label: "Commission", Value: func(s domain.StockEntry) any { return s.Commission.InexactFloat64() }},
	{Label: "Note", Value: func(s domain.StockEntry) any { return s.SpecialNote }},
}

func AccountRevenue(v domain.AccountRevenueView) Table {
	return Project(AccountRevenueBase, v.Rows, AccountRevenueColumns)
}

func CommissionSummary(v domain.CommissionSummaryView) Table {
	return Project(CommissionSummaryBase, v.Rows, CommissionSummaryColumns)
}

func SpecialRange(v domain.SpecialRangeView) Table {
	return Project(SpecialRangeBase, v.Rows, SpecialRangeColumns)
}

func Detail(d domain.Detail) Table {
	return Project(d.Account+"_detail", d.Stocks, DetailColumns)
}
