package report

import (
	"slices"

	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// FilterAccounts returns a copy of the accounts whose management group
// matches exactly. domain.GroupAll keeps every account.
func FilterAccounts(accounts []domain.Account, group string) []domain.Account {
	if group == domain.GroupAll {
		return slices.Clone(accounts)
	}

	filtered := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.ManagementGroup == group {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// SortAccounts sorts in place, descending by the given field. Accounts with
// equal keys keep their relative order.
func SortAccounts(accounts []domain.Account, field domain.SortField) {
	key := accountKey(field)
	slices.SortStableFunc(accounts, func(a, b domain.Account) int {
		return key(b).Cmp(key(a))
	})
}

func accountKey(field domain.SortField) func(domain.Account) decimal.Decimal {
	switch field {
	case domain.SortByCommission:
		return func(a domain.Account) decimal.Decimal { return a.TotalCommission }
	case domain.SortByLoss:
		return func(a domain.Account) decimal.Decimal { return a.TotalLoss }
	default:
		return func(a domain.Account) decimal.Decimal { return a.TotalRevenue }
	}
}

func sumAccounts(accounts []domain.Account) (revenue, commission decimal.Decimal) {
	for _, a := range accounts {
		revenue = revenue.Add(a.TotalRevenue)
		commission = commission.Add(a.TotalCommission)
	}
	return revenue, commission
}

func BuildAccountRevenueView(accounts []domain.Account, sel domain.AccountSelection) domain.AccountRevenueView {
	rows := FilterAccounts(accounts, sel.Group)
	SortAccounts(rows, sel.SortBy)

	revenue, commission := sumAccounts(rows)
	ranked := make([]domain.RankedAccount, 0, len(rows))
	for i, a := range rows {
		ranked = append(ranked, domain.RankedAccount{Rank: i + 1, Account: a})
	}

	return domain.AccountRevenueView{
		Selection:          sel,
		Rows:               ranked,
		FilteredRevenue:    revenue,
		FilteredCommission: commission,
	}
}

func BuildCommissionSummaryView(accounts []domain.Account, group string) domain.CommissionSummaryView {
	rows := FilterAccounts(accounts, group)
	SortAccounts(rows, domain.SortByCommission)

	revenue, commission := sumAccounts(rows)
	return domain.CommissionSummaryView{
		Group:              group,
		Rows:               rows,
		FilteredRevenue:    revenue,
		FilteredCommission: commission,
	}
}

func BuildSpecialRangeView(entries []domain.RangeEntry) domain.SpecialRangeView {
	rows := slices.Clone(entries)
	slices.SortStableFunc(rows, func(a, b domain.RangeEntry) int {
		return b.RangeCommission.Cmp(a.RangeCommission)
	})

	view := domain.SpecialRangeView{Rows: rows}
	for _, r := range rows {
		view.TotalRevenue = view.TotalRevenue.Add(r.RangeRevenue)
		view.TotalCommission = view.TotalCommission.Add(r.RangeCommission)
	}
	return view
}

func BuildMissingRecordsView(records []domain.MissingRecord) domain.MissingRecordsView {
	return domain.MissingRecordsView{
		Records: slices.Clone(records),
		Empty:   len(records) == 0,
	}
}

// Groups lists the distinct non-empty management groups in first-seen order.
func Groups(accounts []domain.Account) []string {
	seen := make(map[string]struct{})
	var groups []string
	for _, a := range accounts {
		if a.ManagementGroup == "" {
			continue
		}
		if _, ok := seen[a.ManagementGroup]; ok {
			continue
		}
		seen[a.ManagementGroup] = struct{}{}
		groups = append(groups, a.ManagementGroup)
	}
	return groups
}
