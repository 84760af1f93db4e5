package adapters

import (
	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/de-tools/ipo-report/pkg/models/store"
)

func MapStoreReportToDomain(doc *store.ReportDocument) *domain.Report {
	if doc == nil {
		return nil
	}

	report := &domain.Report{
		GeneratedAt: doc.GeneratedAt,
		Summary: domain.Summary{
			TotalRevenue:    doc.Summary.TotalRevenue,
			TotalCommission: doc.Summary.TotalCommission,
			TotalLoss:       doc.Summary.TotalLoss,
			TotalStocks:     doc.Summary.TotalStocks,
			TotalAccounts:   doc.Summary.TotalAccounts,
		},
		Stocks:         make([]domain.Stock, 0, len(doc.Stocks)),
		Accounts:       make([]domain.Account, 0, len(doc.Accounts)),
		SpecialRange:   make([]domain.RangeEntry, 0, len(doc.SpecialRange)),
		MissingRecords: make([]domain.MissingRecord, 0, len(doc.MissingRecords)),
	}

	for _, s := range doc.Stocks {
		report.Stocks = append(report.Stocks, domain.Stock{Name: s.Name, Revenue: s.Revenue})
	}
	for _, a := range doc.Accounts {
		report.Accounts = append(report.Accounts, MapStoreAccountToDomain(a))
	}
	for _, r := range doc.SpecialRange {
		report.SpecialRange = append(report.SpecialRange, MapStoreRangeToDomain(r))
	}
	for _, m := range doc.MissingRecords {
		report.MissingRecords = append(report.MissingRecords, domain.MissingRecord{
			Account: m.Account,
			Stock:   m.Stock,
			Row:     m.Row,
			Col:     m.Col,
		})
	}

	return report
}

func MapStoreAccountToDomain(a store.AccountRecord) domain.Account {
	return domain.Account{
		Account:         a.Account,
		ManagementGroup: deref(a.ManagementGroup),
		RateGroup:       a.RateGroup,
		Rate:            a.Rate,
		TotalRevenue:    a.TotalRevenue,
		TotalCommission: a.TotalCommission,
		TotalLoss:       a.TotalLoss,
		Stocks:          mapStoreStockEntries(a.Stocks),
	}
}

func MapStoreRangeToDomain(r store.RangeRecord) domain.RangeEntry {
	return domain.RangeEntry{
		Account:         r.Account,
		ManagementGroup: deref(r.ManagementGroup),
		RateGroup:       r.RateGroup,
		RangeRevenue:    r.RangeRevenue,
		RangeCommission: r.RangeCommission,
		HasZijinExtra:   r.HasZijinExtra,
		Stocks:          mapStoreStockEntries(r.Stocks),
	}
}

func mapStoreStockEntries(records []store.AccountStockRecord) []domain.StockEntry {
	entries := make([]domain.StockEntry, 0, len(records))
	for _, s := range records {
		entries = append(entries, domain.StockEntry{
			StockName:   s.StockName,
			Revenue:     s.Revenue,
			Commission:  s.Commission,
			IsSpecial:   s.IsSpecial,
			SpecialNote: deref(s.SpecialNote),
		})
	}
	return entries
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
