package report

import (
	"slices"

	"github.com/de-tools/ipo-report/pkg/models/domain"
)

// FindDetail resolves the first entry named account in the list chosen by
// source. A miss reports false and no error: stale references are expected.
func FindDetail(r *domain.Report, source domain.DetailSource, account string) (domain.Detail, bool) {
	switch source {
	case domain.SourceAccounts:
		i := slices.IndexFunc(r.Accounts, func(a domain.Account) bool { return a.Account == account })
		if i < 0 {
			return domain.Detail{}, false
		}
		return domain.Detail{Source: source, Account: account, Stocks: slices.Clone(r.Accounts[i].Stocks)}, true
	case domain.SourceSpecialRange:
		i := slices.IndexFunc(r.SpecialRange, func(e domain.RangeEntry) bool { return e.Account == account })
		if i < 0 {
			return domain.Detail{}, false
		}
		return domain.Detail{Source: source, Account: account, Stocks: slices.Clone(r.SpecialRange[i].Stocks)}, true
	default:
		return domain.Detail{}, false
	}
}

// DetailSelector keeps the drill-down that a following detail export works on.
// It is not safe for concurrent use.
type DetailSelector struct {
	svc    Service
	active *domain.Detail
}

func NewDetailSelector(svc Service) *DetailSelector {
	return &DetailSelector{svc: svc}
}

// Select replaces the active detail. A miss clears it and returns false.
func (s *DetailSelector) Select(source domain.DetailSource, account string) bool {
	s.active = nil

	detail, ok := s.svc.Detail(source, account)
	if !ok {
		return false
	}
	s.active = &detail
	return true
}

func (s *DetailSelector) Active() (domain.Detail, bool) {
	if s.active == nil {
		return domain.Detail{}, false
	}
	return *s.active, true
}
