package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/ipo-report/pkg/models/domain"
)

// ErrInvalidSelection is returned for selector values the views do not know.
var ErrInvalidSelection = errors.New("invalid selection")

// ParseGroup maps an empty selector to domain.GroupAll.
func ParseGroup(group string) string {
	group = strings.TrimSpace(group)
	if group == "" {
		return domain.GroupAll
	}
	return group
}

// ParseSortField defaults to sorting by revenue.
func ParseSortField(field string) (domain.SortField, error) {
	switch domain.SortField(strings.ToLower(strings.TrimSpace(field))) {
	case "", domain.SortByRevenue:
		return domain.SortByRevenue, nil
	case domain.SortByCommission:
		return domain.SortByCommission, nil
	case domain.SortByLoss:
		return domain.SortByLoss, nil
	default:
		return "", fmt.Errorf("%w: unknown sort field %q", ErrInvalidSelection, field)
	}
}

func ParseDetailSource(source string) (domain.DetailSource, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "accounts", "account":
		return domain.SourceAccounts, nil
	case "special_range", "special-range":
		return domain.SourceSpecialRange, nil
	default:
		return "", fmt.Errorf("%w: unknown detail source %q", ErrInvalidSelection, source)
	}
}

func ParseAccountSelection(group, sortBy string) (domain.AccountSelection, error) {
	field, err := ParseSortField(sortBy)
	if err != nil {
		return domain.AccountSelection{}, err
	}
	return domain.AccountSelection{Group: ParseGroup(group), SortBy: field}, nil
}
