package report

import (
	"slices"

	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	PieTopN       = 10
	BarTopN       = 15
	MaxLabelRunes = 15

	OtherLabel = "Other"

	gainColor = "#27ae60"
	lossColor = "#e74c3c"
)

var (
	gainPalette = []string{
		"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
		"#FF9F40", "#FF6384", "#C9CBCF", "#4BC0C0", "#FF6384", "#36A2EB",
	}
	lossPalette = []string{
		"#e74c3c", "#c0392b", "#e67e22", "#d35400", "#f39c12",
		"#f1c40f", "#e8b4b8", "#d98880", "#cd6155", "#c0392b", "#922b21",
	}

	hundred = decimal.NewFromInt(100)
)

// ProjectCharts builds the stock charts. It ignores table selectors and is
// meant to run once per loaded report.
func ProjectCharts(stocks []domain.Stock) domain.ChartSet {
	gains := slices.Clone(stocks)
	slices.SortStableFunc(gains, func(a, b domain.Stock) int {
		return b.Revenue.Cmp(a.Revenue)
	})

	set := domain.ChartSet{
		GainPie: pieSeries(gains, func(s domain.Stock) decimal.Decimal { return s.Revenue }, gainPalette),
		GainBar: barSeries(gains, func(s domain.Stock) decimal.Decimal { return s.Revenue }),
	}
	for _, v := range set.GainBar.Values {
		if v.IsNegative() {
			set.GainBar.Colors = append(set.GainBar.Colors, lossColor)
		} else {
			set.GainBar.Colors = append(set.GainBar.Colors, gainColor)
		}
	}

	var losses []domain.Stock
	for _, s := range stocks {
		if s.Revenue.IsNegative() {
			losses = append(losses, s)
		}
	}
	if len(losses) == 0 {
		set.LossEmpty = true
		return set
	}

	// worst first
	slices.SortStableFunc(losses, func(a, b domain.Stock) int {
		return a.Revenue.Cmp(b.Revenue)
	})
	magnitude := func(s domain.Stock) decimal.Decimal { return s.Revenue.Abs() }

	set.LossPie = pieSeries(losses, magnitude, lossPalette)
	set.LossBar = barSeries(losses, magnitude)
	for range set.LossBar.Values {
		set.LossBar.Colors = append(set.LossBar.Colors, lossColor)
	}
	return set
}

// pieSeries keeps the first PieTopN stocks and folds the rest into a single
// OtherLabel slice when their sum is strictly positive.
func pieSeries(sorted []domain.Stock, value func(domain.Stock) decimal.Decimal, palette []string) domain.ChartSeries {
	var series domain.ChartSeries

	top := sorted[:min(PieTopN, len(sorted))]
	for _, s := range top {
		series.Labels = append(series.Labels, s.Name)
		series.Values = append(series.Values, value(s))
	}

	var rest decimal.Decimal
	for _, s := range sorted[len(top):] {
		rest = rest.Add(value(s))
	}
	if rest.IsPositive() {
		series.Labels = append(series.Labels, OtherLabel)
		series.Values = append(series.Values, rest)
	}

	series.Percentages = Percentages(series.Values)
	for i := range series.Values {
		series.Colors = append(series.Colors, palette[i%len(palette)])
	}
	return series
}

func barSeries(sorted []domain.Stock, value func(domain.Stock) decimal.Decimal) domain.ChartSeries {
	var series domain.ChartSeries
	for _, s := range sorted[:min(BarTopN, len(sorted))] {
		series.Labels = append(series.Labels, TruncateLabel(s.Name))
		series.Values = append(series.Values, value(s))
	}
	return series
}

// Percentages expresses each value as a share of the sum of all values, with
// one decimal place.
func Percentages(values []decimal.Decimal) []string {
	total := decimal.Sum(decimal.Zero, values...)

	out := make([]string, 0, len(values))
	for _, v := range values {
		if total.IsZero() {
			out = append(out, decimal.Zero.StringFixed(1))
			continue
		}
		out = append(out, v.Div(total).Mul(hundred).StringFixed(1))
	}
	return out
}

func TruncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= MaxLabelRunes {
		return label
	}
	return string(runes[:MaxLabelRunes]) + "..."
}
