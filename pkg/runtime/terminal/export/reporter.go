package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/ipo-report/pkg/format"
	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	NoLossMessage    = "No stock made a loss!"
	NoMissingMessage = "No missing records, every allotment has a sell price."
)

type TableConfig struct {
	MinWidth int
	MaxWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MinWidth: 4,
		MaxWidth: 40,
	}
}

// Table is one block of terminal output. Widths is filled in by the reporter.
type Table struct {
	Title   string
	Notes   []string
	Headers []string
	Rows    [][]string
	Footer  []string
	Widths  []int
}

const tableTemplate = `
{{.Title}}
{{range .Notes}}{{.}}
{{end}}{{separator .Widths}}
{{formatRow .Widths .Headers}}
{{separator .Widths}}
{{range .Rows}}{{formatRow $.Widths .}}
{{end}}{{separator .Widths}}
{{range .Footer}}{{.}}
{{end}}`

type Reporter struct {
	writer io.Writer
	config TableConfig
	tmpl   *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	funcMap := template.FuncMap{
		"formatRow": func(widths []int, cells []string) string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				cell := ""
				if i < len(cells) {
					cell = clip(cells[i], w)
				}
				parts[i] = fmt.Sprintf("%-*s", w, cell)
			}
			return "| " + strings.Join(parts, " | ") + " |"
		},
		"separator": func(widths []int) string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				parts[i] = strings.Repeat("-", w+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
		tmpl:   template.Must(template.New("table").Funcs(funcMap).Parse(tableTemplate)),
	}
}

func (c *Reporter) Summary(o domain.Overview) error {
	s := o.Summary
	return c.render(Table{
		Title:   "IPO subscription revenue report",
		Notes:   []string{"Data generated at: " + o.GeneratedAt},
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total revenue", money(s.TotalRevenue)},
			{"Total commission", money(s.TotalCommission)},
			{"Total loss", money(s.TotalLoss)},
			{"Stocks", strconv.Itoa(s.TotalStocks)},
			{"Accounts", strconv.Itoa(s.TotalAccounts)},
		},
	})
}

func (c *Reporter) AccountRevenue(v domain.AccountRevenueView) error {
	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		a := r.Account
		rows = append(rows, []string{
			strconv.Itoa(r.Rank), a.Account, a.RateGroup,
			money(a.TotalRevenue), money(a.TotalCommission), money(a.TotalLoss),
		})
	}
	return c.render(Table{
		Title:   fmt.Sprintf("=== Account revenue (group: %s, sort: %s) ===", v.Selection.Group, v.Selection.SortBy),
		Headers: []string{"#", "Account", "Rate", "Revenue", "Commission", "Loss"},
		Rows:    rows,
		Footer: []string{
			"Filtered revenue: " + money(v.FilteredRevenue),
			"Filtered commission: " + money(v.FilteredCommission),
		},
	})
}

func (c *Reporter) CommissionSummary(v domain.CommissionSummaryView) error {
	rows := make([][]string, 0, len(v.Rows))
	for _, a := range v.Rows {
		rows = append(rows, []string{
			a.Account, a.RateGroup,
			money(a.TotalRevenue), money(a.TotalCommission), money(a.TotalLoss),
		})
	}
	return c.render(Table{
		Title:   fmt.Sprintf("=== Commission summary (group: %s) ===", v.Group),
		Headers: []string{"Account", "Rate", "Revenue", "Commission", "Loss"},
		Rows:    rows,
		Footer: []string{
			"Filtered revenue: " + money(v.FilteredRevenue),
			"Filtered commission: " + money(v.FilteredCommission),
		},
	})
}

func (c *Reporter) SpecialRange(v domain.SpecialRangeView) error {
	rows := make([][]string, 0, len(v.Rows))
	for _, e := range v.Rows {
		note := "-"
		if e.HasZijinExtra {
			note = "Includes Zijin International"
		}
		rows = append(rows, []string{
			e.Account, e.RateGroup, money(e.RangeRevenue), money(e.RangeCommission), note,
		})
	}
	return c.render(Table{
		Title:   "=== Special range commission ===",
		Headers: []string{"Account", "Rate", "Range revenue", "Range commission", "Note"},
		Rows:    rows,
		Footer: []string{
			"Total range revenue: " + money(v.TotalRevenue),
			"Total range commission: " + money(v.TotalCommission),
		},
	})
}

func (c *Reporter) Detail(d domain.Detail) error {
	rows := make([][]string, 0, len(d.Stocks))
	for _, s := range d.Stocks {
		note := s.SpecialNote
		if note == "" {
			note = "-"
		}
		rows = append(rows, []string{s.StockName, money(s.Revenue), money(s.Commission), note})
	}
	return c.render(Table{
		Title:   fmt.Sprintf("=== %s - commission detail (%s) ===", d.Account, d.Source),
		Headers: []string{"Stock", "Revenue", "Commission", "Note"},
		Rows:    rows,
	})
}

func (c *Reporter) Missing(v domain.MissingRecordsView) error {
	if v.Empty {
		_, err := fmt.Fprintln(c.writer, NoMissingMessage)
		return err
	}
	rows := make([][]string, 0, len(v.Records))
	for _, m := range v.Records {
		rows = append(rows, []string{m.Account, m.Stock, strconv.Itoa(m.Row), m.Col})
	}
	return c.render(Table{
		Title:   "=== Missing sell prices ===",
		Headers: []string{"Account", "Stock", "Row", "Column"},
		Rows:    rows,
	})
}

func (c *Reporter) Charts(cs domain.ChartSet) error {
	if err := c.render(seriesTable("=== Top stocks by revenue ===", cs.GainPie, true)); err != nil {
		return err
	}
	if err := c.render(seriesTable("=== Revenue bar ===", cs.GainBar, false)); err != nil {
		return err
	}
	if cs.LossEmpty {
		_, err := fmt.Fprintln(c.writer, "\n"+NoLossMessage)
		return err
	}
	if err := c.render(seriesTable("=== Top stocks by loss ===", cs.LossPie, true)); err != nil {
		return err
	}
	return c.render(seriesTable("=== Loss bar ===", cs.LossBar, false))
}

func seriesTable(title string, s domain.ChartSeries, withShare bool) Table {
	t := Table{Title: title, Headers: []string{"Stock", "Value"}}
	if withShare {
		t.Headers = append(t.Headers, "Share")
	}
	for i, label := range s.Labels {
		row := []string{label, money(s.Values[i])}
		if withShare && i < len(s.Percentages) {
			row = append(row, s.Percentages[i]+"%")
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (c *Reporter) render(t Table) error {
	t.Widths = c.widths(t)
	if err := c.tmpl.Execute(c.writer, t); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func (c *Reporter) widths(t Table) []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = max(c.config.MinWidth, utf8.RuneCountInString(h))
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], c.config.MaxWidth)
	}
	return widths
}

func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func money(d decimal.Decimal) string {
	return "¥" + format.Money(d)
}
