package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTable_Filename(t *testing.T) {
	now := time.Date(2025, 6, 20, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		base     string
		expected string
	}{
		{base: AccountRevenueBase, expected: "account_revenue_2025-06-20.xlsx"},
		{base: "张三_detail", expected: "张三_detail_2025-06-20.xlsx"},
		{base: "a/b:c_detail", expected: "a_b_c_detail_2025-06-20.xlsx"},
	}

	for _, tc := range tests {
		t.Run(tc.base, func(t *testing.T) {
			assert.Equal(t, tc.expected, Table{BaseName: tc.base}.Filename(now))
		})
	}
}

func TestProject(t *testing.T) {
	type row struct {
		name  string
		value int
	}
	table := Project("rows", []row{{"x", 1}, {"y", 2}}, []Column[row]{
		{Label: "Name", Value: func(r row) any { return r.name }},
		{Label: "Value", Value: func(r row) any { return r.value }},
	})

	assert.Equal(t, "rows", table.BaseName)
	assert.Equal(t, []string{"Name", "Value"}, table.Columns)
	require.Len(t, table.Records, 2)
	assert.Equal(t, Record{{Label: "Name", Value: "y"}, {Label: "Value", Value: 2}}, table.Records[1])
	assert.Equal(t, []any{"x", 1}, table.Records[0].Values())
}

func TestAccountRevenue_KeepsViewOrder(t *testing.T) {
	view := domain.AccountRevenueView{
		Rows: []domain.RankedAccount{
			{Rank: 1, Account: domain.Account{Account: "A", RateGroup: "20%", TotalRevenue: d("100"), TotalCommission: d("10"), TotalLoss: d("0")}},
			{Rank: 2, Account: domain.Account{Account: "B", RateGroup: "10%", TotalRevenue: d("-50"), TotalCommission: d("0"), TotalLoss: d("50")}},
		},
	}

	table := AccountRevenue(view)

	assert.Equal(t, []string{"Rank", "Account", "Rate Group", "Total Revenue", "Total Commission", "Total Loss"}, table.Columns)
	require.Len(t, table.Records, 2)
	assert.Equal(t, []any{1, "A", "20%", 100.0, 10.0, 0.0}, table.Records[0].Values())
	assert.Equal(t, []any{2, "B", "10%", -50.0, 0.0, 50.0}, table.Records[1].Values())
}

func TestSpecialRange_Note(t *testing.T) {
	table := SpecialRange(domain.SpecialRangeView{Rows: []domain.RangeEntry{
		{Account: "R1", RateGroup: "30%", RangeRevenue: d("1"), RangeCommission: d("0.3"), HasZijinExtra: true},
		{Account: "R2", RateGroup: "50%", RangeRevenue: d("2"), RangeCommission: d("1")},
	}})

	assert.Equal(t, SpecialRangeBase, table.BaseName)
	assert.Equal(t, []any{"R1", "30%", 1.0, 0.3, ZijinExtraNote}, table.Records[0].Values())
	assert.Equal(t, "", table.Records[1][4].Value)
}

func TestDetail(t *testing.T) {
	table := Detail(domain.Detail{
		Source:  domain.SourceAccounts,
		Account: "A",
		Stocks:  []domain.StockEntry{{StockName: "S1", Revenue: d("60"), Commission: d("6"), SpecialNote: "note"}},
	})

	assert.Equal(t, "A_detail", table.BaseName)
	assert.Equal(t, []string{"Stock", "Revenue", "Commission", "Note"}, table.Columns)
	assert.Equal(t, []any{"S1", 60.0, 6.0, "note"}, table.Records[0].Values())
}

func TestCommissionSummary_Empty(t *testing.T) {
	table := CommissionSummary(domain.CommissionSummaryView{Group: "none"})

	assert.Len(t, table.Columns, 5)
	assert.Empty(t, table.Records)
}

func TestXLSXSerializer_Write(t *testing.T) {
	table := Table{
		BaseName: "test",
		Columns:  []string{"Account", "Revenue"},
		Records: []Record{
			{{Label: "Account", Value: "A"}, {Label: "Revenue", Value: 100.5}},
			{{Label: "Account", Value: "B"}, {Label: "Revenue", Value: -50.0}},
		},
	}

	var buf bytes.Buffer
	s := NewXLSXSerializer()
	require.NoError(t, s.Write(&buf, table))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", s.ContentType())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Account", "Revenue"},
		{"A", "100.5"},
		{"B", "-50"},
	}, rows)
}

func TestXLSXSerializer_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXSerializer().Write(&buf, CommissionSummary(domain.CommissionSummaryView{})))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Account", "Rate Group", "Total Revenue", "Total Commission", "Total Loss"}, rows[0])
}
