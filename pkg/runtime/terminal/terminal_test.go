package terminal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/de-tools/ipo-report/pkg/services/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context, configPath, profile string) (report.Service, error) {
	args := m.Called(ctx, configPath, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(report.Service), args.Error(1)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testService() report.Service {
	return report.NewService(&domain.Report{
		GeneratedAt: "2025-06-20 10:00:00",
		Summary:     domain.Summary{TotalRevenue: d("1234.5"), TotalCommission: d("10"), TotalLoss: d("50"), TotalStocks: 2, TotalAccounts: 2},
		Stocks:      []domain.Stock{{Name: "S1", Revenue: d("100")}, {Name: "S2", Revenue: d("-50")}},
		Accounts: []domain.Account{
			{
				Account: "A", ManagementGroup: "X", RateGroup: "20%",
				TotalRevenue: d("100"), TotalCommission: d("10"), TotalLoss: d("0"),
				Stocks: []domain.StockEntry{{StockName: "S1", Revenue: d("100"), Commission: d("10"), SpecialNote: "note"}},
			},
			{Account: "B", ManagementGroup: "Y", RateGroup: "10%", TotalRevenue: d("-50"), TotalCommission: d("0"), TotalLoss: d("50")},
		},
		SpecialRange: []domain.RangeEntry{
			{Account: "R1", RateGroup: "30%", RangeRevenue: d("10"), RangeCommission: d("3"), HasZijinExtra: true},
		},
	})
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	loader := new(mockLoader)
	loader.On("Load", mock.Anything, "/tmp/cfg", "default").Return(testService(), nil)

	var out bytes.Buffer
	cli := NewCLI(Options{Loader: loader, Output: &out})
	cli.Session().Now = func() time.Time { return time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC) }
	cli.SetArgs(append([]string{"--config", "/tmp/cfg"}, args...))

	err := cli.Execute()
	return out.String(), err
}

func TestCLI_Summary(t *testing.T) {
	out, err := runCLI(t, "summary")
	require.NoError(t, err)

	assert.Contains(t, out, "Data generated at: 2025-06-20 10:00:00")
	assert.Contains(t, out, "| Total revenue    | ¥1,234.50 |")
	assert.Contains(t, out, "| Accounts         | 2         |")
}

func TestCLI_Accounts(t *testing.T) {
	out, err := runCLI(t, "accounts", "--sort", "loss")
	require.NoError(t, err)

	assert.Contains(t, out, "Account revenue (group: all, sort: loss)")
	assert.Less(t, bytes.Index([]byte(out), []byte("| B ")), bytes.Index([]byte(out), []byte("| A ")))
	assert.Contains(t, out, "Filtered revenue: ¥50.00")
	assert.Contains(t, out, "Filtered commission: ¥10.00")
}

func TestCLI_AccountsInvalidSort(t *testing.T) {
	_, err := runCLI(t, "accounts", "--sort", "profit")
	assert.ErrorIs(t, err, report.ErrInvalidSelection)
}

func TestCLI_Commissions(t *testing.T) {
	out, err := runCLI(t, "commissions", "--group", "Y")
	require.NoError(t, err)

	assert.Contains(t, out, "Commission summary (group: Y)")
	assert.Contains(t, out, "| B ")
	assert.NotContains(t, out, "| A ")
}

func TestCLI_SpecialRange(t *testing.T) {
	out, err := runCLI(t, "special-range")
	require.NoError(t, err)

	assert.Contains(t, out, "Includes Zijin International")
	assert.Contains(t, out, "Total range commission: ¥3.00")
}

func TestCLI_Detail(t *testing.T) {
	out, err := runCLI(t, "detail", "--account", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "A - commission detail (accounts)")
	assert.Contains(t, out, "| S1    | ¥100.00 | ¥10.00     | note |")

	out, err = runCLI(t, "detail", "--account", "nobody")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCLI_DetailExport(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "detail", "--account", "A", "--export", "--out", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "A_detail_2025-06-20.xlsx")
	assert.Contains(t, out, "Exported "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Stock", "Revenue", "Commission", "Note"}, {"S1", "100", "10", "note"}}, rows)
}

func TestCLI_Export(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "export", "accounts", "--sort", "commission", "--out", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "account_revenue_2025-06-20.xlsx")
	assert.Contains(t, out, "Exported "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[1][1])
	assert.Equal(t, "B", rows[2][1])

	_, err = runCLI(t, "export", "stocks", "--out", dir)
	assert.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "special_range_2025-06-20.xlsx"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCLI_MissingAndCharts(t *testing.T) {
	out, err := runCLI(t, "missing")
	require.NoError(t, err)
	assert.Equal(t, "No missing records, every allotment has a sell price.\n", out)

	out, err = runCLI(t, "charts")
	require.NoError(t, err)
	assert.Contains(t, out, "Top stocks by revenue")
	assert.Contains(t, out, "Top stocks by loss")
	assert.Contains(t, out, "| S2    | ¥50.00 | 100.0% |")
}

func TestCLI_LoadFailure(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything, mock.Anything, "cloud").Return(nil, errors.New("failed to load report from s3://b/k: denied"))

	var out bytes.Buffer
	cli := NewCLI(Options{Loader: loader, Output: &out})
	cli.SetArgs([]string{"--profile", "cloud", "summary"})

	err := cli.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load report")
	assert.Empty(t, out.String())
}

func TestProfileLoader(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(reportPath, []byte(`{"generated_at": "2025-06-20", "accounts": [{"account": "A", "total_revenue": 5}]}`), 0o600))
	cfgPath := filepath.Join(dir, ".reportcfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[local]\nsource = file\npath = "+reportPath+"\n"), 0o600))

	svc, err := ProfileLoader{}.Load(context.Background(), cfgPath, "local")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-20", svc.Overview().GeneratedAt)

	_, err = ProfileLoader{}.Load(context.Background(), cfgPath, "absent")
	assert.Error(t, err)
}
