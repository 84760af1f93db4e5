package report

import (
	"github.com/de-tools/ipo-report/pkg/models/domain"
)

// Service answers every view of one loaded report. Implementations never
// modify the report, so a Service may be shared between goroutines.
type Service interface {
	Overview() domain.Overview
	Groups() []string
	AccountRevenue(sel domain.AccountSelection) domain.AccountRevenueView
	CommissionSummary(group string) domain.CommissionSummaryView
	SpecialRange() domain.SpecialRangeView
	Detail(source domain.DetailSource, account string) (domain.Detail, bool)
	Charts() domain.ChartSet
	MissingRecords() domain.MissingRecordsView
}

type reportService struct {
	report *domain.Report
	charts domain.ChartSet
}

// NewService projects the charts once and serves views over r.
func NewService(r *domain.Report) Service {
	return &reportService{
		report: r,
		charts: ProjectCharts(r.Stocks),
	}
}

func (s *reportService) Overview() domain.Overview {
	return domain.Overview{GeneratedAt: s.report.GeneratedAt, Summary: s.report.Summary}
}

func (s *reportService) Groups() []string {
	return Groups(s.report.Accounts)
}

func (s *reportService) AccountRevenue(sel domain.AccountSelection) domain.AccountRevenueView {
	return BuildAccountRevenueView(s.report.Accounts, sel)
}

func (s *reportService) CommissionSummary(group string) domain.CommissionSummaryView {
	return BuildCommissionSummaryView(s.report.Accounts, group)
}

func (s *reportService) SpecialRange() domain.SpecialRangeView {
	return BuildSpecialRangeView(s.report.SpecialRange)
}

func (s *reportService) Detail(source domain.DetailSource, account string) (domain.Detail, bool) {
	return FindDetail(s.report, source, account)
}

func (s *reportService) Charts() domain.ChartSet {
	return s.charts
}

func (s *reportService) MissingRecords() domain.MissingRecordsView {
	return BuildMissingRecordsView(s.report.MissingRecords)
}
