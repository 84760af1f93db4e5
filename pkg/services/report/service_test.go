package report

import (
	"testing"

	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := NewService(fixtureReport())

	overview := svc.Overview()
	assert.Equal(t, "2025-06-20 10:00:00", overview.GeneratedAt)
	assert.Equal(t, 2, overview.Summary.TotalAccounts)

	assert.Equal(t, []string{"X", "Y"}, svc.Groups())

	commissions := svc.CommissionSummary("Y")
	require.Len(t, commissions.Rows, 1)
	assert.Equal(t, "B", commissions.Rows[0].Account)

	special := svc.SpecialRange()
	require.Len(t, special.Rows, 2)
	assert.Equal(t, "R2", special.Rows[0].Account)

	detail, ok := svc.Detail(domain.SourceAccounts, "A")
	require.True(t, ok)
	assert.Equal(t, "Zijin", detail.Stocks[1].SpecialNote)

	_, ok = svc.Detail(domain.SourceSpecialRange, "A")
	assert.False(t, ok)

	charts := svc.Charts()
	assert.Equal(t, []string{"S1", "S2", "S3"}, charts.GainPie.Labels)
	assert.Equal(t, []string{"S3"}, charts.LossBar.Labels)

	missing := svc.MissingRecords()
	assert.False(t, missing.Empty)
	assert.Len(t, missing.Records, 1)
}
