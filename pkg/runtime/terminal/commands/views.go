package commands

import (
	"github.com/de-tools/ipo-report/pkg/runtime/terminal/export"
	"github.com/de-tools/ipo-report/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewSummaryCmd(session *Session, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show report totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := session.Service(cmd.Context())
			if err != nil {
				return err
			}
			return reporter.Summary(svc.Overview())
		},
	}
}

type AccountsCmd struct {
	group    string
	sortBy   string
	session  *Session
	reporter *export.Reporter
}

func NewAccountsCmd(session *Session, reporter *export.Reporter) *cobra.Command {
	ac := &AccountsCmd{session: session, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Rank accounts by revenue, commission or loss",
		Args:  cobra.NoArgs,
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.group, "group", "all", "Management group to show")
	cmd.Flags().StringVar(&ac.sortBy, "sort", "revenue", "Sort field: revenue, commission or loss")

	return cmd
}

func (ac *AccountsCmd) run(cmd *cobra.Command, _ []string) error {
	sel, err := report.ParseAccountSelection(ac.group, ac.sortBy)
	if err != nil {
		return err
	}
	svc, err := ac.session.Service(cmd.Context())
	if err != nil {
		return err
	}
	return ac.reporter.AccountRevenue(svc.AccountRevenue(sel))
}

func NewCommissionsCmd(session *Session, reporter *export.Reporter) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "commissions",
		Short: "Show commission per account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := session.Service(cmd.Context())
			if err != nil {
				return err
			}
			return reporter.CommissionSummary(svc.CommissionSummary(report.ParseGroup(group)))
		},
	}
	cmd.Flags().StringVar(&group, "group", "all", "Management group to show")
	return cmd
}

func NewSpecialRangeCmd(session *Session, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "special-range",
		Short: "Show commission earned on the special stock range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := session.Service(cmd.Context())
			if err != nil {
				return err
			}
			return reporter.SpecialRange(svc.SpecialRange())
		},
	}
}

func NewMissingCmd(session *Session, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "missing",
		Short: "List allotments without a sell price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := session.Service(cmd.Context())
			if err != nil {
				return err
			}
			return reporter.Missing(svc.MissingRecords())
		},
	}
}

func NewChartsCmd(session *Session, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "charts",
		Short: "Print the chart series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := session.Service(cmd.Context())
			if err != nil {
				return err
			}
			return reporter.Charts(svc.Charts())
		},
	}
}
