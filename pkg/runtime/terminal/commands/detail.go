package commands

import (
	"fmt"

	"github.com/de-tools/ipo-report/pkg/runtime/terminal/export"
	fileexport "github.com/de-tools/ipo-report/pkg/services/export"
	"github.com/de-tools/ipo-report/pkg/services/report"
	"github.com/spf13/cobra"
)

type DetailCmd struct {
	source   string
	account  string
	withFile bool
	out      string
	session  *Session
	reporter *export.Reporter
}

func NewDetailCmd(session *Session, reporter *export.Reporter) *cobra.Command {
	dc := &DetailCmd{session: session, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Show the per-stock breakdown of one account",
		Args:  cobra.NoArgs,
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.source, "source", "accounts", "List to search: accounts or special_range")
	cmd.Flags().StringVar(&dc.account, "account", "", "Account name")
	cmd.Flags().BoolVar(&dc.withFile, "export", false, "Also write the breakdown as a spreadsheet")
	cmd.Flags().StringVar(&dc.out, "out", ".", "Directory for the exported spreadsheet")

	_ = cmd.MarkFlagRequired("account")

	return cmd
}

// run prints nothing when the account is not in the chosen list.
func (dc *DetailCmd) run(cmd *cobra.Command, _ []string) error {
	src, err := report.ParseDetailSource(dc.source)
	if err != nil {
		return err
	}
	svc, err := dc.session.Service(cmd.Context())
	if err != nil {
		return err
	}

	selector := report.NewDetailSelector(svc)
	if !selector.Select(src, dc.account) {
		return nil
	}
	detail, _ := selector.Active()
	if err := dc.reporter.Detail(detail); err != nil {
		return err
	}
	if !dc.withFile {
		return nil
	}

	path, err := writeTable(dc.session, dc.out, fileexport.Detail(detail))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}
