package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fileexport "github.com/de-tools/ipo-report/pkg/services/export"
	"github.com/de-tools/ipo-report/pkg/services/report"
	"github.com/spf13/cobra"
)

var exportViews = []string{"accounts", "commissions", "special-range"}

type ExportCmd struct {
	group   string
	sortBy  string
	out     string
	session *Session
}

func NewExportCmd(session *Session) *cobra.Command {
	ec := &ExportCmd{session: session}
	cmd := &cobra.Command{
		Use:       "export <view>",
		Short:     "Write a view as a spreadsheet",
		Long:      "Write a view as a spreadsheet. Views: " + strings.Join(exportViews, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: exportViews,
		RunE:      ec.run,
	}

	cmd.Flags().StringVar(&ec.group, "group", "all", "Management group to export")
	cmd.Flags().StringVar(&ec.sortBy, "sort", "revenue", "Sort field for the accounts view")
	cmd.Flags().StringVar(&ec.out, "out", ".", "Output directory")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	svc, err := ec.session.Service(cmd.Context())
	if err != nil {
		return err
	}

	var table fileexport.Table
	switch args[0] {
	case "accounts":
		sel, err := report.ParseAccountSelection(ec.group, ec.sortBy)
		if err != nil {
			return err
		}
		table = fileexport.AccountRevenue(svc.AccountRevenue(sel))
	case "commissions":
		table = fileexport.CommissionSummary(svc.CommissionSummary(report.ParseGroup(ec.group)))
	case "special-range":
		table = fileexport.SpecialRange(svc.SpecialRange())
	default:
		return fmt.Errorf("unknown view %q, expected one of: %s", args[0], strings.Join(exportViews, ", "))
	}

	path, err := writeTable(ec.session, ec.out, table)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}

// writeTable serializes t into dir and returns the written path. A file
// exported earlier on the same day is overwritten.
func writeTable(session *Session, dir string, t fileexport.Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, t.Filename(session.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := session.Serializer.Write(f, t); err != nil {
		return "", fmt.Errorf("failed to export %s: %w", path, err)
	}
	return path, nil
}
