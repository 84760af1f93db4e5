package terminal

import (
	"io"
	"os"

	"github.com/de-tools/ipo-report/pkg/runtime/terminal/commands"
	"github.com/de-tools/ipo-report/pkg/runtime/terminal/export"
	"github.com/de-tools/ipo-report/pkg/services/config"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	session  *commands.Session
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Loader commands.Loader
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Loader == nil {
		opts.Loader = ProfileLoader{}
	}

	cli := &CLI{
		session:  commands.NewSession(opts.Loader),
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args for the next Execute.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

// Session exposes the per-invocation state, e.g. to pin the export clock.
func (cli *CLI) Session() *commands.Session {
	return cli.session
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "report",
		Short:         "IPO subscription revenue report",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.session.ConfigPath, "config", "c", config.DefaultProfilePath(),
		"Path to the profile file")
	cmd.PersistentFlags().StringVarP(&cli.session.Profile, "profile", "p", config.DefaultProfile,
		"Profile naming the report source")

	cmd.AddCommand(commands.NewSummaryCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewAccountsCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewCommissionsCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewSpecialRangeCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewDetailCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewMissingCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewChartsCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.session))

	return cmd
}
