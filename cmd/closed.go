package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openlot/tradepnl/renderer"
)

type closedCmd struct {
	report reportFlags
}

func (*closedCmd) Name() string     { return "closed" }
func (*closedCmd) Synopsis() string { return "display the closed-trade ledger" }
func (*closedCmd) Usage() string {
	return `plr closed [-symbol <text>] [-timeframe <window>]

  Displays every realized match, one row per closed trade, with warnings for
  sells that had no matching buy.
`
}

func (c *closedCmd) SetFlags(f *flag.FlagSet) { c.report.SetFlags(f) }

func (c *closedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.report.filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	summary, err := loadSummary(filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ClosedMarkdown(summary))
	return subcommands.ExitSuccess
}
