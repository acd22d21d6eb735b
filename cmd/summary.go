package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openlot/tradepnl"
	"github.com/openlot/tradepnl/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	report reportFlags
	json   bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the realized P/L summary" }
func (*summaryCmd) Usage() string {
	return `plr summary [-symbol <text>] [-timeframe <window>] [-json]

  Displays totals, win rate and the most traded symbols over the closed trades.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.report.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Emit the full summary as JSON instead of markdown")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.json {
		if err := tradepnl.EncodeSummary(os.Stdout, summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
