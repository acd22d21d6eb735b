package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openlot/tradepnl/renderer"
)

type optionsCmd struct {
	report reportFlags
}

func (*optionsCmd) Name() string     { return "options" }
func (*optionsCmd) Synopsis() string { return "display options performance per underlying and class" }
func (*optionsCmd) Usage() string {
	return `plr options [-symbol <text>] [-timeframe <window>]

  Displays realized options P/L grouped by underlying, and the call/put split.
`
}

func (c *optionsCmd) SetFlags(f *flag.FlagSet) { c.report.SetFlags(f) }

func (c *optionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.OptionsMarkdown(summary))
	return subcommands.ExitSuccess
}
