package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openlot/tradepnl/renderer"
)

type symbolsCmd struct {
	report reportFlags
}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "display the most traded symbols" }
func (*symbolsCmd) Usage() string {
	return `plr symbols [-symbol <text>] [-timeframe <window>]

  Displays the most traded symbols by closed-trade count, with their P/L.
`
}

func (c *symbolsCmd) SetFlags(f *flag.FlagSet) { c.report.SetFlags(f) }

func (c *symbolsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SymbolsMarkdown(summary))
	return subcommands.ExitSuccess
}
