package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openlot/tradepnl/renderer"
)

type monthlyCmd struct {
	report reportFlags
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display realized P/L per close month" }
func (*monthlyCmd) Usage() string {
	return `plr monthly [-symbol <text>] [-timeframe <window>]

  Displays realized P/L and trade count per month, oldest first.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) { c.report.SetFlags(f) }

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.MonthlyMarkdown(summary))
	return subcommands.ExitSuccess
}
