package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openlot/tradepnl"
)

// importCmd converts a nested broker JSON export into trade records.
type importCmd struct {
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import trade records from a broker JSON export" }
func (*importCmd) Usage() string {
	return `plr import [-path <jsonpath>] <export.json>

  Reads a nested broker JSON export, extracts the trade rows found at the
  records jsonpath and appends them to the trades file.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", tradepnl.DefaultRecordsPath, "jsonpath locating the trade rows in the export")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one export file")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	in, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	records, err := tradepnl.ImportJSON(in, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	if err := EncodeRecords(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %d trade records to %s\n", len(records), TradesFile())
	return subcommands.ExitSuccess
}
