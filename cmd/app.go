// Package cmd implements the CLI application to report on trade performance.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/openlot/tradepnl"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&symbolsCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&optionsCmd{}, "reports")
	c.Register(&closedCmd{}, "reports")

	c.Register(&importCmd{}, "trades")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tradesFile = flag.String("trades-file", "trades.jsonl", "Path to the trade records file (JSONL format)")

// TradesFile returns the configured trade records path.
func TradesFile() string { return *tradesFile }

// DecodeRecords reads the trade records from the app trades file. A missing
// file is an empty history.
func DecodeRecords() ([]tradepnl.RawTrade, error) {
	f, err := os.Open(*tradesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("warning, trades file does not exist, reporting on an empty history instead")
			return nil, nil
		}
		return nil, fmt.Errorf("could not open trades file %q: %w", *tradesFile, err)
	}
	defer f.Close()

	records, err := tradepnl.DecodeRawTrades(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode trades file %q: %w", *tradesFile, err)
	}
	return records, nil
}

// EncodeRecords appends records to the app trades file, creating it if needed.
func EncodeRecords(records []tradepnl.RawTrade) error {
	f, err := os.OpenFile(*tradesFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open trades file %q: %w", *tradesFile, err)
	}
	defer f.Close()

	if err := tradepnl.EncodeRawTrades(f, records); err != nil {
		return fmt.Errorf("could not write trades file %q: %w", *tradesFile, err)
	}
	return nil
}

// loadSummary runs the whole pipeline for the given filter and logs every
// unmatched sell to stderr.
func loadSummary(filter tradepnl.Filter) (*tradepnl.Summary, error) {
	records, err := DecodeRecords()
	if err != nil {
		return nil, err
	}
	s := tradepnl.NewSummary(records, filter)
	for _, u := range s.Unmatched {
		log.Printf("warning: sell of %s %s on %s had no matching buy and was dropped", u.Quantity, u.Key, u.Date)
	}
	return s, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
