package cmd

import (
	"flag"
	"testing"

	"github.com/openlot/tradepnl"
)

func TestReportFlags_Filter(t *testing.T) {
	var r reportFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	r.SetFlags(fs)
	if err := fs.Parse([]string{"-symbol", "AAPL", "-timeframe", "month"}); err != nil {
		t.Fatal(err)
	}

	f, err := r.filter()
	if err != nil {
		t.Fatal(err)
	}
	if f.Symbol != "AAPL" || f.Timeframe != tradepnl.Month {
		t.Errorf("filter = %+v, want AAPL over a month", f)
	}
}

func TestReportFlags_Defaults(t *testing.T) {
	var r reportFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	r.SetFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}

	f, err := r.filter()
	if err != nil {
		t.Fatal(err)
	}
	if f.Symbol != "" || f.Timeframe != tradepnl.All {
		t.Errorf("filter = %+v, want the admit-all default", f)
	}
}

func TestReportFlags_BadTimeframe(t *testing.T) {
	r := reportFlags{timeframe: "fortnight"}
	if _, err := r.filter(); err == nil {
		t.Error("expected an error for an unknown timeframe")
	}
}
