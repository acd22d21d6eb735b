package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/openlot/tradepnl"
	"github.com/openlot/tradepnl/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the realized performance of his past trades:
			what he made or lost, on which symbols, and whether his option trading works.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. The user will assume you already read his trading reports; check them
			first to know which symbols he trades.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketWatcher is the expert grounding answers in current market news.
func NewMarketWatcher() *Expert {
	return &Expert{
		Name: "MarketWatcher",
		Description: `This is an expert market watcher,
		very well aware of all the financial products and institutions,
		and of the latest news about the different companies and funds.
		Ask the MarketWatcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets, you can search and find anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst is the expert reading the user's trade history. Its tools re-run
// the reporting pipeline over the given trades file, so every answer reflects
// the file as it is now.
func NewAnalyst(tradesFile string) *Expert {
	lib := []Function{newReportFunc(tradesFile)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's trade history.
		He can compute realized P/L reports: overall summary, monthly breakdown, options
		performance and the closed-trade ledger, optionally restricted to a symbol or a timeframe.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's trade history.
				You know how to use the Tools to extract relevant reports about the user's
				realized performance. You are part of a team of experts; yours is everything
				about the user's past trades. They might ask you questions in approximative
				language, figure out what they meant.

				Use the Report tool to get
				  - the overall summary (totals, win rate, most traded symbols)
				  - the monthly breakdown
				  - the options performance per underlying and per class
				  - the closed-trade ledger with its warnings
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// newReportFunc builds the Report tool over the trades file.
func newReportFunc(tradesFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Report",
			Description: `Report computes a realized P/L report from the user's trade history.

			The kinds are:
			  - "summary": totals, win rate, average per trade, most traded symbols
			  - "monthly": realized P/L per close month
			  - "options": P/L per underlying and the call/put split
			  - "closed": every closed trade, with warnings for sells that had no matching buy
			`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"kind": {
						Type:        genai.TypeString,
						Description: `The report kind: "summary", "monthly", "options" or "closed". Default is "summary".`,
					},
					"symbol": {
						Type:        genai.TypeString,
						Description: "Restrict the report to symbols containing this text. Empty means all symbols.",
					},
					"timeframe": {
						Type:        genai.TypeString,
						Description: `Restrict the report to a rolling window: "week", "month", "quarter" or "all". Default is "all".`,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report over the user's trade history.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{
				ID:       id,
				Name:     "Report",
				Response: map[string]any{},
			}

			filter, err := parseFilter(args)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}

			records, err := loadRecords(tradesFile)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}

			summary := tradepnl.NewSummary(records, filter)
			switch kind, _ := args["kind"].(string); kind {
			case "", "summary":
				fresp.Response["output"] = renderer.SummaryMarkdown(summary)
			case "monthly":
				fresp.Response["output"] = renderer.MonthlyMarkdown(summary)
			case "options":
				fresp.Response["output"] = renderer.OptionsMarkdown(summary)
			case "closed":
				fresp.Response["output"] = renderer.ClosedMarkdown(summary)
			default:
				fresp.Response["error"] = fmt.Sprintf("unknown report kind %q", kind)
			}
			return fresp
		},
	}
}

// parseFilter builds the trade filter from the tool arguments.
func parseFilter(args map[string]any) (tradepnl.Filter, error) {
	var f tradepnl.Filter
	if symbol, ok := args["symbol"]; ok {
		s, ok := symbol.(string)
		if !ok {
			return f, fmt.Errorf("argument 'symbol' is not a string as expected but %T", symbol)
		}
		f.Symbol = s
	}
	if timeframe, ok := args["timeframe"]; ok {
		s, ok := timeframe.(string)
		if !ok {
			return f, fmt.Errorf("argument 'timeframe' is not a string as expected but %T", timeframe)
		}
		tf, err := tradepnl.ParseTimeframe(s)
		if err != nil {
			return f, fmt.Errorf("argument 'timeframe' must be one of week, month, quarter, all: %w", err)
		}
		f.Timeframe = tf
	}
	return f, nil
}

// loadRecords reads the trade history file. A missing file is an empty
// history, not an error.
func loadRecords(tradesFile string) ([]tradepnl.RawTrade, error) {
	f, err := os.Open(tradesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open trades file %q: %w", tradesFile, err)
	}
	defer f.Close()

	records, err := tradepnl.DecodeRawTrades(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode trades file %q: %w", tradesFile, err)
	}
	return records, nil
}
