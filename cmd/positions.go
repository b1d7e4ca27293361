package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flexfolio"
	"github.com/etnz/flexfolio/eodhd"
	"github.com/google/subcommands"
)

type positionsCmd struct {
	model     string
	output    string
	cacheSize int
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "derive the daily mark-to-market position values" }
func (*positionsCmd) Usage() string {
	return `flexfolio positions [-model <name>] [-o <file>] [-price-cache <n>]

  Reconstructs the daily position quantities of every traded instrument from
  the statement's trades and open positions, values them with EODHD close
  prices, and writes the resulting daily position table as JSON. Requires an
  EODHD API key (see -eodhd-api-key).

`
}

func (p *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.model, "model", allModelsArg, "Model to derive, or \"all\"")
	f.StringVar(&p.output, "o", "", "Output file (defaults to stdout)")
	f.IntVar(&p.cacheSize, "price-cache", 256, "Capacity of the in-memory price lookup cache")
}

func (p *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	apiKey := eodhd.APIKey()
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key or EODHD_API_KEY")
		return subcommands.ExitUsageError
	}
	source, err := flexfolio.NewCachedSource(eodhd.NewSource(apiKey), p.cacheSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stmt, err := loadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	positions, err := stmt.Positions(selector(p.model), source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if positions == nil {
		fmt.Fprintf(os.Stderr, "No trading model selected by %q, nothing to value.\n", p.model)
		return subcommands.ExitSuccess
	}
	if err := writeJSON(p.output, positions); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
