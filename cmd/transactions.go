package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type transactionsCmd struct {
	model  string
	output string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "derive the normalized transaction ledger" }
func (*transactionsCmd) Usage() string {
	return `flexfolio transactions [-model <name>] [-o <file>]

  Flattens the trade records of the selected model (or of all models) into
  the canonical transaction ledger, sorted by execution time, and writes it
  as JSON.

`
}

func (p *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.model, "model", allModelsArg, "Model to derive, or \"all\"")
	f.StringVar(&p.output, "o", "", "Output file (defaults to stdout)")
}

func (p *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stmt, err := loadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := stmt.Transactions(selector(p.model))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := writeJSON(p.output, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
