package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type returnsCmd struct {
	model  string
	output string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "derive the time-weighted daily return series" }
func (*returnsCmd) Usage() string {
	return `flexfolio returns [-model <name>] [-o <file>]

  Derives the time-weighted daily returns of the selected model (or of the
  aggregate of all models) from the statement's equity summaries and cash
  flows, and writes them as JSON.

`
}

func (p *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.model, "model", allModelsArg, "Model to derive, or \"all\"")
	f.StringVar(&p.output, "o", "", "Output file (defaults to stdout)")
}

func (p *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stmt, err := loadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	returns, err := stmt.Returns(selector(p.model))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := writeJSON(p.output, returns); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
