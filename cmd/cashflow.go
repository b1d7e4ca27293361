package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type cashflowCmd struct {
	model  string
	output string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "derive the daily external cash flow series" }
func (*cashflowCmd) Usage() string {
	return `flexfolio cashflow [-model <name>] [-o <file>]

  Derives the sparse daily series of base-currency deposits and withdrawals
  of the selected model (or of the aggregate of all models), and writes it
  as JSON.

`
}

func (p *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.model, "model", allModelsArg, "Model to derive, or \"all\"")
	f.StringVar(&p.output, "o", "", "Output file (defaults to stdout)")
}

func (p *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stmt, err := loadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	flows, err := stmt.CashFlow(selector(p.model))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := writeJSON(p.output, flows); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
