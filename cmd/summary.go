package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flexfolio"
	"github.com/etnz/flexfolio/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	model    string
	currency string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a summary of the statement's derivations" }
func (*summaryCmd) Usage() string {
	return `flexfolio summary [-model <name>] [-currency <code>]

  Renders a summary of the selected model (or of all models): reporting
  period, NAV change, external flows, cumulative time-weighted return and
  recent trades.

`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.model, "model", allModelsArg, "Model to summarize, or \"all\"")
	f.StringVar(&p.currency, "currency", "USD", "Reporting currency of the account")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stmt, err := loadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	summary, err := flexfolio.NewSummary(stmt, selector(p.model), p.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Summary(summary))
	return subcommands.ExitSuccess
}
