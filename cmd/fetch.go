package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flexfolio"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	token string
	query string
}

func (*fetchCmd) Name() string { return "fetch" }
func (*fetchCmd) Synopsis() string {
	return "download a generated Flex statement from the broker's web service"
}
func (*fetchCmd) Usage() string {
	return `flexfolio fetch [-token <token>] [-query <query_id>] <target-file>

  Requests generation of the Flex query and polls the web service until the
  statement is ready, then writes the raw XML to <target-file>. The token
  defaults to the IB_FLEX_TOKEN environment variable.

`
}

func (p *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.token, "token", "", "Flex web service token (defaults to $IB_FLEX_TOKEN)")
	f.StringVar(&p.query, "query", "", "Flex query identifier")
}

func (p *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one target file argument")
		return subcommands.ExitUsageError
	}
	token := p.token
	if token == "" {
		token = os.Getenv("IB_FLEX_TOKEN")
	}
	if token == "" || p.query == "" {
		fmt.Fprintln(os.Stderr, "Error: both a token and a query id are required")
		return subcommands.ExitUsageError
	}

	content, err := flexfolio.NewFlexClient().Fetch(ctx, token, p.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching statement: %v\n", err)
		return subcommands.ExitFailure
	}

	target := f.Arg(0)
	if err := os.WriteFile(target, content, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing statement to %q: %v\n", target, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Statement written to %s\n", target)
	return subcommands.ExitSuccess
}
