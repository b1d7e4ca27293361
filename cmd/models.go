package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type modelsCmd struct{}

func (*modelsCmd) Name() string     { return "models" }
func (*modelsCmd) Synopsis() string { return "list the accounting models present in the statement" }
func (*modelsCmd) Usage() string {
	return `flexfolio models

  Lists the accounting model names present in the statement, one per line,
  in file order.

`
}

func (*modelsCmd) SetFlags(*flag.FlagSet) {}

func (*modelsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stmt, err := loadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, model := range stmt.Models() {
		fmt.Println(model)
	}
	return subcommands.ExitSuccess
}
