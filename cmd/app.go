// Package cmd implements the CLI application around flexfolio statements.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/flexfolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fetchCmd{}, "statement")
	c.Register(&modelsCmd{}, "statement")
	c.Register(&summaryCmd{}, "statement")

	c.Register(&returnsCmd{}, "derivations")
	c.Register(&cashflowCmd{}, "derivations")
	c.Register(&positionsCmd{}, "derivations")
	c.Register(&transactionsCmd{}, "derivations")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var statementFile = flag.String("statement", "statement.xml", "Path to the Flex statement XML file")

const allModelsArg = "all"

// loadStatement parses the statement file shared by all derivation commands.
func loadStatement() (*flexfolio.Statement, error) {
	stmt, err := flexfolio.ParseFile(*statementFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load statement %q: %w", *statementFile, err)
	}
	return stmt, nil
}

// selector maps the -model argument to a ModelSelector; the "all" spelling
// (and an empty argument) selects every model.
func selector(model string) flexfolio.ModelSelector {
	if model == "" || model == allModelsArg {
		return flexfolio.AllModels()
	}
	return flexfolio.OneModel(model)
}

// writeJSON writes v as indented JSON to the given file, or to stdout when the
// file is "" or "-".
func writeJSON(path string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" || path == "-" {
		fmt.Println(string(content))
		return nil
	}
	return os.WriteFile(path, append(content, '\n'), 0644)
}

// printMarkdown renders markdown to the terminal, falling back to the raw text
// when the renderer fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
