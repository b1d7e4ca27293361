package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/flexfolio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Tokens and API keys can live in a local .env file.
	godotenv.Load()

	// Static shell completion; exits early when invoked by the shell.
	completion().Complete("flexfolio")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	derivation := &complete.Command{
		Flags: map[string]complete.Predictor{
			"model": predict.Something,
			"o":     predict.Files("*"),
		},
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"statement":     predict.Files("*.xml"),
			"eodhd-api-key": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"fetch": {Flags: map[string]complete.Predictor{
				"token": predict.Something,
				"query": predict.Something,
			}},
			"models":       {},
			"summary":      {Flags: map[string]complete.Predictor{"model": predict.Something, "currency": predict.Something}},
			"returns":      derivation,
			"cashflow":     derivation,
			"positions":    derivation,
			"transactions": derivation,
		},
	}
}
