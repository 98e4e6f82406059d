/*
Command treecost measures and compares the structural cost of ordered
tree engines.

	treecost run --reps 10 --max 10000 --step 200 --out results
	treecost show --engine rb 50 30 70 20 40

Subcommand run performs the cost experiment and writes the averaged samples
as insert_cost.csv and remove_cost.csv, optionally also as an HTML page and
a Prometheus textfile. Subcommand show builds a single tree from the keys
given and prints it, either to the console or as Graphviz DOT.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "treecost: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "treecost"
	app.Usage = "compare the structural cost of self-balancing search trees"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "trace structural events of the trees",
		},
		&cli.StringFlag{
			Name:  "trace",
			Usage: "trace level (Error, Info, Debug)",
			Value: "Error",
		},
	}
	app.Before = setupTracing
	app.Commands = []*cli.Command{
		runCmd,
		showCmd,
	}
	return app
}

func setupTracing(cctx *cli.Context) error {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.TraceLevelFromString(cctx.String("trace"))
	if cctx.Bool("debug") {
		level = tracing.LevelDebug
	}
	tracer().SetTraceLevel(level)
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
