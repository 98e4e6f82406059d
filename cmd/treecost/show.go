package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/ordtrees/render"
	cli "github.com/urfave/cli/v2"
)

var showCmd = &cli.Command{
	Name:      "show",
	Usage:     "build a tree from the keys given and print it",
	ArgsUsage: "key…",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "engine",
			Usage: "engine to use (avl, rb, b1, b5, b10)",
			Value: "avl",
		},
		&cli.BoolFlag{
			Name:  "dot",
			Usage: "print Graphviz DOT instead of a console tree",
		},
		&cli.StringSliceFlag{
			Name:  "remove",
			Usage: "keys to remove after building the tree",
		},
	},
	Action: func(cctx *cli.Context) error {
		m, err := ordtrees.New[int](cctx.String("engine"))
		if err != nil {
			return err
		}
		keys, err := parseKeys(cctx.Args().Slice())
		if err != nil {
			return err
		}
		for _, k := range keys {
			m.Insert(k)
		}
		remove, err := parseKeys(cctx.StringSlice("remove"))
		if err != nil {
			return err
		}
		for _, k := range remove {
			if !m.RemoveOne(k) {
				tracer().Infof("key %d not present", k)
			}
		}
		if err := m.Check(); err != nil {
			return err
		}
		if cctx.Bool("dot") {
			render.Dot(m.Shape(), os.Stdout)
			return nil
		}
		render.Console(m.Shape(), os.Stdout, isTerminal())
		ins, rem := m.Meter().DrainInsert(), m.Meter().DrainRemove()
		fmt.Printf("insert cost %v\nremove cost %v\n", ins, rem)
		return nil
	},
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", a, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
