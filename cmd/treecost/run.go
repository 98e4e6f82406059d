package main

import (
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtrees/experiment"
	"github.com/npillmayer/ordtrees/experiment/report"
	cli "github.com/urfave/cli/v2"
)

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the cost experiment and write its results",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "reps",
			Usage: "number of repetitions to average over",
			Value: experiment.DefaultRepetitions,
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "largest tree size",
			Value: experiment.DefaultMaxN,
		},
		&cli.IntFlag{
			Name:  "step",
			Usage: "distance between measured tree sizes",
			Value: experiment.DefaultSampleStep,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the key permutations",
			Value: experiment.DefaultSeed,
		},
		&cli.StringSliceFlag{
			Name:  "engines",
			Usage: "engines to measure (avl, rb, b1, b5, b10), default all",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "directory for the CSV files",
			Value: ".",
		},
		&cli.StringFlag{
			Name:  "html",
			Usage: "also write an HTML report to this file",
		},
		&cli.StringFlag{
			Name:  "prom",
			Usage: "also write a Prometheus textfile to this path",
		},
	},
	Action: func(cctx *cli.Context) error {
		cfg := experiment.Config{
			Repetitions: cctx.Int("reps"),
			MaxN:        cctx.Int("max"),
			SampleStep:  cctx.Int("step"),
			Seed:        cctx.Int64("seed"),
			Engines:     cctx.StringSlice("engines"),
		}
		cast := caster.New(cctx.Context)
		var wg sync.WaitGroup
		if ch, ok := cast.Sub(cctx.Context, 64); ok {
			wg.Add(1)
			go func() {
				defer wg.Done()
				printProgress(ch, cfg, isTerminal())
			}()
		}
		res, err := experiment.Run(cctx.Context, cfg, cast)
		cast.Close()
		wg.Wait()
		if err != nil {
			return err
		}
		if err := report.WriteCSVFiles(cctx.String("out"), res); err != nil {
			return err
		}
		if path := cctx.String("html"); path != "" {
			if err := report.WriteHTMLFile(path, res); err != nil {
				return err
			}
		}
		if path := cctx.String("prom"); path != "" {
			if err := report.WritePrometheus(path, res); err != nil {
				return err
			}
		}
		return nil
	},
}

// printProgress reports every engine finishing a repetition. It returns when
// ch is closed.
func printProgress(ch <-chan interface{}, cfg experiment.Config, colored bool) {
	step := cfg.SampleStep
	if step <= 0 {
		step = experiment.DefaultSampleStep
	}
	reps := cfg.Repetitions
	if reps <= 0 {
		reps = experiment.DefaultRepetitions
	}
	engine := color.New(color.FgCyan, color.Bold)
	if colored {
		engine.EnableColor()
	} else {
		engine.DisableColor()
	}
	for msg := range ch {
		p, ok := msg.(experiment.Progress)
		if !ok || p.Size != p.MaxN/step*step {
			continue
		}
		fmt.Printf("repetition %d/%d: %s done\n", p.Repetition, reps, engine.Sprint(p.Engine))
	}
}
