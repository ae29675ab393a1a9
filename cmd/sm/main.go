// Command sm generates a random stable matching instance of a given size,
// solves it with seller-proposing deferred acceptance, and dumps the
// preference tables, the final pairing, and the elapsed wall-clock time.
//
// Usage:
//
//	sm [--seed S] [--verbose] <value for n>
//
// With no --seed (or --seed 0) the preference tables differ on every run;
// a fixed non-zero seed reproduces the exact same instance and matching.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/galeshapley"
)

// usageLine mirrors the historical one-line usage hint of the tool.
const usageLine = "Usage: sm <value for n>"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// ExitCoder errors were already reported by the cli runtime; this
		// branch catches internal failures (generation or solving).
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

// newApp wires flags and the single root action. Split out of main so tests
// can run the app against an in-memory writer.
func newApp() *cli.App {
	return &cli.App{
		Name:      "sm",
		Usage:     "create a random stable matching instance and solve it",
		ArgsUsage: "<value for n>",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Value: 0,
				Usage: "seed for the preference tables (0 = derive from the wall clock)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Value: false,
				Usage: "trace every proposal while solving",
			},
		},
		Action: run,
	}
}

// run parses the single positional size argument, builds a uniformly random
// instance, solves it, and renders the report.
func run(cCtx *cli.Context) error {
	// 1) Exactly one positional argument: a non-negative integer n.
	//    Anything else is a usage error, reported before any work happens.
	if cCtx.NArg() != 1 {
		return cli.Exit(usageLine, 1)
	}
	n, err := strconv.Atoi(cCtx.Args().First())
	if err != nil || n < 0 {
		return cli.Exit(usageLine, 1)
	}

	// 2) Resolve the seed. Zero keeps the historical behavior of a fresh
	//    instance per invocation; any other value pins the whole run.
	seed := cCtx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// The clock covers generation, solving and reporting, like the original
	// tool measured it.
	start := time.Now()

	// 3) Generate the instance.
	in, err := builder.BuildInstance(n,
		[]builder.Option{builder.WithSeed(seed)},
		builder.Uniform(),
	)
	if err != nil {
		return fmt.Errorf("sm: build instance: %w", err)
	}

	// 4) Solve it.
	var solveOpts []galeshapley.Option
	if cCtx.Bool("verbose") {
		solveOpts = append(solveOpts, galeshapley.WithVerbose())
	}
	res, err := galeshapley.Solve(in, solveOpts...)
	if err != nil {
		return fmt.Errorf("sm: solve: %w", err)
	}

	// 5) Report preferences, pairing and elapsed time.
	w := cCtx.App.Writer
	writePreferences(w, in)
	writeMatches(w, res)
	writeElapsed(w, time.Since(start))

	return nil
}
