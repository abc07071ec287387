// Copyright 2025 The vectorgen Authors
// This file is part of the vectorgen library.
//
// The vectorgen library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The vectorgen library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the vectorgen library. If not, see <http://www.gnu.org/licenses/>.

// vectorgen generates deterministic test vectors and benchmarks for elliptic
// curve precompiles.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ecvector/vectorgen/bench"
	"github.com/ecvector/vectorgen/corpus"
	"github.com/ecvector/vectorgen/generator"
	"github.com/ecvector/vectorgen/internal/flags"
	"github.com/ecvector/vectorgen/log"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "Seed of the deterministic random streams",
		Value: 1,
	}
	countFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "Number of random vectors per category, on top of the fixed edge cases",
		Value: 16,
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of concurrent synthesis workers (0 = number of CPUs)",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Directory to write the corpus files into",
		Value:   "testdata",
	}
	categoryFlag = &cli.StringSliceFlag{
		Name:  "category",
		Usage: "Category to generate, repeatable (default: all)",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
)

var (
	generateCommand = &cli.Command{
		Action:    generate,
		Name:      "generate",
		Usage:     "Generate the test vector corpora and write them to disk",
		ArgsUsage: " ",
		Flags:     flags.Merge(configFlags, generationFlags, []cli.Flag{outputFlag}),
	}
	benchCommand = &cli.Command{
		Action:    benchmark,
		Name:      "bench",
		Usage:     "Benchmark the reference evaluator over the generated vectors",
		ArgsUsage: " ",
		Flags:     flags.Merge(configFlags, generationFlags),
	}
	categoriesCommand = &cli.Command{
		Action:    listCategories,
		Name:      "categories",
		Usage:     "List the supported vector categories",
		ArgsUsage: " ",
	}
	dumpConfigCommand = &cli.Command{
		Action:    dumpConfig,
		Name:      "dumpconfig",
		Usage:     "Print the effective configuration as TOML",
		ArgsUsage: " ",
		Flags:     flags.Merge(configFlags, generationFlags, []cli.Flag{outputFlag}),
	}
)

var (
	configFlags     = []cli.Flag{configFileFlag}
	generationFlags = []cli.Flag{seedFlag, countFlag, workersFlag, categoryFlag}
)

var app = flags.NewApp("elliptic curve precompile test vector generator")

func init() {
	app.Flags = []cli.Flag{verbosityFlag}
	app.Commands = []*cli.Command{
		generateCommand,
		benchCommand,
		categoriesCommand,
		dumpConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		lvl := log.Lvl(ctx.Int(verbosityFlag.Name))
		log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat())))
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(ctx *cli.Context) error {
	cfg, err := resolveConfig(ctx)
	if err != nil {
		return err
	}
	gen, err := cfg.generatorConfig()
	if err != nil {
		return err
	}
	start := time.Now()
	corpora, err := generator.Run(gen)
	if err != nil {
		return err
	}
	var total int
	for _, c := range corpora {
		if err := c.Write(cfg.Output); err != nil {
			return err
		}
		total += c.Len()
	}
	log.Info("Wrote corpora", "dir", cfg.Output, "categories", len(corpora), "vectors", total, "elapsed", time.Since(start))
	return nil
}

func benchmark(ctx *cli.Context) error {
	cfg, err := resolveConfig(ctx)
	if err != nil {
		return err
	}
	gen, err := cfg.generatorConfig()
	if err != nil {
		return err
	}
	corpora, err := generator.Run(gen)
	if err != nil {
		return err
	}
	results, err := bench.Run(corpora)
	if err != nil {
		return err
	}
	bench.WriteTable(os.Stdout, results)
	return nil
}

func listCategories(ctx *cli.Context) error {
	for _, cat := range corpus.Categories() {
		fmt.Println(cat)
	}
	return nil
}
