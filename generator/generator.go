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

// Package generator synthesizes deterministic precompile test vectors: it
// derives inputs from a seeded XOF, evaluates them against the reference
// arithmetic and assembles per-category corpora of positive and negative
// vectors.
package generator

import (
	"encoding/hex"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ecvector/vectorgen/corpus"
	"github.com/ecvector/vectorgen/log"
)

// Config parameterizes a generation run.
type Config struct {
	// Seed keys the deterministic random streams. Equal seeds produce byte
	// identical corpora, independent of Workers.
	Seed uint64

	// Count is the number of random vectors per category, on top of the
	// fixed edge cases.
	Count int

	// Workers bounds synthesis concurrency. Zero means GOMAXPROCS.
	Workers int

	// Categories selects what to generate. Empty means all.
	Categories []corpus.Category
}

func (cfg *Config) sanitize() error {
	if cfg.Count < 0 {
		return fmt.Errorf("negative vector count %d", cfg.Count)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = corpus.Categories()
	}
	for _, cat := range cfg.Categories {
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q", cat)
		}
	}
	return nil
}

// Run generates the corpora for every configured category, in canonical
// order.
func Run(cfg Config) ([]*corpus.Corpus, error) {
	if err := cfg.sanitize(); err != nil {
		return nil, err
	}
	var out []*corpus.Corpus
	for _, cat := range cfg.Categories {
		start := time.Now()
		c, err := Generate(cfg, cat)
		if err != nil {
			return nil, err
		}
		log.Info("Generated corpus", "category", cat, "ok", len(c.Successes()), "fail", len(c.Failures()), "elapsed", time.Since(start))
		out = append(out, c)
	}
	return out, nil
}

// Generate synthesizes and evaluates the corpus for one category. Workers run
// in parallel but results are committed in schedule order, so the output is
// identical to a sequential run.
func Generate(cfg Config, category corpus.Category) (*corpus.Corpus, error) {
	if err := cfg.sanitize(); err != nil {
		return nil, err
	}
	var (
		okPlans   = successPlans(category, cfg.Count)
		failPlans = failurePlans(category)
		successes = make([]corpus.Success, len(okPlans))
		failures  = make([]corpus.Failure, len(failPlans))
	)
	var g errgroup.Group
	g.SetLimit(cfg.Workers)

	for i, p := range okPlans {
		i, p := i, p
		g.Go(func() error {
			input := p.make(stream(cfg.Seed, category, p.name, uint64(i)))
			expected, err := Evaluate(category, input)
			if err != nil {
				// A success plan that fails evaluation is a synthesizer bug,
				// never a property of the seed.
				return fmt.Errorf("%s: success plan %s rejected: %v", category, p.name, err)
			}
			successes[i] = corpus.Success{
				Input:    hex.EncodeToString(input),
				Expected: hex.EncodeToString(expected),
				Name:     p.name,
			}
			return nil
		})
	}
	for i, p := range failPlans {
		i, p := i, p
		g.Go(func() error {
			input := p.make(stream(cfg.Seed, category, p.name, uint64(i)))
			if out, err := Evaluate(category, input); err == nil {
				return fmt.Errorf("%s: failure plan %s evaluated to %x", category, p.name, out)
			} else {
				failures[i] = corpus.Failure{
					Input:         hex.EncodeToString(input),
					ExpectedError: err.Error(),
					Name:          p.name,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := corpus.New(category)
	for _, v := range successes {
		if err := c.AddSuccess(v); err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
	}
	for _, v := range failures {
		if err := c.AddFailure(v); err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
	}
	return c, nil
}
