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

// Package bench measures the reference evaluator against generated corpora,
// giving a cost baseline for repricing discussions.
package bench

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/olekukonko/tablewriter"

	"github.com/ecvector/vectorgen/corpus"
	"github.com/ecvector/vectorgen/generator"
	"github.com/ecvector/vectorgen/log"
)

// Result holds the measurements for one vector.
type Result struct {
	Category   corpus.Category
	Name       string
	InputBytes int
	N          int
	NsPerOp    int64
	AllocsOp   int64
	BytesOp    int64
}

// Run benchmarks every positive vector of the given corpora, skipping those
// flagged NoBenchmark. Each vector is re-evaluated once up front so a corpus
// that drifted from the arithmetic cannot produce plausible-looking numbers.
func Run(corpora []*corpus.Corpus) ([]Result, error) {
	var results []Result
	for _, c := range corpora {
		for _, v := range c.Successes() {
			if v.NoBenchmark {
				continue
			}
			input, err := hex.DecodeString(v.Input)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: bad input hex: %v", c.Category, v.Name, err)
			}
			out, err := generator.Evaluate(c.Category, input)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: vector no longer evaluates: %v", c.Category, v.Name, err)
			}
			if hex.EncodeToString(out) != v.Expected {
				return nil, fmt.Errorf("%s/%s: vector output drifted from corpus", c.Category, v.Name)
			}
			results = append(results, measure(c.Category, v.Name, input))
		}
		log.Info("Benchmarked corpus", "category", c.Category)
	}
	return results, nil
}

func measure(category corpus.Category, name string, input []byte) Result {
	res := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			generator.Evaluate(category, input)
		}
	})
	return Result{
		Category:   category,
		Name:       name,
		InputBytes: len(input),
		N:          res.N,
		NsPerOp:    res.NsPerOp(),
		AllocsOp:   res.AllocsPerOp(),
		BytesOp:    res.AllocedBytesPerOp(),
	}
}

// WriteTable renders the results as an aligned ASCII table.
func WriteTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Vector", "Input", "Iters", "ns/op", "allocs/op", "B/op"})
	for _, r := range results {
		table.Append([]string{
			string(r.Category),
			r.Name,
			strconv.Itoa(r.InputBytes),
			strconv.Itoa(r.N),
			strconv.FormatInt(r.NsPerOp, 10),
			strconv.FormatInt(r.AllocsOp, 10),
			strconv.FormatInt(r.BytesOp, 10),
		})
	}
	table.Render()
}
