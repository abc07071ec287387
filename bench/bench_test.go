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

package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecvector/vectorgen/corpus"
	"github.com/ecvector/vectorgen/generator"
)

func TestRunRejectsDriftedCorpus(t *testing.T) {
	c := corpus.New(corpus.ECRecover)
	// A record whose expected output does not match the evaluator must abort
	// the benchmark instead of producing numbers for a stale corpus.
	bad := corpus.Success{
		Input:    strings.Repeat("00", 128),
		Expected: strings.Repeat("ff", 32),
		Name:     "drifted",
	}
	require.NoError(t, c.AddSuccess(bad))
	_, err := Run([]*corpus.Corpus{c})
	require.Error(t, err)
}

func TestRunRejectsBadHex(t *testing.T) {
	c := corpus.New(corpus.ECRecover)
	require.NoError(t, c.AddSuccess(corpus.Success{Input: "zz", Expected: "", Name: "bad"}))
	_, err := Run([]*corpus.Corpus{c})
	require.Error(t, err)
}

func TestRunSkipsNoBenchmark(t *testing.T) {
	c := corpus.New(corpus.ECRecover)
	require.NoError(t, c.AddSuccess(corpus.Success{
		Input:       "00",
		Expected:    "00",
		Name:        "skipped",
		NoBenchmark: true,
	}))
	results, err := Run([]*corpus.Corpus{c})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunMeasures(t *testing.T) {
	if testing.Short() {
		t.Skip("benchmarking in -short mode")
	}
	c, err := generator.Generate(generator.Config{Seed: 1, Count: 0, Workers: 2}, corpus.ECRecover)
	require.NoError(t, err)

	// Trim to a single vector to keep the test fast.
	single := corpus.New(corpus.ECRecover)
	require.NoError(t, single.AddSuccess(c.Successes()[0]))

	results, err := Run([]*corpus.Corpus{single})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Positive(t, results[0].N)
	assert.Positive(t, results[0].NsPerOp)
}

func TestWriteTable(t *testing.T) {
	buf := new(bytes.Buffer)
	WriteTable(buf, []Result{{
		Category:   corpus.BW6761Pairing,
		Name:       "pairing_generator_pair",
		InputBytes: 384,
		N:          100,
		NsPerOp:    123456,
		AllocsOp:   7,
		BytesOp:    2048,
	}})
	out := buf.String()
	assert.Contains(t, out, "bw6761-pairing")
	assert.Contains(t, out, "pairing_generator_pair")
	assert.Contains(t, out, "123456")
}
