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

// Package corpus defines the on-disk test vector format: per-category JSON
// files of hex-encoded input/expected records, in the layout precompile
// conformance suites consume.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEncodingCollision reports two vectors of one corpus encoding to the same
// canonical record. It signals a synthesizer bug and is fatal to the
// generation run.
var ErrEncodingCollision = errors.New("duplicate canonical record")

// Category identifies one precompile operation a corpus targets.
type Category string

const (
	BW6761G1Add      Category = "bw6761-g1add"
	BW6761G1Mul      Category = "bw6761-g1mul"
	BW6761G1MultiExp Category = "bw6761-g1multiexp"
	BW6761G2Add      Category = "bw6761-g2add"
	BW6761G2Mul      Category = "bw6761-g2mul"
	BW6761G2MultiExp Category = "bw6761-g2multiexp"
	BW6761Pairing    Category = "bw6761-pairing"
	BN254Pairing     Category = "bn254-pairing"
	ECRecover        Category = "ecrecover"
)

// Categories lists every supported category in canonical generation order.
func Categories() []Category {
	return []Category{
		BW6761G1Add, BW6761G1Mul, BW6761G1MultiExp,
		BW6761G2Add, BW6761G2Mul, BW6761G2MultiExp,
		BW6761Pairing, BN254Pairing, ECRecover,
	}
}

var fileNames = map[Category]string{
	BW6761G1Add:      "bw6761G1Add",
	BW6761G1Mul:      "bw6761G1Mul",
	BW6761G1MultiExp: "bw6761G1MultiExp",
	BW6761G2Add:      "bw6761G2Add",
	BW6761G2Mul:      "bw6761G2Mul",
	BW6761G2MultiExp: "bw6761G2MultiExp",
	BW6761Pairing:    "bw6761Pairing",
	BN254Pairing:     "bn254Pairing",
	ECRecover:        "ecRecover",
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	_, ok := fileNames[c]
	return ok
}

// File returns the success corpus file name for the category.
func (c Category) File() string { return fileNames[c] + ".json" }

// FailFile returns the failure corpus file name for the category.
func (c Category) FailFile() string { return "fail-" + fileNames[c] + ".json" }

// Success is one positive test vector: hex input, hex expected output. Gas is
// optional; the generator does not model pricing and leaves it zero.
type Success struct {
	Input       string
	Expected    string
	Gas         uint64 `json:",omitempty"`
	Name        string
	NoBenchmark bool `json:",omitempty"`
}

// Failure is one negative test vector: hex input and the canonical error tag
// the implementation under test must fail with.
type Failure struct {
	Input         string
	ExpectedError string
	Name          string
}

// Corpus is the ordered set of vectors generated for one category. Insertion
// order is seed-determined and significant for reproducible diffing.
type Corpus struct {
	Category Category

	ok   []Success
	fail []Failure
	seen map[string]struct{}
}

// New returns an empty corpus for the given category.
func New(category Category) *Corpus {
	return &Corpus{
		Category: category,
		seen:     make(map[string]struct{}),
	}
}

// AddSuccess appends a positive vector, enforcing encoder injectivity.
func (c *Corpus) AddSuccess(v Success) error {
	rec, err := canonical("ok", v)
	if err != nil {
		return err
	}
	if err := c.mark(rec); err != nil {
		return fmt.Errorf("%w: %s", err, v.Name)
	}
	c.ok = append(c.ok, v)
	return nil
}

// AddFailure appends a negative vector, enforcing encoder injectivity.
func (c *Corpus) AddFailure(v Failure) error {
	rec, err := canonical("fail", v)
	if err != nil {
		return err
	}
	if err := c.mark(rec); err != nil {
		return fmt.Errorf("%w: %s", err, v.Name)
	}
	c.fail = append(c.fail, v)
	return nil
}

// Successes returns the positive vectors in insertion order.
func (c *Corpus) Successes() []Success { return c.ok }

// Failures returns the negative vectors in insertion order.
func (c *Corpus) Failures() []Failure { return c.fail }

// Len returns the total number of vectors.
func (c *Corpus) Len() int { return len(c.ok) + len(c.fail) }

func (c *Corpus) mark(rec string) error {
	if _, dup := c.seen[rec]; dup {
		return ErrEncodingCollision
	}
	c.seen[rec] = struct{}{}
	return nil
}

// canonical produces the unique byte representation used for collision
// detection. json.Marshal of a struct is deterministic, and the kind prefix
// separates the two record shapes.
func canonical(kind string, v interface{}) (string, error) {
	blob, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return kind + ":" + string(blob), nil
}
