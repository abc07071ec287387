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

package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFileNames(t *testing.T) {
	assert.Equal(t, "bw6761G1Add.json", BW6761G1Add.File())
	assert.Equal(t, "fail-bw6761G1Add.json", BW6761G1Add.FailFile())
	assert.Equal(t, "ecRecover.json", ECRecover.File())
	assert.Equal(t, "fail-bn254Pairing.json", BN254Pairing.FailFile())
}

func TestCategoryValid(t *testing.T) {
	for _, cat := range Categories() {
		assert.True(t, cat.Valid(), string(cat))
	}
	assert.False(t, Category("bls12381-g1add").Valid())
	assert.False(t, Category("").Valid())
}

func TestCollisionDetection(t *testing.T) {
	c := New(BW6761G1Add)
	v := Success{Input: "00", Expected: "00", Name: "first"}
	require.NoError(t, c.AddSuccess(v))

	// A different name is a different record, identical input or not.
	v.Name = "second"
	require.NoError(t, c.AddSuccess(v))

	// The very same record is a synthesizer bug.
	err := c.AddSuccess(v)
	require.ErrorIs(t, err, ErrEncodingCollision)

	// Success and failure records never collide with each other.
	require.NoError(t, c.AddFailure(Failure{Input: "00", ExpectedError: "x", Name: "second"}))
	require.Equal(t, 3, c.Len())
}

func TestWriteLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	c := New(ECRecover)
	require.NoError(t, c.AddSuccess(Success{Input: "aa", Expected: "bb", Name: "ok_1"}))
	require.NoError(t, c.AddSuccess(Success{Input: "cc", Expected: "dd", Name: "ok_2", NoBenchmark: true}))
	require.NoError(t, c.AddFailure(Failure{Input: "ee", ExpectedError: "invalid input length", Name: "fail_1"}))
	require.NoError(t, c.Write(dir))

	loaded, err := Load(dir, ECRecover)
	require.NoError(t, err)
	assert.Equal(t, c.Successes(), loaded.Successes())
	assert.Equal(t, c.Failures(), loaded.Failures())
}

func TestWriteFormat(t *testing.T) {
	dir := t.TempDir()
	c := New(BN254Pairing)
	require.NoError(t, c.AddSuccess(Success{Input: "", Expected: "01", Name: "empty"}))
	require.NoError(t, c.Write(dir))

	blob, err := os.ReadFile(filepath.Join(dir, "bn254Pairing.json"))
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), blob[len(blob)-1], "file must end in a newline")

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(blob, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "empty", records[0]["Name"])
	// omitempty keeps the optional fields off the wire
	assert.NotContains(t, records[0], "Gas")
	assert.NotContains(t, records[0], "NoBenchmark")
}

func TestWriteLocked(t *testing.T) {
	dir := t.TempDir()
	c := New(BW6761G1Mul)
	require.NoError(t, c.AddSuccess(Success{Input: "00", Expected: "00", Name: "v"}))

	// Writing twice in sequence is fine: the lock is released after each
	// write.
	require.NoError(t, c.Write(dir))
	require.NoError(t, c.Write(dir))
}
