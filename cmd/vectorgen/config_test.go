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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecvector/vectorgen/corpus"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectorgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
Seed = 1337
Count = 8
Output = "vectors"
Categories = ["ecrecover", "bn254-pairing"]
`)
	cfg := defaultConfig()
	require.NoError(t, loadConfigFile(path, &cfg))
	assert.Equal(t, uint64(1337), cfg.Seed)
	assert.Equal(t, 8, cfg.Count)
	assert.Equal(t, "vectors", cfg.Output)
	assert.Equal(t, []string{"ecrecover", "bn254-pairing"}, cfg.Categories)
}

func TestLoadConfigFileUnknownField(t *testing.T) {
	path := writeConfig(t, `Sead = 1`)
	cfg := defaultConfig()
	require.Error(t, loadConfigFile(path, &cfg), "typoed keys must not be dropped silently")
}

func TestGeneratorConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Categories = []string{"ecrecover"}
	gen, err := cfg.generatorConfig()
	require.NoError(t, err)
	assert.Equal(t, []corpus.Category{corpus.ECRecover}, gen.Categories)

	cfg.Categories = []string{"bls12381-g1add"}
	_, err = cfg.generatorConfig()
	require.Error(t, err)
}

func TestMarshalRoundtrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Seed = 99
	cfg.Categories = []string{"bw6761-pairing"}
	blob, err := tomlSettings.Marshal(&cfg)
	require.NoError(t, err)

	var back vectorgenConfig
	require.NoError(t, tomlSettings.NewDecoder(bytes.NewReader(blob)).Decode(&back))
	assert.Equal(t, cfg, back)
}
