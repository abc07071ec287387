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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/ecvector/vectorgen/corpus"
	"github.com/ecvector/vectorgen/generator"
)

// vectorgenConfig is the persistable shape of a generation run: everything
// needed to reproduce a corpus byte for byte.
type vectorgenConfig struct {
	Seed       uint64
	Count      int
	Workers    int
	Output     string
	Categories []string
}

func defaultConfig() vectorgenConfig {
	return vectorgenConfig{
		Seed:   1,
		Count:  16,
		Output: "testdata",
	}
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		if !unicode.IsUpper(rune(field[0])) {
			return nil
		}
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func loadConfigFile(file string, cfg *vectorgenConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// resolveConfig assembles the effective configuration: defaults, then the
// config file, then command line flags, later sources winning.
func resolveConfig(ctx *cli.Context) (vectorgenConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfigFile(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(seedFlag.Name) {
		cfg.Seed = ctx.Uint64(seedFlag.Name)
	}
	if ctx.IsSet(countFlag.Name) {
		cfg.Count = ctx.Int(countFlag.Name)
	}
	if ctx.IsSet(workersFlag.Name) {
		cfg.Workers = ctx.Int(workersFlag.Name)
	}
	if ctx.IsSet(outputFlag.Name) {
		cfg.Output = ctx.String(outputFlag.Name)
	}
	if ctx.IsSet(categoryFlag.Name) {
		cfg.Categories = ctx.StringSlice(categoryFlag.Name)
	}
	return cfg, nil
}

func (cfg *vectorgenConfig) generatorConfig() (generator.Config, error) {
	gen := generator.Config{
		Seed:    cfg.Seed,
		Count:   cfg.Count,
		Workers: cfg.Workers,
	}
	for _, name := range cfg.Categories {
		cat := corpus.Category(name)
		if !cat.Valid() {
			return gen, fmt.Errorf("unknown category %q", name)
		}
		gen.Categories = append(gen.Categories, cat)
	}
	return gen, nil
}

// dumpConfig is the dumpconfig command: it prints the effective configuration
// as TOML so a flag-driven run can be pinned to a file.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := resolveConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
