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
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Write persists the corpus under dir: one pretty-printed JSON file for the
// positive vectors and one for the negative vectors. The directory is guarded
// by a LOCK file so concurrent invocations cannot interleave partial corpora,
// and each file is written to a temp path and renamed into place.
func (c *Corpus) Write(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	lock := flock.New(filepath.Join(dir, "LOCK"))
	locked, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return fmt.Errorf("corpus directory %s is locked by another process", dir)
	}
	defer lock.Unlock()

	if err := writeJSON(filepath.Join(dir, c.Category.File()), c.ok); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, c.Category.FailFile()), c.fail)
}

// Load reads a previously written corpus back from dir, mainly for
// regeneration diffing.
func Load(dir string, category Category) (*Corpus, error) {
	c := New(category)
	if err := readJSON(filepath.Join(dir, category.File()), &c.ok); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, category.FailFile()), &c.fail); err != nil {
		return nil, err
	}
	for _, v := range c.ok {
		rec, err := canonical("ok", v)
		if err != nil {
			return nil, err
		}
		if err := c.mark(rec); err != nil {
			return nil, fmt.Errorf("%w: %s", err, v.Name)
		}
	}
	for _, v := range c.fail {
		rec, err := canonical("fail", v)
		if err != nil {
			return nil, err
		}
		if err := c.mark(rec); err != nil {
			return nil, fmt.Errorf("%w: %s", err, v.Name)
		}
	}
	return c, nil
}

func writeJSON(path string, v interface{}) error {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	blob = append(blob, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func readJSON(path string, v interface{}) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(blob, v)
}
