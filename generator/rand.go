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

package generator

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/ecvector/vectorgen/corpus"
)

// drbgDomain pins the pseudo-random construction. Changing the algorithm or
// the key layout breaks reproduction of historical seeds, so it bumps the
// version suffix.
const drbgDomain = "vectorgen/shake256/v1"

// stream derives the deterministic byte stream for one vector. Every
// (seed, category, kind, index) tuple gets an independent SHAKE256 XOF, so a
// single vector can be regenerated in isolation and parallel workers share no
// state.
func stream(seed uint64, category corpus.Category, kind string, index uint64) io.Reader {
	h := sha3.NewShake256()
	var buf [8]byte
	io.WriteString(h, drbgDomain)
	binary.BigEndian.PutUint64(buf[:], seed)
	h.Write(buf[:])
	io.WriteString(h, string(category))
	io.WriteString(h, "/")
	io.WriteString(h, kind)
	binary.BigEndian.PutUint64(buf[:], index)
	h.Write(buf[:])
	return h
}
