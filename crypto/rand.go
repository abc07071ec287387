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

package crypto

import (
	"io"
	"math/big"
)

// RandBytes reads exactly n bytes from rnd. The generator only ever hands in
// infinite deterministic streams, so a short read is a programming error.
func RandBytes(rnd io.Reader, n int) []byte {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		panic("short read from deterministic stream: " + err.Error())
	}
	return buf
}

// RandBig returns a uniformly distributed integer in [0, mod). The stream is
// oversampled by 128 bits so the modular bias is negligible.
func RandBig(rnd io.Reader, mod *big.Int) *big.Int {
	buf := RandBytes(rnd, (mod.BitLen()+7)/8+16)
	n := new(big.Int).SetBytes(buf)
	return n.Mod(n, mod)
}

// RandBigNonZero returns a uniformly distributed integer in [1, mod).
func RandBigNonZero(rnd io.Reader, mod *big.Int) *big.Int {
	for {
		if n := RandBig(rnd, mod); n.Sign() != 0 {
			return n
		}
	}
}
