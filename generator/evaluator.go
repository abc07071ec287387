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
	"fmt"
	"math/big"

	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	bw6 "github.com/consensys/gnark-crypto/ecc/bw6-761"
	bw6fr "github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/ecvector/vectorgen/corpus"
	"github.com/ecvector/vectorgen/crypto"
	"github.com/ecvector/vectorgen/crypto/bn254"
	"github.com/ecvector/vectorgen/crypto/bw6761"
)

// Evaluate computes the authoritative expected output for a category input.
// It is a pure function: the reference semantics of the precompile under
// test, evaluated through the arithmetic provider. Decode, subgroup and
// signature failures are returned as errors wrapping the sentinels in the
// crypto package; callers record them as the vector's expected error tag.
func Evaluate(category corpus.Category, input []byte) ([]byte, error) {
	switch category {
	case corpus.BW6761G1Add:
		return runBW6761G1Add(input)
	case corpus.BW6761G1Mul:
		return runBW6761G1Mul(input)
	case corpus.BW6761G1MultiExp:
		return runBW6761G1MultiExp(input)
	case corpus.BW6761G2Add:
		return runBW6761G2Add(input)
	case corpus.BW6761G2Mul:
		return runBW6761G2Mul(input)
	case corpus.BW6761G2MultiExp:
		return runBW6761G2MultiExp(input)
	case corpus.BW6761Pairing:
		return runBW6761Pairing(input)
	case corpus.BN254Pairing:
		return runBN254Pairing(input)
	case corpus.ECRecover:
		return runECRecover(input)
	}
	return nil, fmt.Errorf("unknown category %q", category)
}

func runBW6761G1Add(input []byte) ([]byte, error) {
	if len(input) != 2*bw6761.PointBytes {
		return nil, crypto.ErrInvalidInputLength
	}
	a, err := bw6761.DecodeG1(input[:bw6761.PointBytes])
	if err != nil {
		return nil, err
	}
	b, err := bw6761.DecodeG1(input[bw6761.PointBytes:])
	if err != nil {
		return nil, err
	}
	r := bw6761.G1Add(&a, &b)
	return bw6761.EncodeG1(&r), nil
}

func runBW6761G2Add(input []byte) ([]byte, error) {
	if len(input) != 2*bw6761.PointBytes {
		return nil, crypto.ErrInvalidInputLength
	}
	a, err := bw6761.DecodeG2(input[:bw6761.PointBytes])
	if err != nil {
		return nil, err
	}
	b, err := bw6761.DecodeG2(input[bw6761.PointBytes:])
	if err != nil {
		return nil, err
	}
	r := bw6761.G2Add(&a, &b)
	return bw6761.EncodeG2(&r), nil
}

func runBW6761G1Mul(input []byte) ([]byte, error) {
	if len(input) != bw6761.PointBytes+bw6761.ScalarBytes {
		return nil, crypto.ErrInvalidInputLength
	}
	p, err := bw6761.DecodeG1(input[:bw6761.PointBytes])
	if err != nil {
		return nil, err
	}
	s, err := bw6761.DecodeScalar(input[bw6761.PointBytes:])
	if err != nil {
		return nil, err
	}
	r := bw6761.G1Mul(&p, s)
	return bw6761.EncodeG1(&r), nil
}

func runBW6761G2Mul(input []byte) ([]byte, error) {
	if len(input) != bw6761.PointBytes+bw6761.ScalarBytes {
		return nil, crypto.ErrInvalidInputLength
	}
	p, err := bw6761.DecodeG2(input[:bw6761.PointBytes])
	if err != nil {
		return nil, err
	}
	s, err := bw6761.DecodeScalar(input[bw6761.PointBytes:])
	if err != nil {
		return nil, err
	}
	r := bw6761.G2Mul(&p, s)
	return bw6761.EncodeG2(&r), nil
}

func runBW6761G1MultiExp(input []byte) ([]byte, error) {
	const termBytes = bw6761.PointBytes + bw6761.ScalarBytes
	if len(input) == 0 || len(input)%termBytes != 0 {
		return nil, crypto.ErrInvalidInputLength
	}
	var (
		points  []bw6.G1Affine
		scalars []bw6fr.Element
	)
	for off := 0; off < len(input); off += termBytes {
		p, err := bw6761.DecodeG1(input[off : off+bw6761.PointBytes])
		if err != nil {
			return nil, err
		}
		s, err := bw6761.DecodeScalar(input[off+bw6761.PointBytes : off+termBytes])
		if err != nil {
			return nil, err
		}
		// Terms with a zero factor contribute nothing; dropping them keeps
		// the MSM away from the affine-infinity edge.
		if p.IsInfinity() || s.Sign() == 0 {
			continue
		}
		var e bw6fr.Element
		e.SetBigInt(s)
		points = append(points, p)
		scalars = append(scalars, e)
	}
	if len(points) == 0 {
		var inf bw6.G1Affine
		return bw6761.EncodeG1(&inf), nil
	}
	r, err := bw6761.G1MultiExp(points, scalars)
	if err != nil {
		return nil, err
	}
	return bw6761.EncodeG1(&r), nil
}

func runBW6761G2MultiExp(input []byte) ([]byte, error) {
	const termBytes = bw6761.PointBytes + bw6761.ScalarBytes
	if len(input) == 0 || len(input)%termBytes != 0 {
		return nil, crypto.ErrInvalidInputLength
	}
	var (
		points  []bw6.G2Affine
		scalars []bw6fr.Element
	)
	for off := 0; off < len(input); off += termBytes {
		p, err := bw6761.DecodeG2(input[off : off+bw6761.PointBytes])
		if err != nil {
			return nil, err
		}
		s, err := bw6761.DecodeScalar(input[off+bw6761.PointBytes : off+termBytes])
		if err != nil {
			return nil, err
		}
		if p.IsInfinity() || s.Sign() == 0 {
			continue
		}
		var e bw6fr.Element
		e.SetBigInt(s)
		points = append(points, p)
		scalars = append(scalars, e)
	}
	if len(points) == 0 {
		var inf bw6.G2Affine
		return bw6761.EncodeG2(&inf), nil
	}
	r, err := bw6761.G2MultiExp(points, scalars)
	if err != nil {
		return nil, err
	}
	return bw6761.EncodeG2(&r), nil
}

func runBW6761Pairing(input []byte) ([]byte, error) {
	if len(input) == 0 || len(input)%bw6761.PairBytes != 0 {
		return nil, crypto.ErrInvalidInputLength
	}
	var (
		g1s []bw6.G1Affine
		g2s []bw6.G2Affine
	)
	for off := 0; off < len(input); off += bw6761.PairBytes {
		p, err := bw6761.DecodeG1(input[off : off+bw6761.PointBytes])
		if err != nil {
			return nil, err
		}
		if err := bw6761.CheckG1Subgroup(&p); err != nil {
			return nil, err
		}
		q, err := bw6761.DecodeG2(input[off+bw6761.PointBytes : off+bw6761.PairBytes])
		if err != nil {
			return nil, err
		}
		if err := bw6761.CheckG2Subgroup(&q); err != nil {
			return nil, err
		}
		g1s = append(g1s, p)
		g2s = append(g2s, q)
	}
	ok, err := bw6761.PairingCheck(g1s, g2s)
	if err != nil {
		return nil, err
	}
	return pairingOutput(ok), nil
}

func runBN254Pairing(input []byte) ([]byte, error) {
	if len(input)%bn254.PairBytes != 0 {
		return nil, crypto.ErrInvalidInputLength
	}
	// The empty product is the identity: zero pairs check out.
	if len(input) == 0 {
		return pairingOutput(true), nil
	}
	var (
		g1s []bn.G1Affine
		g2s []bn.G2Affine
	)
	for off := 0; off < len(input); off += bn254.PairBytes {
		p, err := bn254.DecodeG1(input[off : off+bn254.G1Bytes])
		if err != nil {
			return nil, err
		}
		q, err := bn254.DecodeG2(input[off+bn254.G1Bytes : off+bn254.PairBytes])
		if err != nil {
			return nil, err
		}
		if err := bn254.CheckG2Subgroup(&q); err != nil {
			return nil, err
		}
		g1s = append(g1s, p)
		g2s = append(g2s, q)
	}
	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		return nil, err
	}
	return pairingOutput(ok), nil
}

const ecRecoverInputLength = 128

func runECRecover(input []byte) ([]byte, error) {
	if len(input) != ecRecoverInputLength {
		return nil, crypto.ErrInvalidInputLength
	}
	// The recovery id is a 32-byte big-endian word holding 27 or 28.
	for _, b := range input[32:63] {
		if b != 0 {
			return nil, fmt.Errorf("%w: recovery id word has dirty upper bytes", crypto.ErrInvalidSignature)
		}
	}
	v := input[63]
	if v != 27 && v != 28 {
		return nil, fmt.Errorf("%w: recovery id out of range", crypto.ErrInvalidSignature)
	}
	r := new(big.Int).SetBytes(input[64:96])
	s := new(big.Int).SetBytes(input[96:128])
	if !crypto.ValidateSignatureValues(v-27, r, s, false) {
		return nil, fmt.Errorf("%w: r or s out of range", crypto.ErrInvalidSignature)
	}
	sig := make([]byte, crypto.SignatureLength)
	copy(sig, input[64:128])
	sig[crypto.RecoveryIDOffset] = v - 27

	pub, err := crypto.Ecrecover(input[:32], sig)
	if err != nil {
		return nil, fmt.Errorf("%w: no public key recovered", crypto.ErrInvalidSignature)
	}
	out := make([]byte, 32)
	copy(out[12:], crypto.Keccak256(pub[1:])[12:])
	return out, nil
}

func pairingOutput(ok bool) []byte {
	out := make([]byte, 32)
	if ok {
		out[31] = 1
	}
	return out
}
