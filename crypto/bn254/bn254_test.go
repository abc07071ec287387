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

package bn254

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	"golang.org/x/crypto/sha3"

	"github.com/ecvector/vectorgen/crypto"
)

func testRand(domain string) sha3.ShakeHash {
	h := sha3.NewShake256()
	h.Write([]byte("bn254-test/" + domain))
	return h
}

func TestG1Roundtrip(t *testing.T) {
	rnd := testRand("g1-roundtrip")
	for i := 0; i < 10; i++ {
		p := RandG1(rnd)
		q, err := DecodeG1(EncodeG1(&p))
		if err != nil {
			t.Fatal(err)
		}
		if !p.Equal(&q) {
			t.Fatalf("roundtrip mismatch at %d", i)
		}
	}
}

func TestG2Roundtrip(t *testing.T) {
	rnd := testRand("g2-roundtrip")
	for i := 0; i < 10; i++ {
		p := RandG2(rnd)
		enc := EncodeG2(&p)
		if len(enc) != G2Bytes {
			t.Fatalf("encoding length %d, want %d", len(enc), G2Bytes)
		}
		q, err := DecodeG2(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !p.Equal(&q) {
			t.Fatalf("roundtrip mismatch at %d", i)
		}
	}
}

// TestG2CoefficientOrder pins the wire layout: the imaginary coefficient
// comes first within each coordinate.
func TestG2CoefficientOrder(t *testing.T) {
	g := G2Generator()
	enc := EncodeG2(&g)

	xc1 := g.X.A1.Bytes()
	xc0 := g.X.A0.Bytes()
	if !bytes.Equal(enc[:FieldBytes], xc1[:]) {
		t.Error("x.c1 is not the first coordinate on the wire")
	}
	if !bytes.Equal(enc[FieldBytes:2*FieldBytes], xc0[:]) {
		t.Error("x.c0 is not the second coordinate on the wire")
	}
}

func TestInfinityEncoding(t *testing.T) {
	var infG1 bn.G1Affine
	var infG2 bn.G2Affine
	if !bytes.Equal(EncodeG1(&infG1), make([]byte, G1Bytes)) {
		t.Error("G1 infinity does not encode to all zeroes")
	}
	if !bytes.Equal(EncodeG2(&infG2), make([]byte, G2Bytes)) {
		t.Error("G2 infinity does not encode to all zeroes")
	}
	p, err := DecodeG2(make([]byte, G2Bytes))
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInfinity() {
		t.Error("all-zero encoding does not decode to infinity")
	}
}

func TestDecodeErrors(t *testing.T) {
	rnd := testRand("decode-errors")

	if _, err := DecodeG1(make([]byte, G1Bytes+1)); !errors.Is(err, crypto.ErrInvalidInputLength) {
		t.Errorf("long input: got %v", err)
	}
	in := make([]byte, G1Bytes)
	FpModulus().FillBytes(in[:FieldBytes])
	if _, err := DecodeG1(in); !errors.Is(err, crypto.ErrInvalidFieldElement) {
		t.Errorf("large field element: got %v", err)
	}
	bad := RandG1NotOnCurve(rnd)
	if _, err := DecodeG1(EncodeG1(&bad)); !errors.Is(err, crypto.ErrPointNotOnCurve) {
		t.Errorf("off-curve point: got %v", err)
	}
	badTwist := RandG2NotOnCurve(rnd)
	if _, err := DecodeG2(EncodeG2(&badTwist)); !errors.Is(err, crypto.ErrPointNotOnCurve) {
		t.Errorf("off-twist point: got %v", err)
	}
}

func TestG2Subgroup(t *testing.T) {
	rnd := testRand("subgroup")
	p := RandG2(rnd)
	if err := CheckG2Subgroup(&p); err != nil {
		t.Errorf("subgroup point rejected: %v", err)
	}
	off := RandG2OffSubgroup(rnd)
	if !off.IsOnCurve() {
		t.Fatal("off-subgroup point is not on the twist")
	}
	if err := CheckG2Subgroup(&off); !errors.Is(err, crypto.ErrG2Subgroup) {
		t.Errorf("off-subgroup point accepted: %v", err)
	}
}

func TestPairingBilinearity(t *testing.T) {
	rnd := testRand("pairing")
	var (
		g1 = G1Generator()
		g2 = G2Generator()
		a  = RandScalar(rnd)
		b  = RandScalar(rnd)
	)
	var p1, p2 bn.G1Affine
	var q1 bn.G2Affine
	p1.ScalarMultiplication(&g1, a)
	q1.ScalarMultiplication(&g2, b)

	ab := new(big.Int).Mul(a, b)
	ab.Mod(ab, FrModulus())
	neg := new(big.Int).Sub(FrModulus(), ab)
	p2.ScalarMultiplication(&g1, neg)

	ok, err := PairingCheck([]bn.G1Affine{p1, p2}, []bn.G2Affine{q1, g2})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("bilinearity identity does not check out")
	}

	ok, err = PairingCheck([]bn.G1Affine{g1}, []bn.G2Affine{g2})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("e(G1, G2) reported as identity")
	}
}

func TestPairingWithInfinity(t *testing.T) {
	rnd := testRand("pairing-inf")
	var infG1 bn.G1Affine
	q := RandG2(rnd)
	ok, err := PairingCheck([]bn.G1Affine{infG1}, []bn.G2Affine{q})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("e(infinity, Q) is not the identity")
	}
}
