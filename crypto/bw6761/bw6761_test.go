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

package bw6761

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	bw6 "github.com/consensys/gnark-crypto/ecc/bw6-761"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"golang.org/x/crypto/sha3"

	"github.com/ecvector/vectorgen/crypto"
)

// testRand returns an infinite deterministic stream so the tests never depend
// on the environment.
func testRand(domain string) sha3.ShakeHash {
	h := sha3.NewShake256()
	h.Write([]byte("bw6761-test/" + domain))
	return h
}

func TestG1Roundtrip(t *testing.T) {
	rnd := testRand("g1-roundtrip")
	for i := 0; i < 10; i++ {
		p := RandG1(rnd)
		enc := EncodeG1(&p)
		if len(enc) != PointBytes {
			t.Fatalf("encoding length %d, want %d", len(enc), PointBytes)
		}
		q, err := DecodeG1(enc)
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
		q, err := DecodeG2(EncodeG2(&p))
		if err != nil {
			t.Fatal(err)
		}
		if !p.Equal(&q) {
			t.Fatalf("roundtrip mismatch at %d", i)
		}
	}
}

func TestInfinityEncoding(t *testing.T) {
	var inf bw6.G1Affine
	enc := EncodeG1(&inf)
	if !bytes.Equal(enc, make([]byte, PointBytes)) {
		t.Error("infinity does not encode to all zeroes")
	}
	p, err := DecodeG1(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInfinity() {
		t.Error("all-zero encoding does not decode to infinity")
	}
}

func TestDecodeErrors(t *testing.T) {
	rnd := testRand("decode-errors")

	if _, err := DecodeG1(make([]byte, PointBytes-1)); !errors.Is(err, crypto.ErrInvalidInputLength) {
		t.Errorf("short input: got %v", err)
	}
	// x at the modulus is a non-canonical field element.
	in := make([]byte, PointBytes)
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

func TestDecodeScalarReduces(t *testing.T) {
	in := make([]byte, ScalarBytes)
	for i := range in {
		in[i] = 0xff
	}
	s, err := DecodeScalar(in)
	if err != nil {
		t.Fatal(err)
	}
	if s.Cmp(FrModulus()) >= 0 {
		t.Error("scalar not reduced")
	}
	if _, err := DecodeScalar(in[:ScalarBytes-1]); !errors.Is(err, crypto.ErrInvalidInputLength) {
		t.Errorf("short scalar: got %v", err)
	}
}

func TestG1AddProperties(t *testing.T) {
	rnd := testRand("g1-add")
	var inf bw6.G1Affine
	p := RandG1(rnd)
	q := RandG1(rnd)

	// commutativity
	pq := G1Add(&p, &q)
	qp := G1Add(&q, &p)
	if !pq.Equal(&qp) {
		t.Error("addition is not commutative")
	}
	// identity
	r := G1Add(&p, &inf)
	if !r.Equal(&p) {
		t.Error("infinity is not the identity")
	}
	// inverse
	var n bw6.G1Affine
	n.Neg(&p)
	r = G1Add(&p, &n)
	if !r.IsInfinity() {
		t.Error("P + (-P) != infinity")
	}
	// doubling equals 2P
	d := G1Add(&p, &p)
	two := G1Mul(&p, big.NewInt(2))
	if !d.Equal(&two) {
		t.Error("P + P != 2P")
	}
}

func TestG2AddProperties(t *testing.T) {
	rnd := testRand("g2-add")
	p := RandG2(rnd)
	d := G2Add(&p, &p)
	two := G2Mul(&p, big.NewInt(2))
	if !d.Equal(&two) {
		t.Error("P + P != 2P")
	}
}

func TestMulEdgeCases(t *testing.T) {
	rnd := testRand("mul-edges")
	p := RandG1(rnd)

	if r := G1Mul(&p, new(big.Int)); !r.IsInfinity() {
		t.Error("0 * P != infinity")
	}
	if r := G1Mul(&p, big.NewInt(1)); !r.Equal(&p) {
		t.Error("1 * P != P")
	}
	var inf bw6.G1Affine
	if r := G1Mul(&inf, big.NewInt(7)); !r.IsInfinity() {
		t.Error("7 * infinity != infinity")
	}
	// r * P = infinity for subgroup points
	if r := G1Mul(&p, FrModulus()); !r.IsInfinity() {
		t.Error("r * P != infinity")
	}
}

func TestMultiExpMatchesNaive(t *testing.T) {
	rnd := testRand("multiexp")
	var (
		points  []bw6.G1Affine
		scalars []fr.Element
		acc     bw6.G1Affine
	)
	for i := 0; i < 5; i++ {
		p := RandG1(rnd)
		s := RandScalar(rnd)
		term := G1Mul(&p, s)
		acc = G1Add(&acc, &term)
		var e fr.Element
		e.SetBigInt(s)
		points = append(points, p)
		scalars = append(scalars, e)
	}
	got, err := G1MultiExp(points, scalars)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(&acc) {
		t.Error("multiexp disagrees with naive sum")
	}
}

func TestSubgroupChecks(t *testing.T) {
	rnd := testRand("subgroup")
	p := RandG1(rnd)
	if err := CheckG1Subgroup(&p); err != nil {
		t.Errorf("subgroup point rejected: %v", err)
	}
	var inf bw6.G1Affine
	if err := CheckG1Subgroup(&inf); err != nil {
		t.Errorf("infinity rejected: %v", err)
	}
	off := RandG1OffSubgroup(rnd)
	if !off.IsOnCurve() {
		t.Fatal("off-subgroup point is not on the curve")
	}
	if err := CheckG1Subgroup(&off); !errors.Is(err, crypto.ErrG1Subgroup) {
		t.Errorf("off-subgroup point accepted: %v", err)
	}
	offG2 := RandG2OffSubgroup(rnd)
	if !offG2.IsOnCurve() {
		t.Fatal("off-subgroup G2 point is not on the twist")
	}
	if err := CheckG2Subgroup(&offG2); !errors.Is(err, crypto.ErrG2Subgroup) {
		t.Errorf("off-subgroup G2 point accepted: %v", err)
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
	// e(aG1, bG2) * e(-abG1, G2) == 1
	p1 := G1Mul(&g1, a)
	q1 := G2Mul(&g2, b)
	ab := new(big.Int).Mul(a, b)
	ab.Mod(ab, FrModulus())
	neg := new(big.Int).Sub(FrModulus(), ab)
	p2 := G1Mul(&g1, neg)

	ok, err := PairingCheck([]bw6.G1Affine{p1, p2}, []bw6.G2Affine{q1, g2})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("bilinearity identity does not check out")
	}

	// The plain generator pair is not the identity.
	ok, err = PairingCheck([]bw6.G1Affine{g1}, []bw6.G2Affine{g2})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("e(G1, G2) reported as identity")
	}
}
