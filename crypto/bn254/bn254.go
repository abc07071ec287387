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

// Package bn254 implements the BN254 pairing precompile codec on top of
// gnark-crypto: 32-byte big-endian field elements, 64-byte G1 points,
// 128-byte G2 points with the imaginary Fp2 coefficient first, and the
// all-zero encoding for the point at infinity.
package bn254

import (
	"fmt"
	"io"
	"math/big"

	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/ecvector/vectorgen/crypto"
)

const (
	// FieldBytes is the canonical byte width of a base-field element.
	FieldBytes = fp.Bytes

	// G1Bytes is the byte width of an uncompressed G1 point, x || y.
	G1Bytes = 2 * FieldBytes

	// G2Bytes is the byte width of an uncompressed G2 point,
	// x.c1 || x.c0 || y.c1 || y.c0.
	G2Bytes = 4 * FieldBytes

	// PairBytes is the byte width of one (G1, G2) pairing operand.
	PairBytes = G1Bytes + G2Bytes
)

var (
	g1Generator bn.G1Affine
	g2Generator bn.G2Affine
)

func init() {
	_, _, g1Generator, g2Generator = bn.Generators()
}

// G1Generator returns the fixed generator of G1.
func G1Generator() bn.G1Affine { return g1Generator }

// G2Generator returns the fixed generator of the G2 subgroup.
func G2Generator() bn.G2Affine { return g2Generator }

// FrModulus returns the order of the G1/G2 subgroups.
func FrModulus() *big.Int { return fr.Modulus() }

// FpModulus returns the base field modulus.
func FpModulus() *big.Int { return fp.Modulus() }

// DecodeFieldElement parses a canonical 32-byte big-endian field element.
func DecodeFieldElement(in []byte) (fp.Element, error) {
	var e fp.Element
	if len(in) != FieldBytes {
		return e, crypto.ErrInvalidInputLength
	}
	if err := e.SetBytesCanonical(in); err != nil {
		return e, fmt.Errorf("%w: must be less than modulus", crypto.ErrInvalidFieldElement)
	}
	return e, nil
}

// DecodeG1 parses an uncompressed G1 point and verifies the curve equation.
// G1 has cofactor one, so on-curve implies subgroup membership.
func DecodeG1(in []byte) (bn.G1Affine, error) {
	var p bn.G1Affine
	if len(in) != G1Bytes {
		return p, crypto.ErrInvalidInputLength
	}
	if allZero(in) {
		return p, nil
	}
	x, err := DecodeFieldElement(in[:FieldBytes])
	if err != nil {
		return p, err
	}
	y, err := DecodeFieldElement(in[FieldBytes:])
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	if !p.IsOnCurve() {
		return p, crypto.ErrPointNotOnCurve
	}
	return p, nil
}

// DecodeG2 parses an uncompressed G2 point and verifies the twist equation.
// Subgroup membership is checked separately via CheckG2Subgroup.
func DecodeG2(in []byte) (bn.G2Affine, error) {
	var p bn.G2Affine
	if len(in) != G2Bytes {
		return p, crypto.ErrInvalidInputLength
	}
	if allZero(in) {
		return p, nil
	}
	xc1, err := DecodeFieldElement(in[0*FieldBytes : 1*FieldBytes])
	if err != nil {
		return p, err
	}
	xc0, err := DecodeFieldElement(in[1*FieldBytes : 2*FieldBytes])
	if err != nil {
		return p, err
	}
	yc1, err := DecodeFieldElement(in[2*FieldBytes : 3*FieldBytes])
	if err != nil {
		return p, err
	}
	yc0, err := DecodeFieldElement(in[3*FieldBytes : 4*FieldBytes])
	if err != nil {
		return p, err
	}
	p.X.A0, p.X.A1 = xc0, xc1
	p.Y.A0, p.Y.A1 = yc0, yc1
	if !p.IsOnCurve() {
		return p, crypto.ErrPointNotOnCurve
	}
	return p, nil
}

// EncodeG1 serializes p into the canonical 64-byte form.
func EncodeG1(p *bn.G1Affine) []byte {
	out := make([]byte, G1Bytes)
	if p.IsInfinity() {
		return out
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[:FieldBytes], x[:])
	copy(out[FieldBytes:], y[:])
	return out
}

// EncodeG2 serializes p into the canonical 128-byte form, imaginary
// coefficients first.
func EncodeG2(p *bn.G2Affine) []byte {
	out := make([]byte, G2Bytes)
	if p.IsInfinity() {
		return out
	}
	xc1 := p.X.A1.Bytes()
	xc0 := p.X.A0.Bytes()
	yc1 := p.Y.A1.Bytes()
	yc0 := p.Y.A0.Bytes()
	copy(out[0*FieldBytes:], xc1[:])
	copy(out[1*FieldBytes:], xc0[:])
	copy(out[2*FieldBytes:], yc1[:])
	copy(out[3*FieldBytes:], yc0[:])
	return out
}

// CheckG2Subgroup verifies that p lies in the r-order subgroup.
func CheckG2Subgroup(p *bn.G2Affine) error {
	if !p.IsInfinity() && !p.IsInSubGroup() {
		return crypto.ErrG2Subgroup
	}
	return nil
}

// PairingCheck reports whether Π e(Pᵢ, Qᵢ) equals the identity of GT. All
// points must already be curve- and subgroup-checked.
func PairingCheck(g1s []bn.G1Affine, g2s []bn.G2Affine) (bool, error) {
	return bn.PairingCheck(g1s, g2s)
}

// RandScalar draws a uniformly random element of the scalar field.
func RandScalar(rnd io.Reader) *big.Int {
	return crypto.RandBig(rnd, fr.Modulus())
}

// RandG1 draws a uniformly random point of G1.
func RandG1(rnd io.Reader) bn.G1Affine {
	var p bn.G1Affine
	p.ScalarMultiplication(&g1Generator, crypto.RandBigNonZero(rnd, fr.Modulus()))
	return p
}

// RandG2 draws a uniformly random point of the G2 subgroup.
func RandG2(rnd io.Reader) bn.G2Affine {
	var p bn.G2Affine
	p.ScalarMultiplication(&g2Generator, crypto.RandBigNonZero(rnd, fr.Modulus()))
	return p
}

// RandG1NotOnCurve draws random coordinates that do not satisfy y² = x³ + 3.
func RandG1NotOnCurve(rnd io.Reader) bn.G1Affine {
	for {
		var p bn.G1Affine
		p.X.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		p.Y.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		if !p.IsOnCurve() {
			return p
		}
	}
}

// RandG2NotOnCurve draws random Fp2 coordinates that do not satisfy the twist
// equation.
func RandG2NotOnCurve(rnd io.Reader) bn.G2Affine {
	for {
		var p bn.G2Affine
		p.X.A0.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		p.X.A1.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		p.Y.A0.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		p.Y.A1.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		if !p.IsOnCurve() {
			return p
		}
	}
}

// RandG2OffSubgroup draws a point that satisfies the twist equation but lies
// outside the r-order subgroup. The twist has a non-trivial cofactor, so
// solving y² = x³ + b' for random x almost never lands in the subgroup.
func RandG2OffSubgroup(rnd io.Reader) bn.G2Affine {
	b := twistB()
	for {
		var p, t bn.G2Affine
		p.X.A0.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		p.X.A1.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		// t.X = x³ + b'
		t.X.Square(&p.X)
		t.X.Mul(&t.X, &p.X)
		t.X.Add(&t.X, &b.X)
		if t.X.Legendre() != 1 {
			continue
		}
		p.Y.Sqrt(&t.X)
		if !p.IsOnCurve() || p.IsInSubGroup() {
			continue
		}
		return p
	}
}

// twistB computes the twist coefficient b' = 3/(9+u). gnark-crypto keeps its
// Fp2 tower internal, so the value is carried in the X field of a G2 point.
func twistB() bn.G2Affine {
	var t bn.G2Affine
	t.X.A0.SetUint64(9)
	t.X.A1.SetOne()
	t.X.Inverse(&t.X)
	var three fp.Element
	three.SetUint64(3)
	t.X.MulByElement(&t.X, &three)
	return t
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
