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

// Package bw6761 implements the BW6-761 precompile codec on top of
// gnark-crypto: big-endian 96-byte field elements, 192-byte uncompressed
// points for both G1 and G2 (the sextic twist is defined over Fp), 64-byte
// multiplication scalars and the all-zero encoding for the point at infinity.
package bw6761

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bw6 "github.com/consensys/gnark-crypto/ecc/bw6-761"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fp"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"github.com/ecvector/vectorgen/crypto"
)

const (
	// FieldBytes is the canonical byte width of a base-field element.
	FieldBytes = fp.Bytes

	// PointBytes is the byte width of an uncompressed affine point, x || y.
	PointBytes = 2 * FieldBytes

	// ScalarBytes is the byte width of a multiplication scalar, interpreted
	// big-endian modulo the group order.
	ScalarBytes = 64

	// PairBytes is the byte width of one (G1, G2) pairing operand.
	PairBytes = 2 * PointBytes
)

// Curve coefficients: y² = x³ - 1 on G1, y² = x³ + 4 on the M-twist.
var (
	bG1 fp.Element
	bG2 fp.Element

	g1Gen bw6.G1Affine
	g2Gen bw6.G2Affine
)

func init() {
	bG1.SetOne()
	bG1.Neg(&bG1)
	bG2.SetUint64(4)
	_, _, g1Gen, g2Gen = bw6.Generators()
}

// G1Generator returns the fixed generator of the G1 subgroup.
func G1Generator() bw6.G1Affine { return g1Gen }

// G2Generator returns the fixed generator of the G2 subgroup.
func G2Generator() bw6.G2Affine { return g2Gen }

// FrModulus returns the order of the G1/G2 subgroups.
func FrModulus() *big.Int { return fr.Modulus() }

// FpModulus returns the base field modulus.
func FpModulus() *big.Int { return fp.Modulus() }

// DecodeFieldElement parses a canonical 96-byte big-endian field element.
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
// The all-zero encoding decodes to the point at infinity. Subgroup membership
// is not checked here; pairing inputs go through CheckG1Subgroup.
func DecodeG1(in []byte) (bw6.G1Affine, error) {
	var p bw6.G1Affine
	if len(in) != PointBytes {
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

// DecodeG2 parses an uncompressed G2 point. BW6-761's twist lives over Fp, so
// the wire format matches G1; only the curve equation differs.
func DecodeG2(in []byte) (bw6.G2Affine, error) {
	var p bw6.G2Affine
	if len(in) != PointBytes {
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

// DecodeScalar parses a 64-byte big-endian multiplication scalar, reduced
// modulo the group order. Reduction is exact for subgroup points, which is
// the only domain valid multiplication vectors draw from.
func DecodeScalar(in []byte) (*big.Int, error) {
	if len(in) != ScalarBytes {
		return nil, crypto.ErrInvalidInputLength
	}
	s := new(big.Int).SetBytes(in)
	return s.Mod(s, fr.Modulus()), nil
}

// EncodeG1 serializes p into the canonical 192-byte form.
func EncodeG1(p *bw6.G1Affine) []byte {
	out := make([]byte, PointBytes)
	if p.IsInfinity() {
		return out
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[:FieldBytes], x[:])
	copy(out[FieldBytes:], y[:])
	return out
}

// EncodeG2 serializes p into the canonical 192-byte form.
func EncodeG2(p *bw6.G2Affine) []byte {
	out := make([]byte, PointBytes)
	if p.IsInfinity() {
		return out
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[:FieldBytes], x[:])
	copy(out[FieldBytes:], y[:])
	return out
}

// CheckG1Subgroup verifies that p lies in the r-order subgroup. The point at
// infinity is a member by convention.
func CheckG1Subgroup(p *bw6.G1Affine) error {
	if !p.IsInfinity() && !p.IsInSubGroup() {
		return crypto.ErrG1Subgroup
	}
	return nil
}

// CheckG2Subgroup verifies that p lies in the r-order subgroup.
func CheckG2Subgroup(p *bw6.G2Affine) error {
	if !p.IsInfinity() && !p.IsInSubGroup() {
		return crypto.ErrG2Subgroup
	}
	return nil
}

// G1Add returns a + b.
func G1Add(a, b *bw6.G1Affine) bw6.G1Affine {
	var p, q bw6.G1Jac
	p.FromAffine(a)
	q.FromAffine(b)
	p.AddAssign(&q)
	var r bw6.G1Affine
	r.FromJacobian(&p)
	return r
}

// G2Add returns a + b.
func G2Add(a, b *bw6.G2Affine) bw6.G2Affine {
	var p, q bw6.G2Jac
	p.FromAffine(a)
	q.FromAffine(b)
	p.AddAssign(&q)
	var r bw6.G2Affine
	r.FromJacobian(&p)
	return r
}

// G1Mul returns s·a for a reduced scalar s.
func G1Mul(a *bw6.G1Affine, s *big.Int) bw6.G1Affine {
	var r bw6.G1Affine
	if a.IsInfinity() || s.Sign() == 0 {
		return r
	}
	r.ScalarMultiplication(a, s)
	return r
}

// G2Mul returns s·a for a reduced scalar s.
func G2Mul(a *bw6.G2Affine, s *big.Int) bw6.G2Affine {
	var r bw6.G2Affine
	if a.IsInfinity() || s.Sign() == 0 {
		return r
	}
	r.ScalarMultiplication(a, s)
	return r
}

// G1MultiExp returns the multi-scalar multiplication Σ sᵢ·pᵢ.
func G1MultiExp(points []bw6.G1Affine, scalars []fr.Element) (bw6.G1Affine, error) {
	var r bw6.G1Affine
	if _, err := r.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return r, err
	}
	return r, nil
}

// G2MultiExp returns the multi-scalar multiplication Σ sᵢ·pᵢ.
func G2MultiExp(points []bw6.G2Affine, scalars []fr.Element) (bw6.G2Affine, error) {
	var r bw6.G2Affine
	if _, err := r.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return r, err
	}
	return r, nil
}

// PairingCheck reports whether Π e(Pᵢ, Qᵢ) equals the identity of GT. All
// points must already be curve- and subgroup-checked.
func PairingCheck(g1s []bw6.G1Affine, g2s []bw6.G2Affine) (bool, error) {
	return bw6.PairingCheck(g1s, g2s)
}

// RandScalar draws a uniformly random element of the scalar field.
func RandScalar(rnd io.Reader) *big.Int {
	return crypto.RandBig(rnd, fr.Modulus())
}

// RandG1 draws a uniformly random point of the G1 subgroup.
func RandG1(rnd io.Reader) bw6.G1Affine {
	var p bw6.G1Affine
	p.ScalarMultiplication(&g1Gen, crypto.RandBigNonZero(rnd, fr.Modulus()))
	return p
}

// RandG2 draws a uniformly random point of the G2 subgroup.
func RandG2(rnd io.Reader) bw6.G2Affine {
	var p bw6.G2Affine
	p.ScalarMultiplication(&g2Gen, crypto.RandBigNonZero(rnd, fr.Modulus()))
	return p
}

// RandG1NotOnCurve draws random coordinates that do not satisfy the G1 curve
// equation.
func RandG1NotOnCurve(rnd io.Reader) bw6.G1Affine {
	for {
		var p bw6.G1Affine
		p.X.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		p.Y.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		if !p.IsOnCurve() {
			return p
		}
	}
}

// RandG2NotOnCurve draws random coordinates that do not satisfy the twist
// equation.
func RandG2NotOnCurve(rnd io.Reader) bw6.G2Affine {
	for {
		var p bw6.G2Affine
		p.X.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		p.Y.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		if !p.IsOnCurve() {
			return p
		}
	}
}

// RandG1OffSubgroup draws a point that satisfies the G1 curve equation but
// lies outside the r-order subgroup, by solving y² = x³ - 1 for random x.
func RandG1OffSubgroup(rnd io.Reader) bw6.G1Affine {
	for {
		var p bw6.G1Affine
		p.X.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		var ysq fp.Element
		ysq.Square(&p.X)
		ysq.Mul(&ysq, &p.X)
		ysq.Add(&ysq, &bG1)
		if p.Y.Sqrt(&ysq) == nil {
			continue
		}
		if !p.IsOnCurve() || p.IsInSubGroup() {
			continue
		}
		return p
	}
}

// RandG2OffSubgroup draws a point that satisfies the twist equation
// y² = x³ + 4 but lies outside the r-order subgroup.
func RandG2OffSubgroup(rnd io.Reader) bw6.G2Affine {
	for {
		var p bw6.G2Affine
		p.X.SetBigInt(crypto.RandBig(rnd, fp.Modulus()))
		var ysq fp.Element
		ysq.Square(&p.X)
		ysq.Mul(&ysq, &p.X)
		ysq.Add(&ysq, &bG2)
		if p.Y.Sqrt(&ysq) == nil {
			continue
		}
		if !p.IsOnCurve() || p.IsInSubGroup() {
			continue
		}
		return p
	}
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
