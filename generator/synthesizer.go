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
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	bw6 "github.com/consensys/gnark-crypto/ecc/bw6-761"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"

	"github.com/ecvector/vectorgen/corpus"
	"github.com/ecvector/vectorgen/crypto"
	"github.com/ecvector/vectorgen/crypto/bn254"
	"github.com/ecvector/vectorgen/crypto/bw6761"
)

// plan names one candidate input and knows how to synthesize it from a
// deterministic stream. Success plans must evaluate cleanly, failure plans
// must evaluate to an error; either violation is a harness bug and aborts
// the run.
type plan struct {
	name string
	make func(rnd io.Reader) []byte
}

// successPlans returns the positive vector schedule for a category: the fixed
// algebraic edge cases first, then count seed-derived random cases.
func successPlans(category corpus.Category, count int) []plan {
	switch category {
	case corpus.BW6761G1Add:
		return bw6G1AddPlans(count)
	case corpus.BW6761G1Mul:
		return bw6G1MulPlans(count)
	case corpus.BW6761G1MultiExp:
		return bw6G1MultiExpPlans(count)
	case corpus.BW6761G2Add:
		return bw6G2AddPlans(count)
	case corpus.BW6761G2Mul:
		return bw6G2MulPlans(count)
	case corpus.BW6761G2MultiExp:
		return bw6G2MultiExpPlans(count)
	case corpus.BW6761Pairing:
		return bw6PairingPlans(count)
	case corpus.BN254Pairing:
		return bn254PairingPlans(count)
	case corpus.ECRecover:
		return ecRecoverPlans(count)
	}
	return nil
}

func bw6G1AddPlans(count int) []plan {
	plans := []plan{
		{"g1_add_generator_doubling", func(rnd io.Reader) []byte {
			g := bw6761.G1Generator()
			return cat(bw6761.EncodeG1(&g), bw6761.EncodeG1(&g))
		}},
		{"g1_add_infinity_left", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			return cat(make([]byte, bw6761.PointBytes), bw6761.EncodeG1(&p))
		}},
		{"g1_add_infinity_both", func(rnd io.Reader) []byte {
			return make([]byte, 2*bw6761.PointBytes)
		}},
		{"g1_add_inverse", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			var n bw6.G1Affine
			n.Neg(&p)
			return cat(bw6761.EncodeG1(&p), bw6761.EncodeG1(&n))
		}},
	}
	for i := 0; i < count; i++ {
		plans = append(plans, plan{fmt.Sprintf("g1_add_%d", i+1), func(rnd io.Reader) []byte {
			a := bw6761.RandG1(rnd)
			b := bw6761.RandG1(rnd)
			return cat(bw6761.EncodeG1(&a), bw6761.EncodeG1(&b))
		}})
	}
	return plans
}

func bw6G2AddPlans(count int) []plan {
	plans := []plan{
		{"g2_add_generator_doubling", func(rnd io.Reader) []byte {
			g := bw6761.G2Generator()
			return cat(bw6761.EncodeG2(&g), bw6761.EncodeG2(&g))
		}},
		{"g2_add_infinity_left", func(rnd io.Reader) []byte {
			p := bw6761.RandG2(rnd)
			return cat(make([]byte, bw6761.PointBytes), bw6761.EncodeG2(&p))
		}},
		{"g2_add_inverse", func(rnd io.Reader) []byte {
			p := bw6761.RandG2(rnd)
			var n bw6.G2Affine
			n.Neg(&p)
			return cat(bw6761.EncodeG2(&p), bw6761.EncodeG2(&n))
		}},
	}
	for i := 0; i < count; i++ {
		plans = append(plans, plan{fmt.Sprintf("g2_add_%d", i+1), func(rnd io.Reader) []byte {
			a := bw6761.RandG2(rnd)
			b := bw6761.RandG2(rnd)
			return cat(bw6761.EncodeG2(&a), bw6761.EncodeG2(&b))
		}})
	}
	return plans
}

func bw6G1MulPlans(count int) []plan {
	plans := []plan{
		{"g1_mul_zero_scalar", func(rnd io.Reader) []byte {
			g := bw6761.G1Generator()
			return cat(bw6761.EncodeG1(&g), make([]byte, bw6761.ScalarBytes))
		}},
		{"g1_mul_one_scalar", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			return cat(bw6761.EncodeG1(&p), scalar64(big.NewInt(1)))
		}},
		{"g1_mul_order_minus_one", func(rnd io.Reader) []byte {
			g := bw6761.G1Generator()
			rm1 := new(big.Int).Sub(bw6761.FrModulus(), big.NewInt(1))
			return cat(bw6761.EncodeG1(&g), scalar64(rm1))
		}},
		{"g1_mul_worst_case_scalar", func(rnd io.Reader) []byte {
			g := bw6761.G1Generator()
			s := make([]byte, bw6761.ScalarBytes)
			for i := range s {
				s[i] = 0xff
			}
			return cat(bw6761.EncodeG1(&g), s)
		}},
		{"g1_mul_infinity_point", func(rnd io.Reader) []byte {
			return cat(make([]byte, bw6761.PointBytes), scalar64(bw6761.RandScalar(rnd)))
		}},
	}
	for i := 0; i < count; i++ {
		plans = append(plans, plan{fmt.Sprintf("g1_mul_%d", i+1), func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			return cat(bw6761.EncodeG1(&p), scalar64(bw6761.RandScalar(rnd)))
		}})
	}
	return plans
}

func bw6G2MulPlans(count int) []plan {
	plans := []plan{
		{"g2_mul_zero_scalar", func(rnd io.Reader) []byte {
			g := bw6761.G2Generator()
			return cat(bw6761.EncodeG2(&g), make([]byte, bw6761.ScalarBytes))
		}},
		{"g2_mul_order_minus_one", func(rnd io.Reader) []byte {
			g := bw6761.G2Generator()
			rm1 := new(big.Int).Sub(bw6761.FrModulus(), big.NewInt(1))
			return cat(bw6761.EncodeG2(&g), scalar64(rm1))
		}},
		{"g2_mul_worst_case_scalar", func(rnd io.Reader) []byte {
			g := bw6761.G2Generator()
			s := make([]byte, bw6761.ScalarBytes)
			for i := range s {
				s[i] = 0xff
			}
			return cat(bw6761.EncodeG2(&g), s)
		}},
	}
	for i := 0; i < count; i++ {
		plans = append(plans, plan{fmt.Sprintf("g2_mul_%d", i+1), func(rnd io.Reader) []byte {
			p := bw6761.RandG2(rnd)
			return cat(bw6761.EncodeG2(&p), scalar64(bw6761.RandScalar(rnd)))
		}})
	}
	return plans
}

func bw6G1MultiExpPlans(count int) []plan {
	plans := []plan{
		{"g1_multiexp_single_zero_scalar", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			return cat(bw6761.EncodeG1(&p), make([]byte, bw6761.ScalarBytes))
		}},
		{"g1_multiexp_cancellation", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			var n bw6.G1Affine
			n.Neg(&p)
			s := scalar64(bw6761.RandScalar(rnd))
			return cat(bw6761.EncodeG1(&p), s, bw6761.EncodeG1(&n), s)
		}},
	}
	for i := 0; i < count; i++ {
		terms := i%7 + 2
		plans = append(plans, plan{fmt.Sprintf("g1_multiexp_%d", i+1), func(rnd io.Reader) []byte {
			var in []byte
			for j := 0; j < terms; j++ {
				p := bw6761.RandG1(rnd)
				in = append(in, cat(bw6761.EncodeG1(&p), scalar64(bw6761.RandScalar(rnd)))...)
			}
			return in
		}})
	}
	return plans
}

func bw6G2MultiExpPlans(count int) []plan {
	plans := []plan{
		{"g2_multiexp_cancellation", func(rnd io.Reader) []byte {
			p := bw6761.RandG2(rnd)
			var n bw6.G2Affine
			n.Neg(&p)
			s := scalar64(bw6761.RandScalar(rnd))
			return cat(bw6761.EncodeG2(&p), s, bw6761.EncodeG2(&n), s)
		}},
	}
	for i := 0; i < count; i++ {
		terms := i%7 + 2
		plans = append(plans, plan{fmt.Sprintf("g2_multiexp_%d", i+1), func(rnd io.Reader) []byte {
			var in []byte
			for j := 0; j < terms; j++ {
				p := bw6761.RandG2(rnd)
				in = append(in, cat(bw6761.EncodeG2(&p), scalar64(bw6761.RandScalar(rnd)))...)
			}
			return in
		}})
	}
	return plans
}

func bw6PairingPlans(count int) []plan {
	plans := []plan{
		// The generator pair evaluates to a non-trivial element of GT.
		{"pairing_generator_pair", func(rnd io.Reader) []byte {
			g1 := bw6761.G1Generator()
			g2 := bw6761.G2Generator()
			return cat(bw6761.EncodeG1(&g1), bw6761.EncodeG2(&g2))
		}},
		{"pairing_g1_infinity", func(rnd io.Reader) []byte {
			q := bw6761.RandG2(rnd)
			return cat(make([]byte, bw6761.PointBytes), bw6761.EncodeG2(&q))
		}},
		{"pairing_g2_infinity", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			return cat(bw6761.EncodeG1(&p), make([]byte, bw6761.PointBytes))
		}},
	}
	for i := 0; i < count; i++ {
		if i%2 == 0 {
			pairs := i%3 + 2
			plans = append(plans, plan{fmt.Sprintf("pairing_identity_product_%d", i+1), func(rnd io.Reader) []byte {
				return bw6IdentityProduct(rnd, pairs)
			}})
		} else {
			pairs := i%3 + 1
			plans = append(plans, plan{fmt.Sprintf("pairing_nontrivial_%d", i+1), func(rnd io.Reader) []byte {
				var in []byte
				for j := 0; j < pairs; j++ {
					p := bw6761.RandG1(rnd)
					q := bw6761.RandG2(rnd)
					in = append(in, cat(bw6761.EncodeG1(&p), bw6761.EncodeG2(&q))...)
				}
				return in
			}})
		}
	}
	return plans
}

// bw6IdentityProduct builds pairs whose pairing product telescopes to the
// identity: n-1 random pairs (e1·G1, e2·G2) and a closing pair
// (-Σe1e2·G1, G2).
func bw6IdentityProduct(rnd io.Reader, pairs int) []byte {
	var (
		in  []byte
		acc = new(big.Int)
		r   = bw6761.FrModulus()
		g1  = bw6761.G1Generator()
		g2  = bw6761.G2Generator()
	)
	for j := 0; j < pairs-1; j++ {
		e1 := bw6761.RandScalar(rnd)
		e2 := bw6761.RandScalar(rnd)
		p := bw6761.G1Mul(&g1, e1)
		q := bw6761.G2Mul(&g2, e2)
		in = append(in, cat(bw6761.EncodeG1(&p), bw6761.EncodeG2(&q))...)
		acc.Add(acc, new(big.Int).Mul(e1, e2))
		acc.Mod(acc, r)
	}
	neg := new(big.Int).Sub(r, acc)
	neg.Mod(neg, r)
	p := bw6761.G1Mul(&g1, neg)
	return append(in, cat(bw6761.EncodeG1(&p), bw6761.EncodeG2(&g2))...)
}

func bn254PairingPlans(count int) []plan {
	plans := []plan{
		// Zero pairs: the empty product is the identity.
		{"pairing_empty_input", func(rnd io.Reader) []byte {
			return []byte{}
		}},
		{"pairing_generator_pair", func(rnd io.Reader) []byte {
			g1 := bn254.G1Generator()
			g2 := bn254.G2Generator()
			return cat(bn254.EncodeG1(&g1), bn254.EncodeG2(&g2))
		}},
		{"pairing_g1_infinity", func(rnd io.Reader) []byte {
			q := bn254.RandG2(rnd)
			return cat(make([]byte, bn254.G1Bytes), bn254.EncodeG2(&q))
		}},
		{"pairing_g2_infinity", func(rnd io.Reader) []byte {
			p := bn254.RandG1(rnd)
			return cat(bn254.EncodeG1(&p), make([]byte, bn254.G2Bytes))
		}},
	}
	for i := 0; i < count; i++ {
		if i%2 == 0 {
			pairs := i%3 + 2
			plans = append(plans, plan{fmt.Sprintf("pairing_identity_product_%d", i+1), func(rnd io.Reader) []byte {
				return bn254IdentityProduct(rnd, pairs)
			}})
		} else {
			pairs := i%3 + 1
			plans = append(plans, plan{fmt.Sprintf("pairing_nontrivial_%d", i+1), func(rnd io.Reader) []byte {
				var in []byte
				for j := 0; j < pairs; j++ {
					p := bn254.RandG1(rnd)
					q := bn254.RandG2(rnd)
					in = append(in, cat(bn254.EncodeG1(&p), bn254.EncodeG2(&q))...)
				}
				return in
			}})
		}
	}
	return plans
}

func bn254IdentityProduct(rnd io.Reader, pairs int) []byte {
	var (
		in  []byte
		acc = new(big.Int)
		r   = bn254.FrModulus()
		g1  = bn254.G1Generator()
		g2  = bn254.G2Generator()
	)
	for j := 0; j < pairs-1; j++ {
		e1 := bn254.RandScalar(rnd)
		e2 := bn254.RandScalar(rnd)
		var p bn.G1Affine
		var q bn.G2Affine
		p.ScalarMultiplication(&g1, e1)
		q.ScalarMultiplication(&g2, e2)
		in = append(in, cat(bn254.EncodeG1(&p), bn254.EncodeG2(&q))...)
		acc.Add(acc, new(big.Int).Mul(e1, e2))
		acc.Mod(acc, r)
	}
	neg := new(big.Int).Sub(r, acc)
	neg.Mod(neg, r)
	var p bn.G1Affine
	if neg.Sign() != 0 {
		p.ScalarMultiplication(&g1, neg)
	}
	return append(in, cat(bn254.EncodeG1(&p), bn254.EncodeG2(&g2))...)
}

func ecRecoverPlans(count int) []plan {
	plans := []plan{
		{"ecrecover_zero_digest", func(rnd io.Reader) []byte {
			return signedRecoverInput(rnd, make([]byte, crypto.DigestLength))
		}},
		{"ecrecover_high_s", func(rnd io.Reader) []byte {
			in := signedRecoverInput(rnd, crypto.RandBytes(rnd, crypto.DigestLength))
			// Flip the signature into its high-s form; the precompile does
			// not enforce low-s, so this must still recover.
			n := uint256.MustFromBig(crypto.S256N())
			var s, hs uint256.Int
			s.SetBytes(in[96:128])
			hs.Sub(n, &s)
			b := hs.Bytes32()
			copy(in[96:128], b[:])
			in[63] = 27 + ((in[63] - 27) ^ 1)
			return in
		}},
	}
	for i := 0; i < count; i++ {
		plans = append(plans, plan{fmt.Sprintf("ecrecover_%d", i+1), func(rnd io.Reader) []byte {
			return signedRecoverInput(rnd, crypto.RandBytes(rnd, crypto.DigestLength))
		}})
	}
	return plans
}

// signedRecoverInput derives a fresh key from the stream, signs the digest
// and lays the result out as the 128-byte hash || v || r || s precompile
// input.
func signedRecoverInput(rnd io.Reader, digest []byte) []byte {
	sig, err := crypto.Sign(digest, deriveKey(rnd))
	if err != nil {
		panic("deterministic signing failed: " + err.Error())
	}
	in := make([]byte, ecRecoverInputLength)
	copy(in[:32], digest)
	in[63] = sig[crypto.RecoveryIDOffset] + 27
	copy(in[64:], sig[:64])
	return in
}

func deriveKey(rnd io.Reader) *secp256k1.PrivateKey {
	d := crypto.RandBigNonZero(rnd, crypto.S256N())
	var buf [32]byte
	d.FillBytes(buf[:])
	priv, _ := btcec.PrivKeyFromBytes(buf[:])
	return priv
}

// failurePlans returns the negative vector schedule for a category. Every
// plan must evaluate to an error; the error's message becomes the vector's
// expected tag.
func failurePlans(category corpus.Category) []plan {
	switch category {
	case corpus.BW6761G1Add:
		return bw6FailPlans("g1_add", 2*bw6761.PointBytes, func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			bad := bw6761.RandG1NotOnCurve(rnd)
			return cat(bw6761.EncodeG1(&p), bw6761.EncodeG1(&bad))
		}, func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			return cat(bw6761.EncodeG1(&p), fpModulusEncoding(), make([]byte, bw6761.FieldBytes))
		})
	case corpus.BW6761G2Add:
		return bw6FailPlans("g2_add", 2*bw6761.PointBytes, func(rnd io.Reader) []byte {
			p := bw6761.RandG2(rnd)
			bad := bw6761.RandG2NotOnCurve(rnd)
			return cat(bw6761.EncodeG2(&p), bw6761.EncodeG2(&bad))
		}, func(rnd io.Reader) []byte {
			p := bw6761.RandG2(rnd)
			return cat(bw6761.EncodeG2(&p), fpModulusEncoding(), make([]byte, bw6761.FieldBytes))
		})
	case corpus.BW6761G1Mul:
		return bw6FailPlans("g1_mul", bw6761.PointBytes+bw6761.ScalarBytes, func(rnd io.Reader) []byte {
			bad := bw6761.RandG1NotOnCurve(rnd)
			return cat(bw6761.EncodeG1(&bad), make([]byte, bw6761.ScalarBytes))
		}, func(rnd io.Reader) []byte {
			return cat(fpModulusEncoding(), make([]byte, bw6761.FieldBytes), make([]byte, bw6761.ScalarBytes))
		})
	case corpus.BW6761G2Mul:
		return bw6FailPlans("g2_mul", bw6761.PointBytes+bw6761.ScalarBytes, func(rnd io.Reader) []byte {
			bad := bw6761.RandG2NotOnCurve(rnd)
			return cat(bw6761.EncodeG2(&bad), make([]byte, bw6761.ScalarBytes))
		}, func(rnd io.Reader) []byte {
			return cat(fpModulusEncoding(), make([]byte, bw6761.FieldBytes), make([]byte, bw6761.ScalarBytes))
		})
	case corpus.BW6761G1MultiExp:
		term := bw6761.PointBytes + bw6761.ScalarBytes
		return bw6FailPlans("g1_multiexp", term, func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			bad := bw6761.RandG1NotOnCurve(rnd)
			return cat(
				bw6761.EncodeG1(&p), scalar64(bw6761.RandScalar(rnd)),
				bw6761.EncodeG1(&bad), scalar64(bw6761.RandScalar(rnd)),
			)
		}, func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			return cat(
				bw6761.EncodeG1(&p), scalar64(bw6761.RandScalar(rnd)),
				fpModulusEncoding(), make([]byte, bw6761.FieldBytes), make([]byte, bw6761.ScalarBytes),
			)
		})
	case corpus.BW6761G2MultiExp:
		term := bw6761.PointBytes + bw6761.ScalarBytes
		return bw6FailPlans("g2_multiexp", term, func(rnd io.Reader) []byte {
			p := bw6761.RandG2(rnd)
			bad := bw6761.RandG2NotOnCurve(rnd)
			return cat(
				bw6761.EncodeG2(&p), scalar64(bw6761.RandScalar(rnd)),
				bw6761.EncodeG2(&bad), scalar64(bw6761.RandScalar(rnd)),
			)
		}, func(rnd io.Reader) []byte {
			p := bw6761.RandG2(rnd)
			return cat(
				bw6761.EncodeG2(&p), scalar64(bw6761.RandScalar(rnd)),
				fpModulusEncoding(), make([]byte, bw6761.FieldBytes), make([]byte, bw6761.ScalarBytes),
			)
		})
	case corpus.BW6761Pairing:
		return bw6PairingFailPlans()
	case corpus.BN254Pairing:
		return bn254PairingFailPlans()
	case corpus.ECRecover:
		return ecRecoverFailPlans()
	}
	return nil
}

// bw6FailPlans assembles the failure schedule shared by all BW6-761
// categories: length violations, a field element at the modulus, and a point
// off the curve.
func bw6FailPlans(prefix string, unit int, notOnCurve, largeField func(io.Reader) []byte) []plan {
	return []plan{
		{prefix + "_empty_input", func(rnd io.Reader) []byte {
			return []byte{}
		}},
		{prefix + "_short_input", func(rnd io.Reader) []byte {
			return crypto.RandBytes(rnd, unit-1)
		}},
		{prefix + "_long_input", func(rnd io.Reader) []byte {
			return crypto.RandBytes(rnd, unit+1)
		}},
		{prefix + "_large_field_element", largeField},
		{prefix + "_point_not_on_curve", notOnCurve},
	}
}

func bw6PairingFailPlans() []plan {
	return []plan{
		{"pairing_empty_input", func(rnd io.Reader) []byte {
			return []byte{}
		}},
		{"pairing_short_input", func(rnd io.Reader) []byte {
			return crypto.RandBytes(rnd, bw6761.PairBytes-1)
		}},
		{"pairing_long_input", func(rnd io.Reader) []byte {
			return crypto.RandBytes(rnd, bw6761.PairBytes+1)
		}},
		{"pairing_large_field_element", func(rnd io.Reader) []byte {
			q := bw6761.RandG2(rnd)
			return cat(fpModulusEncoding(), make([]byte, bw6761.FieldBytes), bw6761.EncodeG2(&q))
		}},
		{"pairing_point_not_on_curve_g1", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			q := bw6761.RandG2(rnd)
			bad := bw6761.RandG1NotOnCurve(rnd)
			q2 := bw6761.RandG2(rnd)
			return cat(
				bw6761.EncodeG1(&p), bw6761.EncodeG2(&q),
				bw6761.EncodeG1(&bad), bw6761.EncodeG2(&q2),
			)
		}},
		{"pairing_point_not_on_curve_g2", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			bad := bw6761.RandG2NotOnCurve(rnd)
			return cat(bw6761.EncodeG1(&p), bw6761.EncodeG2(&bad))
		}},
		{"pairing_incorrect_subgroup_g1", func(rnd io.Reader) []byte {
			off := bw6761.RandG1OffSubgroup(rnd)
			q := bw6761.RandG2(rnd)
			return cat(bw6761.EncodeG1(&off), bw6761.EncodeG2(&q))
		}},
		{"pairing_incorrect_subgroup_g2", func(rnd io.Reader) []byte {
			p := bw6761.RandG1(rnd)
			off := bw6761.RandG2OffSubgroup(rnd)
			return cat(bw6761.EncodeG1(&p), bw6761.EncodeG2(&off))
		}},
	}
}

// bn254PairingFailPlans omits an empty-input case (zero pairs are valid for
// this precompile) and a G1 subgroup case (the curve has cofactor one).
func bn254PairingFailPlans() []plan {
	return []plan{
		{"pairing_short_input", func(rnd io.Reader) []byte {
			return crypto.RandBytes(rnd, bn254.PairBytes-1)
		}},
		{"pairing_long_input", func(rnd io.Reader) []byte {
			return crypto.RandBytes(rnd, bn254.PairBytes+1)
		}},
		{"pairing_large_field_element", func(rnd io.Reader) []byte {
			q := bn254.RandG2(rnd)
			mod := make([]byte, bn254.FieldBytes)
			bn254.FpModulus().FillBytes(mod)
			return cat(mod, make([]byte, bn254.FieldBytes), bn254.EncodeG2(&q))
		}},
		{"pairing_point_not_on_curve_g1", func(rnd io.Reader) []byte {
			bad := bn254.RandG1NotOnCurve(rnd)
			q := bn254.RandG2(rnd)
			return cat(bn254.EncodeG1(&bad), bn254.EncodeG2(&q))
		}},
		{"pairing_point_not_on_curve_g2", func(rnd io.Reader) []byte {
			p := bn254.RandG1(rnd)
			bad := bn254.RandG2NotOnCurve(rnd)
			return cat(bn254.EncodeG1(&p), bn254.EncodeG2(&bad))
		}},
		{"pairing_incorrect_subgroup_g2", func(rnd io.Reader) []byte {
			p := bn254.RandG1(rnd)
			off := bn254.RandG2OffSubgroup(rnd)
			return cat(bn254.EncodeG1(&p), bn254.EncodeG2(&off))
		}},
	}
}

func ecRecoverFailPlans() []plan {
	return []plan{
		{"ecrecover_empty_input", func(rnd io.Reader) []byte {
			return []byte{}
		}},
		{"ecrecover_short_input", func(rnd io.Reader) []byte {
			return crypto.RandBytes(rnd, ecRecoverInputLength-1)
		}},
		{"ecrecover_long_input", func(rnd io.Reader) []byte {
			return crypto.RandBytes(rnd, ecRecoverInputLength+1)
		}},
		{"ecrecover_invalid_v_low", func(rnd io.Reader) []byte {
			in := signedRecoverInput(rnd, crypto.RandBytes(rnd, crypto.DigestLength))
			in[63] = 26
			return in
		}},
		{"ecrecover_invalid_v_high", func(rnd io.Reader) []byte {
			in := signedRecoverInput(rnd, crypto.RandBytes(rnd, crypto.DigestLength))
			in[63] = 29
			return in
		}},
		{"ecrecover_dirty_v_word", func(rnd io.Reader) []byte {
			in := signedRecoverInput(rnd, crypto.RandBytes(rnd, crypto.DigestLength))
			in[32] = 1
			return in
		}},
		{"ecrecover_zero_r", func(rnd io.Reader) []byte {
			return rawRecoverInput(crypto.RandBytes(rnd, crypto.DigestLength), 27, new(big.Int), big.NewInt(1))
		}},
		{"ecrecover_zero_s", func(rnd io.Reader) []byte {
			return rawRecoverInput(crypto.RandBytes(rnd, crypto.DigestLength), 27, big.NewInt(1), new(big.Int))
		}},
		{"ecrecover_r_equals_order", func(rnd io.Reader) []byte {
			return rawRecoverInput(crypto.RandBytes(rnd, crypto.DigestLength), 27, crypto.S256N(), big.NewInt(1))
		}},
		{"ecrecover_s_equals_order", func(rnd io.Reader) []byte {
			return rawRecoverInput(crypto.RandBytes(rnd, crypto.DigestLength), 27, big.NewInt(1), crypto.S256N())
		}},
		{"ecrecover_unrecoverable_r", func(rnd io.Reader) []byte {
			digest := crypto.RandBytes(rnd, crypto.DigestLength)
			for {
				r := crypto.RandBigNonZero(rnd, crypto.S256N())
				in := rawRecoverInput(digest, 27, r, big.NewInt(1))
				sig := make([]byte, crypto.SignatureLength)
				copy(sig, in[64:128])
				if _, err := crypto.Ecrecover(digest, sig); err != nil {
					return in
				}
			}
		}},
	}
}

func rawRecoverInput(digest []byte, v byte, r, s *big.Int) []byte {
	in := make([]byte, ecRecoverInputLength)
	copy(in[:32], digest)
	in[63] = v
	r.FillBytes(in[64:96])
	s.FillBytes(in[96:128])
	return in
}

// fpModulusEncoding returns the BW6-761 base field modulus as a 96-byte
// big-endian blob, the smallest non-canonical field encoding.
func fpModulusEncoding() []byte {
	out := make([]byte, bw6761.FieldBytes)
	bw6761.FpModulus().FillBytes(out)
	return out
}

func scalar64(s *big.Int) []byte {
	out := make([]byte, bw6761.ScalarBytes)
	s.FillBytes(out)
	return out
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
