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

// Package crypto wraps the secp256k1 signature scheme and the keccak hash
// behind the small surface the vector generator needs. Curve arithmetic is
// delegated to audited libraries, never implemented here.
package crypto

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decred_ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

const (
	// DigestLength is the byte length of message digests fed to Sign and
	// Ecrecover.
	DigestLength = 32

	// SignatureLength is the byte length of an [R || S || V] signature with
	// the recovery id V in {0, 1}.
	SignatureLength = 65

	// RecoveryIDOffset points to V within an [R || S || V] signature.
	RecoveryIDOffset = 64

	// AddressLength is the byte length of a recovered address.
	AddressLength = 20
)

var (
	secp256k1N     = secp256k1.S256().N
	secp256k1halfN = new(big.Int).Rsh(secp256k1N, 1)
)

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// S256 returns the secp256k1 curve.
func S256() *secp256k1.KoblitzCurve {
	return secp256k1.S256()
}

// S256N returns the order of the secp256k1 group.
func S256N() *big.Int {
	return secp256k1N
}

// S256HalfN returns half the order of the secp256k1 group, the low-s
// boundary.
func S256HalfN() *big.Int {
	return secp256k1halfN
}

// Sign calculates an ECDSA signature over the given digest.
//
// The produced signature is in the [R || S || V] format where V is 0 or 1.
func Sign(digestHash []byte, prv *secp256k1.PrivateKey) ([]byte, error) {
	if len(digestHash) != DigestLength {
		return nil, fmt.Errorf("hash is required to be exactly %d bytes (%d)", DigestLength, len(digestHash))
	}
	sig := decred_ecdsa.SignCompact(prv, digestHash, false)
	// Convert to Ethereum signature format with 'recovery id' v at the end.
	v := sig[0] - 27
	copy(sig, sig[1:])
	sig[RecoveryIDOffset] = v
	return sig, nil
}

// Ecrecover returns the uncompressed public key that created the given
// signature.
func Ecrecover(hash, sig []byte) ([]byte, error) {
	pub, err := SigToPub(hash, sig)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// SigToPub returns the public key that created the given signature.
func SigToPub(hash, sig []byte) (*secp256k1.PublicKey, error) {
	if err := checkSignature(sig); err != nil {
		return nil, err
	}
	// Convert to secp256k1 input format with 'recovery id' v at the beginning.
	btcsig := make([]byte, SignatureLength)
	btcsig[0] = sig[RecoveryIDOffset] + 27
	copy(btcsig[1:], sig)

	pub, _, err := decred_ecdsa.RecoverCompact(btcsig, hash)
	return pub, err
}

// PubkeyToAddress derives the 20-byte address of the given public key,
// keccak256(pubkey[1:])[12:].
func PubkeyToAddress(pub *secp256k1.PublicKey) [AddressLength]byte {
	var a [AddressLength]byte
	copy(a[:], Keccak256(pub.SerializeUncompressed()[1:])[12:])
	return a
}

// ValidateSignatureValues verifies whether the signature values are valid
// with the given chain rules. The v value is assumed to be either 0 or 1.
func ValidateSignatureValues(v byte, r, s *big.Int, homestead bool) bool {
	if r.Cmp(big.NewInt(1)) < 0 || s.Cmp(big.NewInt(1)) < 0 {
		return false
	}
	// reject upper range of s values (ECDSA malleability)
	if homestead && s.Cmp(secp256k1halfN) > 0 {
		return false
	}
	// Frontier: allow s to be in full N range
	return r.Cmp(secp256k1N) < 0 && s.Cmp(secp256k1N) < 0 && (v == 0 || v == 1)
}

func checkSignature(sig []byte) error {
	if len(sig) != SignatureLength {
		return fmt.Errorf("signature must be %d bytes long", SignatureLength)
	}
	if sig[RecoveryIDOffset] != 0 && sig[RecoveryIDOffset] != 1 {
		return fmt.Errorf("invalid signature recovery id %d", sig[RecoveryIDOffset])
	}
	return nil
}
