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

import "errors"

// Decode and verification failures shared by the curve codecs. These are
// expected, first-class outcomes for negative test vectors: their messages
// are recorded verbatim as the vector's expected error tag.
var (
	// ErrInvalidInputLength reports an input that is not the exact byte
	// length (or multiple) the operation requires.
	ErrInvalidInputLength = errors.New("invalid input length")

	// ErrInvalidFieldElement reports a byte sequence that does not decode
	// into a canonical base-field element.
	ErrInvalidFieldElement = errors.New("invalid field element")

	// ErrPointNotOnCurve reports coordinates that do not satisfy the curve
	// equation.
	ErrPointNotOnCurve = errors.New("point is not on curve")

	// ErrG1Subgroup and ErrG2Subgroup report points that satisfy the curve
	// equation but lie outside the prime-order subgroup.
	ErrG1Subgroup = errors.New("g1 point is not on correct subgroup")
	ErrG2Subgroup = errors.New("g2 point is not on correct subgroup")

	// ErrInvalidSignature reports a signature that is mathematically
	// invalid: bad recovery id, out-of-range r or s, or a signature that
	// does not resolve to a public key.
	ErrInvalidSignature = errors.New("invalid signature")
)
