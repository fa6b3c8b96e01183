// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-webcrypto.
//
// go-webcrypto is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package primitive

import "errors"

var (
	// ErrInvalidModulusLength is returned for RSA modulus sizes the
	// provider cannot generate.
	ErrInvalidModulusLength = errors.New("primitive: invalid RSA modulus length")

	// ErrInvalidPublicExponent is returned for public exponents the
	// provider cannot generate keys with.
	ErrInvalidPublicExponent = errors.New("primitive: invalid RSA public exponent")

	// ErrInvalidPrivateKey is returned when key material cannot be parsed
	// as the expected private key encoding.
	ErrInvalidPrivateKey = errors.New("primitive: invalid private key material")

	// ErrInvalidHash is returned for digest algorithms the provider does
	// not implement.
	ErrInvalidHash = errors.New("primitive: invalid hash algorithm")

	// ErrDigestLength is returned when a digest does not match the length
	// of the selected hash algorithm.
	ErrDigestLength = errors.New("primitive: digest length mismatch")

	// ErrInvalidSaltLength is returned for PSS salt lengths outside the
	// provider's supported range.
	ErrInvalidSaltLength = errors.New("primitive: invalid PSS salt length")
)
