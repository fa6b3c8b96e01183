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

// Package primitive defines the narrow boundary between the operation
// engine and the cryptographic math. The engine never touches modular
// arithmetic, padding construction or hash compression directly; it calls
// a Provider with already-selected parameters and treats failures as
// opaque.
package primitive

import (
	"io"

	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

// Provider supplies the cryptographic primitives consumed by the
// operation engine.
//
// Sign and Verify operate on digests, never on raw messages; hashing is a
// separate call so the engine controls hash selection. Key material is
// exchanged as DER: PKCS#8 for private keys, PKIX (SubjectPublicKeyInfo)
// for public keys. Verify returns false for any cryptographic mismatch and
// reserves errors for structural problems such as unparseable material.
type Provider interface {
	// GenerateRSAKeyPair draws an RSA key pair of the given modulus size
	// using the supplied randomness source and returns the private key as
	// PKCS#8 DER. publicExponent is big-endian. Infeasible parameter
	// combinations are generation errors.
	GenerateRSAKeyPair(rng io.Reader, modulusBits int, publicExponent []byte) ([]byte, error)

	// DeriveRSAPublicKey extracts the public half of a PKCS#8 RSA private
	// key as PKIX DER.
	DeriveRSAPublicKey(privateDER []byte) ([]byte, error)

	// Hash computes the digest of data. Deterministic and pure.
	Hash(hash types.HashName, data []byte) ([]byte, error)

	// SignPKCS1v15 signs a digest with RSASSA-PKCS1-v1_5 padding.
	SignPKCS1v15(privateDER []byte, hash types.HashName, digest []byte) ([]byte, error)

	// VerifyPKCS1v15 checks an RSASSA-PKCS1-v1_5 signature over a digest.
	VerifyPKCS1v15(privateDER []byte, hash types.HashName, digest, signature []byte) (bool, error)

	// SignPSS signs a digest with RSASSA-PSS padding, drawing the salt of
	// the given byte length from the supplied randomness source.
	SignPSS(rng io.Reader, privateDER []byte, hash types.HashName, digest []byte, saltLength int) ([]byte, error)

	// VerifyPSS checks an RSASSA-PSS signature over a digest with the
	// given salt length.
	VerifyPSS(privateDER []byte, hash types.HashName, digest, signature []byte, saltLength int) (bool, error)
}
