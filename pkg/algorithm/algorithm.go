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

// Package algorithm models Web Cryptography API algorithm descriptors as
// closed tagged unions: one KeyGenParams variant per algorithm family for
// key generation, and a corresponding stored KeyAlgorithm variant carried
// by generated keys.
//
// Both unions are sealed with unexported marker methods so that every
// dispatch site is an exhaustive type switch; adding a family forces each
// switch to be revisited. No validation happens in this package: the
// conversion from params to stored form is a total, field-preserving data
// transformation, and all legality checks belong to the operation engine.
package algorithm

import (
	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

// =============================================================================
// Key Generation Parameters
// =============================================================================

// KeyGenParams is the closed union of per-family key generation
// parameters. Implementations are RSAHashedKeyGenParams, AESKeyGenParams,
// HMACKeyGenParams and ECKeyGenParams.
type KeyGenParams interface {
	// Name returns the canonical algorithm name used as the dispatch key
	// within the family.
	Name() types.AlgorithmName

	// StoredAlgorithm converts the generation parameters into the
	// algorithm value carried by the resulting key. The conversion is
	// total and lossless for the fields it keeps.
	StoredAlgorithm() KeyAlgorithm

	keyGenParams()
}

// RSAHashedKeyGenParams describes generation of an RSA key pair for one of
// the RSA-hashed algorithms (RSASSA-PKCS1-v1_5, RSA-PSS, RSA-OAEP).
type RSAHashedKeyGenParams struct {
	// Algorithm is the canonical name within the RSA-hashed family.
	Algorithm types.AlgorithmName

	// ModulusLength is the RSA modulus size in bits.
	ModulusLength int

	// PublicExponent is the big-endian public exponent, e.g.
	// [0x01, 0x00, 0x01] for 65537.
	PublicExponent []byte

	// Hash is the digest algorithm bound to the key.
	Hash types.HashName
}

// Name returns the canonical algorithm name.
func (p *RSAHashedKeyGenParams) Name() types.AlgorithmName { return p.Algorithm }

// StoredAlgorithm converts the generation parameters to the stored form.
func (p *RSAHashedKeyGenParams) StoredAlgorithm() KeyAlgorithm {
	exponent := make([]byte, len(p.PublicExponent))
	copy(exponent, p.PublicExponent)
	return &RSAHashedKeyAlgorithm{
		Algorithm:      p.Algorithm,
		ModulusLength:  p.ModulusLength,
		PublicExponent: exponent,
		Hash:           p.Hash,
	}
}

func (p *RSAHashedKeyGenParams) keyGenParams() {}

// AESKeyGenParams describes generation of an AES secret key for one of the
// AES modes (AES-CTR, AES-CBC, AES-GCM, AES-KW).
type AESKeyGenParams struct {
	// Algorithm is the canonical name within the AES family.
	Algorithm types.AlgorithmName

	// Length is the key length in bits (128, 192 or 256).
	Length int
}

// Name returns the canonical algorithm name.
func (p *AESKeyGenParams) Name() types.AlgorithmName { return p.Algorithm }

// StoredAlgorithm converts the generation parameters to the stored form.
func (p *AESKeyGenParams) StoredAlgorithm() KeyAlgorithm {
	return &AESKeyAlgorithm{
		Algorithm: p.Algorithm,
		Length:    p.Length,
	}
}

func (p *AESKeyGenParams) keyGenParams() {}

// HMACKeyGenParams describes generation of an HMAC secret key.
type HMACKeyGenParams struct {
	// Hash is the digest algorithm the key is bound to.
	Hash types.HashName

	// Length is the key length in bits. Length is mandatory; there is no
	// default-to-block-size fallback.
	Length int
}

// Name returns the canonical algorithm name.
func (p *HMACKeyGenParams) Name() types.AlgorithmName { return types.AlgHMAC }

// StoredAlgorithm converts the generation parameters to the stored form.
func (p *HMACKeyGenParams) StoredAlgorithm() KeyAlgorithm {
	return &HMACKeyAlgorithm{
		Hash:   p.Hash,
		Length: p.Length,
	}
}

func (p *HMACKeyGenParams) keyGenParams() {}

// ECKeyGenParams describes generation of an elliptic curve key pair
// (ECDSA, ECDH). The family exists as a dispatch slot only; the operation
// engine reports it as not implemented.
type ECKeyGenParams struct {
	// Algorithm is the canonical name within the EC family.
	Algorithm types.AlgorithmName

	// NamedCurve is the curve identifier, e.g. "P-256".
	NamedCurve string
}

// Name returns the canonical algorithm name.
func (p *ECKeyGenParams) Name() types.AlgorithmName { return p.Algorithm }

// StoredAlgorithm converts the generation parameters to the stored form.
func (p *ECKeyGenParams) StoredAlgorithm() KeyAlgorithm {
	return &ECKeyAlgorithm{
		Algorithm:  p.Algorithm,
		NamedCurve: p.NamedCurve,
	}
}

func (p *ECKeyGenParams) keyGenParams() {}

// =============================================================================
// Stored Key Algorithms
// =============================================================================

// KeyAlgorithm is the closed union of stored algorithm values carried by
// generated keys. Implementations are RSAHashedKeyAlgorithm,
// AESKeyAlgorithm, HMACKeyAlgorithm and ECKeyAlgorithm.
type KeyAlgorithm interface {
	// Name returns the canonical algorithm name.
	Name() types.AlgorithmName

	keyAlgorithm()
}

// RSAHashedKeyAlgorithm is the stored algorithm of an RSA-hashed key.
type RSAHashedKeyAlgorithm struct {
	Algorithm      types.AlgorithmName
	ModulusLength  int
	PublicExponent []byte
	Hash           types.HashName
}

// Name returns the canonical algorithm name.
func (a *RSAHashedKeyAlgorithm) Name() types.AlgorithmName { return a.Algorithm }

func (a *RSAHashedKeyAlgorithm) keyAlgorithm() {}

// AESKeyAlgorithm is the stored algorithm of an AES secret key.
type AESKeyAlgorithm struct {
	Algorithm types.AlgorithmName
	Length    int
}

// Name returns the canonical algorithm name.
func (a *AESKeyAlgorithm) Name() types.AlgorithmName { return a.Algorithm }

func (a *AESKeyAlgorithm) keyAlgorithm() {}

// HMACKeyAlgorithm is the stored algorithm of an HMAC secret key.
type HMACKeyAlgorithm struct {
	Hash   types.HashName
	Length int
}

// Name returns the canonical algorithm name.
func (a *HMACKeyAlgorithm) Name() types.AlgorithmName { return types.AlgHMAC }

func (a *HMACKeyAlgorithm) keyAlgorithm() {}

// ECKeyAlgorithm is the stored algorithm of an elliptic curve key.
type ECKeyAlgorithm struct {
	Algorithm  types.AlgorithmName
	NamedCurve string
}

// Name returns the canonical algorithm name.
func (a *ECKeyAlgorithm) Name() types.AlgorithmName { return a.Algorithm }

func (a *ECKeyAlgorithm) keyAlgorithm() {}

// Interface compliance checks.
var (
	_ KeyGenParams = (*RSAHashedKeyGenParams)(nil)
	_ KeyGenParams = (*AESKeyGenParams)(nil)
	_ KeyGenParams = (*HMACKeyGenParams)(nil)
	_ KeyGenParams = (*ECKeyGenParams)(nil)

	_ KeyAlgorithm = (*RSAHashedKeyAlgorithm)(nil)
	_ KeyAlgorithm = (*AESKeyAlgorithm)(nil)
	_ KeyAlgorithm = (*HMACKeyAlgorithm)(nil)
	_ KeyAlgorithm = (*ECKeyAlgorithm)(nil)
)
