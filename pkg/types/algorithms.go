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

package types

import (
	"crypto"
	"strings"
)

// =============================================================================
// Hash Algorithm String Constants
// =============================================================================
// Hash names use the Web Cryptography API registry spelling, which matches
// the standard library crypto.Hash naming with dashes.

// HashName represents a digest algorithm identifier.
type HashName string

const (
	// HashSHA1 is SHA-1 (legacy, kept for protocol compatibility).
	HashSHA1 HashName = "SHA-1"

	// HashSHA256 is SHA-256 (recommended minimum).
	HashSHA256 HashName = "SHA-256"

	// HashSHA384 is SHA-384.
	HashSHA384 HashName = "SHA-384"

	// HashSHA512 is SHA-512.
	HashSHA512 HashName = "SHA-512"
)

// String returns the string representation.
func (h HashName) String() string {
	return string(h)
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (h HashName) Equals(s string) bool {
	return strings.EqualFold(string(h), s)
}

// CryptoHash converts the HashName to the standard library crypto.Hash.
// The second return value is false for unrecognized names.
func (h HashName) CryptoHash() (crypto.Hash, bool) {
	switch HashName(strings.ToUpper(string(h))) {
	case HashSHA1:
		return crypto.SHA1, true
	case HashSHA256:
		return crypto.SHA256, true
	case HashSHA384:
		return crypto.SHA384, true
	case HashSHA512:
		return crypto.SHA512, true
	default:
		return 0, false
	}
}

// =============================================================================
// Algorithm Name Constants
// =============================================================================
// Canonical algorithm names act as the dispatch key within an algorithm
// family. Names use the Web Cryptography API registry spelling.

// AlgorithmName represents a canonical algorithm identifier.
type AlgorithmName string

const (
	// AlgRSASSAPKCS1v15 is RSASSA-PKCS1-v1_5 signing.
	AlgRSASSAPKCS1v15 AlgorithmName = "RSASSA-PKCS1-v1_5"

	// AlgRSAPSS is RSASSA-PSS signing.
	AlgRSAPSS AlgorithmName = "RSA-PSS"

	// AlgRSAOAEP is RSAES-OAEP encryption.
	AlgRSAOAEP AlgorithmName = "RSA-OAEP"

	// AlgAESCTR is AES in counter mode.
	AlgAESCTR AlgorithmName = "AES-CTR"

	// AlgAESCBC is AES in CBC mode.
	AlgAESCBC AlgorithmName = "AES-CBC"

	// AlgAESGCM is AES in Galois/Counter mode.
	AlgAESGCM AlgorithmName = "AES-GCM"

	// AlgAESKW is AES Key Wrap.
	AlgAESKW AlgorithmName = "AES-KW"

	// AlgHMAC is HMAC message authentication.
	AlgHMAC AlgorithmName = "HMAC"

	// AlgECDSA is ECDSA signing (dispatch slot only, not implemented).
	AlgECDSA AlgorithmName = "ECDSA"

	// AlgECDH is ECDH key agreement (dispatch slot only, not implemented).
	AlgECDH AlgorithmName = "ECDH"
)

// String returns the string representation.
func (a AlgorithmName) String() string {
	return string(a)
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (a AlgorithmName) Equals(s string) bool {
	return strings.EqualFold(string(a), s)
}
