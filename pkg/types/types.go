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

// Package types defines the closed enumerations shared by the go-webcrypto
// packages: key types, key usages, key formats, hash names and canonical
// algorithm names. All identifiers use the Web Cryptography API spelling so
// that values round-trip cleanly through JWK and other wire encodings.
package types

import (
	"fmt"
	"strings"
)

// =============================================================================
// Key Type
// =============================================================================

// KeyType identifies which half of a key pair a key represents, or that it
// is a symmetric secret. It determines which operations the key may
// participate in (sign requires private, verify requires public).
type KeyType string

const (
	// KeyTypeSecret is a symmetric key.
	KeyTypeSecret KeyType = "secret"

	// KeyTypePrivate is the private half of an asymmetric key pair.
	KeyTypePrivate KeyType = "private"

	// KeyTypePublic is the public half of an asymmetric key pair.
	KeyTypePublic KeyType = "public"
)

// String returns the string representation.
func (t KeyType) String() string {
	return string(t)
}

// =============================================================================
// Key Usage
// =============================================================================

// KeyUsage is a permitted operation category for a key. The set of usages a
// key carries is fixed at generation time and never changes afterwards.
type KeyUsage string

const (
	// UsageEncrypt permits encryption.
	UsageEncrypt KeyUsage = "encrypt"

	// UsageDecrypt permits decryption.
	UsageDecrypt KeyUsage = "decrypt"

	// UsageSign permits signature generation.
	UsageSign KeyUsage = "sign"

	// UsageVerify permits signature verification.
	UsageVerify KeyUsage = "verify"

	// UsageWrapKey permits wrapping other keys.
	UsageWrapKey KeyUsage = "wrapKey"

	// UsageUnwrapKey permits unwrapping other keys.
	UsageUnwrapKey KeyUsage = "unwrapKey"

	// UsageDeriveKey permits key derivation.
	UsageDeriveKey KeyUsage = "deriveKey"

	// UsageDeriveBits permits bit-string derivation.
	UsageDeriveBits KeyUsage = "deriveBits"
)

// String returns the string representation.
func (u KeyUsage) String() string {
	return string(u)
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (u KeyUsage) Equals(s string) bool {
	return strings.EqualFold(string(u), s)
}

// allUsages is the closed enumeration used by KeyUsages.Validate.
var allUsages = map[KeyUsage]struct{}{
	UsageEncrypt:    {},
	UsageDecrypt:    {},
	UsageSign:       {},
	UsageVerify:     {},
	UsageWrapKey:    {},
	UsageUnwrapKey:  {},
	UsageDeriveKey:  {},
	UsageDeriveBits: {},
}

// KeyUsages is an unordered set of key usages. The zero value is the empty
// set. Order of elements is not significant for any operation.
type KeyUsages []KeyUsage

// Contains reports whether the set contains the given usage.
func (s KeyUsages) Contains(usage KeyUsage) bool {
	for _, u := range s {
		if u == usage {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every usage in the set appears in allowed.
func (s KeyUsages) SubsetOf(allowed ...KeyUsage) bool {
	for _, u := range s {
		if !KeyUsages(allowed).Contains(u) {
			return false
		}
	}
	return true
}

// Validate returns an error if the set contains an unknown usage or the
// same usage more than once.
func (s KeyUsages) Validate() error {
	seen := make(map[KeyUsage]struct{}, len(s))
	for _, u := range s {
		if _, ok := allUsages[u]; !ok {
			return fmt.Errorf("types: unknown key usage %q", u)
		}
		if _, dup := seen[u]; dup {
			return fmt.Errorf("types: duplicate key usage %q", u)
		}
		seen[u] = struct{}{}
	}
	return nil
}

// Clone returns an independent copy of the set.
func (s KeyUsages) Clone() KeyUsages {
	if s == nil {
		return nil
	}
	out := make(KeyUsages, len(s))
	copy(out, s)
	return out
}

// =============================================================================
// Key Format
// =============================================================================

// KeyFormat identifies a key export encoding.
type KeyFormat string

const (
	// FormatRaw is the raw bytes of a secret key.
	FormatRaw KeyFormat = "raw"

	// FormatPKCS8 is a DER-encoded PKCS#8 PrivateKeyInfo structure.
	FormatPKCS8 KeyFormat = "pkcs8"

	// FormatSPKI is a DER-encoded SubjectPublicKeyInfo structure.
	FormatSPKI KeyFormat = "spki"

	// FormatJWK is an RFC 7517 JSON Web Key.
	FormatJWK KeyFormat = "jwk"
)

// String returns the string representation.
func (f KeyFormat) String() string {
	return string(f)
}
