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

package storage

import (
	cryptosubtle "crypto/subtle"
)

// KeyMaterial is an opaque wrapper around raw key bytes. It exists to keep
// key material from leaking through logging, formatting or comparison:
// String and GoString redact the contents, and Equal is constant-time.
//
// Once material has been stored, the vault owns it; everything else holds
// only a Handle.
type KeyMaterial struct {
	bytes []byte
}

// NewKeyMaterial wraps the given bytes as key material. The input is
// copied; the caller may reuse or zero its slice afterwards.
func NewKeyMaterial(b []byte) KeyMaterial {
	data := make([]byte, len(b))
	copy(data, b)
	return KeyMaterial{bytes: data}
}

// Bytes returns a copy of the raw key bytes. Intended for storage
// implementations and the operation engine only.
func (m KeyMaterial) Bytes() []byte {
	out := make([]byte, len(m.bytes))
	copy(out, m.bytes)
	return out
}

// Len returns the material length in bytes.
func (m KeyMaterial) Len() int {
	return len(m.bytes)
}

// Equal reports whether the material equals other, in constant time.
func (m KeyMaterial) Equal(other KeyMaterial) bool {
	return cryptosubtle.ConstantTimeCompare(m.bytes, other.bytes) == 1
}

// String implements fmt.Stringer without exposing the key bytes.
func (m KeyMaterial) String() string {
	return "KeyMaterial(REDACTED)"
}

// GoString implements fmt.GoStringer without exposing the key bytes.
func (m KeyMaterial) GoString() string {
	return "storage.KeyMaterial(REDACTED)"
}
