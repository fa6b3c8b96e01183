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

package subtle

import (
	"github.com/jeremyhahn/go-webcrypto/pkg/algorithm"
	"github.com/jeremyhahn/go-webcrypto/pkg/storage"
	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

// CryptoKey combines a storage handle with the public metadata of a
// generated key: type, usages, extractability and the stored algorithm.
// The raw key material never lives here; it stays behind the vault and is
// reachable only through the handle.
//
// Keys are created exclusively by SubtleCrypto.GenerateKey and are
// immutable afterwards. Fields are unexported to enforce that; Usages and
// Algorithm return copies where mutation would otherwise be possible.
type CryptoKey struct {
	keyType     types.KeyType
	extractable bool
	alg         algorithm.KeyAlgorithm
	usages      types.KeyUsages
	handle      storage.Handle
}

// newCryptoKey constructs a key. The usages slice is cloned so later
// mutation by the caller cannot reach the key.
func newCryptoKey(keyType types.KeyType, extractable bool, alg algorithm.KeyAlgorithm,
	usages types.KeyUsages, handle storage.Handle) *CryptoKey {
	return &CryptoKey{
		keyType:     keyType,
		extractable: extractable,
		alg:         alg,
		usages:      usages.Clone(),
		handle:      handle,
	}
}

// Type returns whether the key is secret, private or public.
func (k *CryptoKey) Type() types.KeyType {
	return k.keyType
}

// Extractable reports whether the application may export the key's raw
// material. A false value does not by itself secure the material; that is
// the storage backend's responsibility.
func (k *CryptoKey) Extractable() bool {
	return k.extractable
}

// Algorithm returns the stored algorithm the key was generated with.
func (k *CryptoKey) Algorithm() algorithm.KeyAlgorithm {
	return k.alg
}

// Usages returns a copy of the key's fixed usage set.
func (k *CryptoKey) Usages() types.KeyUsages {
	return k.usages.Clone()
}

// Handle returns the storage handle correlating this key to its material.
// The handle is only meaningful to the vault that issued it.
func (k *CryptoKey) Handle() storage.Handle {
	return k.handle
}

// CryptoKeyPair is the result of asymmetric key generation. Both halves
// carry the same stored algorithm and, by this engine's policy, reference
// the same stored record.
type CryptoKeyPair struct {
	PrivateKey *CryptoKey
	PublicKey  *CryptoKey
}

// KeyGenResult is the closed union of GenerateKey results: a single
// *CryptoKey for symmetric algorithms or a *CryptoKeyPair for asymmetric
// ones. Callers type-switch on the result.
type KeyGenResult interface {
	keyGenResult()
}

func (k *CryptoKey) keyGenResult()     {}
func (p *CryptoKeyPair) keyGenResult() {}

// Interface compliance checks.
var (
	_ KeyGenResult = (*CryptoKey)(nil)
	_ KeyGenResult = (*CryptoKeyPair)(nil)
)
