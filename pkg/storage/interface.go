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

// Package storage defines the key storage capability consumed by the
// operation engine, together with an in-memory vault and an encrypted
// file vault implementation. A vault stores opaque key material and hands
// back opaque handles; it has no knowledge of algorithms or key types.
package storage

// Handle is an opaque token correlating a key's metadata to its stored
// material. A handle is only meaningful relative to the vault instance
// that issued it.
type Handle string

// KeyStorage is the capability contract for key material vaults.
//
// Store must never silently drop material: if durability cannot be
// guaranteed the implementation must return an error. Get returns
// ErrNotFound for unknown or evicted handles. A handle returned by Store
// must be immediately valid for Get within the same goroutine; concurrent
// Store calls must never collide on a handle.
//
// No update or delete operation is part of the contract; lifecycle
// management of stored material is entirely the vault's responsibility.
type KeyStorage interface {
	// Store inserts opaque key material and returns a fresh handle.
	Store(material KeyMaterial) (Handle, error)

	// Get retrieves the material for the given handle.
	// Returns ErrNotFound if the handle is unknown or evicted.
	Get(handle Handle) (KeyMaterial, error)

	// Close releases any resources held by the vault.
	Close() error
}
