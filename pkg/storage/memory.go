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
	"sync"

	"github.com/google/uuid"
)

// MemoryVault provides an in-memory KeyStorage implementation.
// This is useful for testing and ephemeral key storage.
// Thread-safe using a read-write mutex; handles are random UUIDs, so
// concurrent Store calls never collide.
type MemoryVault struct {
	materials map[Handle]KeyMaterial
	mu        sync.RWMutex
	closed    bool
}

// NewMemoryVault creates a new in-memory key material vault.
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{
		materials: make(map[Handle]KeyMaterial),
	}
}

// Store inserts key material and returns a fresh handle.
func (v *MemoryVault) Store(material KeyMaterial) (Handle, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return "", ErrClosed
	}

	handle := Handle(uuid.NewString())
	v.materials[handle] = material
	return handle, nil
}

// Get retrieves the material for the given handle.
func (v *MemoryVault) Get(handle Handle) (KeyMaterial, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.closed {
		return KeyMaterial{}, ErrClosed
	}

	material, exists := v.materials[handle]
	if !exists {
		return KeyMaterial{}, ErrNotFound
	}
	return material, nil
}

// Close releases the vault. Stored material becomes unreachable.
func (v *MemoryVault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}

	v.closed = true
	v.materials = nil
	return nil
}

// Verify interface compliance at compile time
var _ KeyStorage = (*MemoryVault)(nil)
