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
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	saltFile    = "vault.salt"
	keyFileExt  = ".key"
	vaultDirMod = 0700
	keyFileMod  = 0600

	// Argon2id parameters (RFC 9106 second recommended option).
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// FileVault provides an encrypted on-disk KeyStorage implementation.
// Each piece of key material is sealed with ChaCha20-Poly1305 under a key
// derived from the vault passphrase with Argon2id, and written to its own
// file named by handle. The per-vault KDF salt lives alongside the key
// files, so a vault can be reopened later with the same passphrase.
//
// Thread-safe: file creation is serialized with a mutex; reads are
// independent.
type FileVault struct {
	dir     string
	sealKey []byte
	mu      sync.Mutex
	closed  bool
}

// NewFileVault opens (or initializes) an encrypted vault in dir. The
// directory is created if it does not exist. A new vault draws a random
// KDF salt; reopening an existing vault reuses the stored salt, so the
// same passphrase recovers previously stored material.
func NewFileVault(dir string, passphrase []byte) (*FileVault, error) {
	if len(passphrase) == 0 {
		return nil, ErrPassphraseRequired
	}
	if err := os.MkdirAll(dir, vaultDirMod); err != nil {
		return nil, fmt.Errorf("storage: failed to create vault directory: %w", err)
	}

	saltPath := filepath.Join(dir, saltFile)
	salt, err := os.ReadFile(saltPath)
	if os.IsNotExist(err) {
		salt = make([]byte, 32)
		if _, err := rand.Read(salt); err != nil {
			return nil, fmt.Errorf("storage: failed to draw vault salt: %w", err)
		}
		if err := os.WriteFile(saltPath, salt, keyFileMod); err != nil {
			return nil, fmt.Errorf("storage: failed to write vault salt: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("storage: failed to read vault salt: %w", err)
	} else if len(salt) != 32 {
		return nil, fmt.Errorf("%w: bad salt length %d", ErrInvalidVault, len(salt))
	}

	sealKey := argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
	return &FileVault{
		dir:     dir,
		sealKey: sealKey,
	}, nil
}

// Store seals the material and writes it to a new file in the vault
// directory. The write is durable before the handle is returned; any
// failure is reported rather than dropping the material silently.
func (v *FileVault) Store(material KeyMaterial) (Handle, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return "", ErrClosed
	}

	aead, err := chacha20poly1305.NewX(v.sealKey)
	if err != nil {
		return "", fmt.Errorf("storage: failed to initialize seal cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("storage: failed to draw seal nonce: %w", err)
	}

	handle := Handle(uuid.NewString())
	sealed := aead.Seal(nonce, nonce, material.Bytes(), []byte(handle))

	path := filepath.Join(v.dir, string(handle)+keyFileExt)
	if err := os.WriteFile(path, sealed, keyFileMod); err != nil {
		return "", fmt.Errorf("storage: failed to persist key material: %w", err)
	}
	return handle, nil
}

// Get reads and unseals the material for the given handle.
func (v *FileVault) Get(handle Handle) (KeyMaterial, error) {
	v.mu.Lock()
	closed := v.closed
	v.mu.Unlock()
	if closed {
		return KeyMaterial{}, ErrClosed
	}

	// Reject handles that could escape the vault directory.
	if _, err := uuid.Parse(string(handle)); err != nil {
		return KeyMaterial{}, ErrNotFound
	}

	sealed, err := os.ReadFile(filepath.Join(v.dir, string(handle)+keyFileExt))
	if os.IsNotExist(err) {
		return KeyMaterial{}, ErrNotFound
	} else if err != nil {
		return KeyMaterial{}, fmt.Errorf("storage: failed to read key material: %w", err)
	}

	aead, err := chacha20poly1305.NewX(v.sealKey)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("storage: failed to initialize seal cipher: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return KeyMaterial{}, fmt.Errorf("%w: truncated key file", ErrInvalidVault)
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(handle))
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("%w: unseal failed", ErrInvalidVault)
	}
	return NewKeyMaterial(plaintext), nil
}

// Close wipes the derived seal key from memory. Key files remain on disk
// and can be recovered by reopening the vault with the passphrase.
func (v *FileVault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}

	for i := range v.sealKey {
		v.sealKey[i] = 0
	}
	v.sealKey = nil
	v.closed = true
	return nil
}

// Verify interface compliance at compile time
var _ KeyStorage = (*FileVault)(nil)
