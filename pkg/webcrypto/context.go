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

// Package webcrypto provides the top-level entry point: a Context binding
// an operation engine to a randomness source and a key material vault,
// plus the convenience randomness helpers of the Web Cryptography API.
package webcrypto

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jeremyhahn/go-webcrypto/pkg/storage"
	"github.com/jeremyhahn/go-webcrypto/pkg/subtle"
)

// MaxRandomValues is the largest buffer GetRandomValues fills in one
// call, per the Web Cryptography API quota.
const MaxRandomValues = 65536

// ErrQuotaExceeded is returned when a GetRandomValues request exceeds
// MaxRandomValues ("QuotaExceededError" class).
var ErrQuotaExceeded = errors.New("webcrypto: requested byte length exceeds quota")

// Context is a WebCrypto context over a cryptographically secure
// randomness source. An application may use multiple contexts; creation
// is not expensive.
type Context struct {
	// Subtle is the operation engine for key generation, signing and
	// verification.
	Subtle *subtle.SubtleCrypto

	rng io.Reader
}

// NewContext creates a context over the given randomness source and key
// material vault. Engine options (provider, logger, metrics) pass
// through to the operation engine.
func NewContext(rng io.Reader, vault storage.KeyStorage, opts ...subtle.Option) *Context {
	return &Context{
		Subtle: subtle.New(rng, vault, opts...),
		rng:    rng,
	}
}

// GetRandomValues fills buf with random bytes from the context's
// randomness source. Requests larger than MaxRandomValues fail with
// ErrQuotaExceeded before any bytes are drawn.
func (c *Context) GetRandomValues(buf []byte) error {
	if len(buf) > MaxRandomValues {
		return fmt.Errorf("%w: %d > %d", ErrQuotaExceeded, len(buf), MaxRandomValues)
	}
	if _, err := io.ReadFull(c.rng, buf); err != nil {
		return fmt.Errorf("webcrypto: failed to draw random bytes: %w", err)
	}
	return nil
}

// RandomUUID returns a new RFC 4122 version 4 UUID built from the
// context's randomness source.
func (c *Context) RandomUUID() (string, error) {
	id, err := uuid.NewRandomFromReader(c.rng)
	if err != nil {
		return "", fmt.Errorf("webcrypto: failed to draw UUID bytes: %w", err)
	}
	return id.String(), nil
}
