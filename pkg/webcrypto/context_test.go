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

package webcrypto

import (
	"crypto/rand"
	mathrand "math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-webcrypto/pkg/storage"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	vault := storage.NewMemoryVault()
	t.Cleanup(func() { _ = vault.Close() })
	return NewContext(rand.Reader, vault)
}

func TestGetRandomValues(t *testing.T) {
	ctx := newTestContext(t)

	buf := make([]byte, 65535)
	require.NoError(t, ctx.GetRandomValues(buf))

	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	assert.False(t, allZero, "a 64 KiB draw of all zeros means the RNG was not used")
}

func TestGetRandomValues_Quota(t *testing.T) {
	ctx := newTestContext(t)

	assert.NoError(t, ctx.GetRandomValues(make([]byte, MaxRandomValues)))
	assert.ErrorIs(t, ctx.GetRandomValues(make([]byte, MaxRandomValues+1)), ErrQuotaExceeded)
	assert.NoError(t, ctx.GetRandomValues(nil))
}

func TestRandomUUID(t *testing.T) {
	ctx := newTestContext(t)

	first, err := ctx.RandomUUID()
	require.NoError(t, err)
	second, err := ctx.RandomUUID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, uuid.RFC4122, parsed.Variant())
}

func TestRandomUUID_SeededRNGIsReproducible(t *testing.T) {
	uuidWithSeed := func(seed int64) string {
		vault := storage.NewMemoryVault()
		t.Cleanup(func() { _ = vault.Close() })
		ctx := NewContext(mathrand.New(mathrand.NewSource(seed)), vault)
		id, err := ctx.RandomUUID()
		require.NoError(t, err)
		return id
	}

	assert.Equal(t, uuidWithSeed(7), uuidWithSeed(7))
	assert.NotEqual(t, uuidWithSeed(7), uuidWithSeed(8))
}

func TestContext_SubtleWired(t *testing.T) {
	ctx := newTestContext(t)
	require.NotNil(t, ctx.Subtle)
}
