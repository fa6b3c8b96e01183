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
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-webcrypto/pkg/algorithm"
	"github.com/jeremyhahn/go-webcrypto/pkg/primitive"
	"github.com/jeremyhahn/go-webcrypto/pkg/storage"
	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

// generatePair generates an RSA pair for the given scheme and hash.
func generatePair(t *testing.T, engine *SubtleCrypto, name types.AlgorithmName, hash types.HashName) *CryptoKeyPair {
	t.Helper()
	params := &algorithm.RSAHashedKeyGenParams{
		Algorithm:      name,
		ModulusLength:  2048,
		PublicExponent: []byte{0x01, 0x00, 0x01},
		Hash:           hash,
	}
	result, err := engine.GenerateKey(params, true,
		types.KeyUsages{types.UsageSign, types.UsageVerify})
	require.NoError(t, err)
	return result.(*CryptoKeyPair)
}

func TestSignVerify_PSS_RoundTrip(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)
	message := []byte("round trip message")

	for _, hash := range []types.HashName{
		types.HashSHA1, types.HashSHA256, types.HashSHA384, types.HashSHA512,
	} {
		pair := generatePair(t, engine, types.AlgRSAPSS, hash)
		for _, saltLength := range []int{16, 20, 32} {
			t.Run(fmt.Sprintf("%s/salt=%d", hash, saltLength), func(t *testing.T) {
				params := &algorithm.RSAPSSParams{SaltLength: saltLength}

				signature, err := engine.Sign(params, pair.PrivateKey, message)
				require.NoError(t, err)

				valid, err := engine.Verify(params, pair.PublicKey, signature, message)
				require.NoError(t, err)
				assert.True(t, valid)

				// One flipped signature bit must fail cryptographically.
				flipped := append([]byte(nil), signature...)
				flipped[0] ^= 0x01
				valid, err = engine.Verify(params, pair.PublicKey, flipped, message)
				require.NoError(t, err)
				assert.False(t, valid)

				// One flipped message bit likewise.
				tampered := append([]byte(nil), message...)
				tampered[0] ^= 0x01
				valid, err = engine.Verify(params, pair.PublicKey, signature, tampered)
				require.NoError(t, err)
				assert.False(t, valid)
			})
		}
	}
}

// TestSignVerify_PSS_SaltLengthMismatch checks that verification binds to
// the requested salt length: a signature made with one salt length fails
// under another, and salt length zero is rejected rather than treated as
// crypto/rsa's match-any sentinel.
func TestSignVerify_PSS_SaltLengthMismatch(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)
	pair := generatePair(t, engine, types.AlgRSAPSS, types.HashSHA256)
	message := []byte("salt bound message")

	signature, err := engine.Sign(&algorithm.RSAPSSParams{SaltLength: 20}, pair.PrivateKey, message)
	require.NoError(t, err)

	valid, err := engine.Verify(&algorithm.RSAPSSParams{SaltLength: 32}, pair.PublicKey, signature, message)
	require.NoError(t, err)
	assert.False(t, valid, "a salt-20 signature must not verify at salt 32")

	valid, err = engine.Verify(&algorithm.RSAPSSParams{SaltLength: 0}, pair.PublicKey, signature, message)
	assert.ErrorIs(t, err, primitive.ErrInvalidSaltLength)
	assert.False(t, valid)

	_, err = engine.Sign(&algorithm.RSAPSSParams{SaltLength: 0}, pair.PrivateKey, message)
	assert.ErrorIs(t, err, primitive.ErrInvalidSaltLength)

	_, err = engine.Sign(&algorithm.RSAPSSParams{SaltLength: -1}, pair.PrivateKey, message)
	assert.ErrorIs(t, err, primitive.ErrInvalidSaltLength)
}

func TestSignVerify_PKCS1_RoundTrip(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)
	pair := generatePair(t, engine, types.AlgRSASSAPKCS1v15, types.HashSHA256)
	params := &algorithm.RSASSAParams{}
	message := []byte("pkcs1 message")

	signature, err := engine.Sign(params, pair.PrivateKey, message)
	require.NoError(t, err)

	valid, err := engine.Verify(params, pair.PublicKey, signature, message)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = engine.Verify(params, pair.PublicKey, signature, []byte("different"))
	require.NoError(t, err)
	assert.False(t, valid)

	// Garbage signatures are a false result, not an error.
	valid, err = engine.Verify(params, pair.PublicKey, []byte("not a signature"), message)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSign_RequiresPrivateKey(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)
	pair := generatePair(t, engine, types.AlgRSAPSS, types.HashSHA256)

	_, err := engine.Sign(&algorithm.RSAPSSParams{SaltLength: 20}, pair.PublicKey, []byte("data"))
	assert.ErrorIs(t, err, ErrInvalidAccess)
}

func TestVerify_RequiresPublicKey(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)
	pair := generatePair(t, engine, types.AlgRSAPSS, types.HashSHA256)

	_, err := engine.Verify(&algorithm.RSAPSSParams{SaltLength: 20}, pair.PrivateKey, []byte("sig"), []byte("data"))
	assert.ErrorIs(t, err, ErrInvalidAccess)
}

func TestSign_AlgorithmMismatch(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)
	pair := generatePair(t, engine, types.AlgRSAPSS, types.HashSHA256)

	// A PSS key cannot sign under PKCS#1 v1.5 parameters.
	_, err := engine.Sign(&algorithm.RSASSAParams{}, pair.PrivateKey, []byte("data"))
	assert.ErrorIs(t, err, ErrInvalidAccess)
}

func TestSign_SecretKeyRejected(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)

	result, err := engine.GenerateKey(
		&algorithm.HMACKeyGenParams{Hash: types.HashSHA256, Length: 256},
		true, types.KeyUsages{types.UsageSign})
	require.NoError(t, err)

	_, err = engine.Sign(&algorithm.RSASSAParams{}, result.(*CryptoKey), []byte("data"))
	assert.ErrorIs(t, err, ErrInvalidAccess)
}

func TestSign_UnsupportedParams(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)
	pair := generatePair(t, engine, types.AlgRSAPSS, types.HashSHA256)

	_, err := engine.Sign(&algorithm.ECDSAParams{Hash: types.HashSHA256}, pair.PrivateKey, []byte("data"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = engine.Verify(&algorithm.ECDSAParams{Hash: types.HashSHA256}, pair.PublicKey, nil, nil)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestSign_NilKey(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)

	_, err := engine.Sign(&algorithm.RSAPSSParams{SaltLength: 20}, nil, []byte("data"))
	assert.ErrorIs(t, err, ErrKeyRequired)
}

func TestSign_StorageConsistency(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)
	pair := generatePair(t, engine, types.AlgRSAPSS, types.HashSHA256)

	// A key used against an engine whose vault never issued its handle
	// violates the storage contract.
	other := New(rand.Reader, storage.NewMemoryVault())
	_, err := other.Sign(&algorithm.RSAPSSParams{SaltLength: 20}, pair.PrivateKey, []byte("data"))
	assert.ErrorIs(t, err, ErrStorageConsistency)

	valid, err := other.Verify(&algorithm.RSAPSSParams{SaltLength: 20}, pair.PublicKey, []byte("sig"), []byte("data"))
	assert.ErrorIs(t, err, ErrStorageConsistency)
	assert.False(t, valid, "structural failures must never report a valid signature")
}

// TestSignVerify_HelloWorldScenario exercises the full documented flow:
// generate an RSA-PSS pair, sign a message with salt length 20 and verify
// both the original and a truncated message.
func TestSignVerify_HelloWorldScenario(t *testing.T) {
	engine, _ := newTestEngine(t, rand.Reader)

	result, err := engine.GenerateKey(&algorithm.RSAHashedKeyGenParams{
		Algorithm:      types.AlgRSAPSS,
		ModulusLength:  2048,
		PublicExponent: []byte{0x01, 0x00, 0x01},
		Hash:           types.HashSHA256,
	}, true, types.KeyUsages{types.UsageSign, types.UsageVerify})
	require.NoError(t, err)
	pair := result.(*CryptoKeyPair)

	params := &algorithm.RSAPSSParams{SaltLength: 20}
	signature, err := engine.Sign(params, pair.PrivateKey, []byte("Hello, world!"))
	require.NoError(t, err)

	valid, err := engine.Verify(params, pair.PublicKey, signature, []byte("Hello, world!"))
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = engine.Verify(params, pair.PublicKey, signature, []byte("Hello, world"))
	require.NoError(t, err)
	assert.False(t, valid)
}
