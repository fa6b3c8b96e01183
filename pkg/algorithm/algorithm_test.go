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

package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

func TestRSAHashedKeyGenParams_StoredAlgorithm(t *testing.T) {
	params := &RSAHashedKeyGenParams{
		Algorithm:      types.AlgRSAPSS,
		ModulusLength:  2048,
		PublicExponent: []byte{0x01, 0x00, 0x01},
		Hash:           types.HashSHA256,
	}

	stored, ok := params.StoredAlgorithm().(*RSAHashedKeyAlgorithm)
	require.True(t, ok)
	assert.Equal(t, types.AlgRSAPSS, stored.Algorithm)
	assert.Equal(t, 2048, stored.ModulusLength)
	assert.Equal(t, []byte{0x01, 0x00, 0x01}, stored.PublicExponent)
	assert.Equal(t, types.HashSHA256, stored.Hash)
	assert.Equal(t, types.AlgRSAPSS, stored.Name())
}

func TestRSAHashedKeyGenParams_StoredAlgorithm_CopiesExponent(t *testing.T) {
	exponent := []byte{0x01, 0x00, 0x01}
	params := &RSAHashedKeyGenParams{
		Algorithm:      types.AlgRSASSAPKCS1v15,
		ModulusLength:  2048,
		PublicExponent: exponent,
		Hash:           types.HashSHA256,
	}

	stored := params.StoredAlgorithm().(*RSAHashedKeyAlgorithm)
	exponent[0] = 0xFF
	assert.Equal(t, []byte{0x01, 0x00, 0x01}, stored.PublicExponent,
		"mutating the params exponent must not reach the stored algorithm")
}

func TestAESKeyGenParams_StoredAlgorithm(t *testing.T) {
	params := &AESKeyGenParams{Algorithm: types.AlgAESGCM, Length: 256}

	stored, ok := params.StoredAlgorithm().(*AESKeyAlgorithm)
	require.True(t, ok)
	assert.Equal(t, types.AlgAESGCM, stored.Algorithm)
	assert.Equal(t, 256, stored.Length)
}

func TestHMACKeyGenParams_StoredAlgorithm(t *testing.T) {
	params := &HMACKeyGenParams{Hash: types.HashSHA512, Length: 512}

	stored, ok := params.StoredAlgorithm().(*HMACKeyAlgorithm)
	require.True(t, ok)
	assert.Equal(t, types.HashSHA512, stored.Hash)
	assert.Equal(t, 512, stored.Length)
	assert.Equal(t, types.AlgHMAC, stored.Name())
	assert.Equal(t, types.AlgHMAC, params.Name())
}

func TestECKeyGenParams_StoredAlgorithm(t *testing.T) {
	params := &ECKeyGenParams{Algorithm: types.AlgECDSA, NamedCurve: "P-256"}

	stored, ok := params.StoredAlgorithm().(*ECKeyAlgorithm)
	require.True(t, ok)
	assert.Equal(t, types.AlgECDSA, stored.Algorithm)
	assert.Equal(t, "P-256", stored.NamedCurve)
}

func TestSignParams_Names(t *testing.T) {
	assert.Equal(t, types.AlgRSASSAPKCS1v15, (&RSASSAParams{}).Name())
	assert.Equal(t, types.AlgRSAPSS, (&RSAPSSParams{SaltLength: 20}).Name())
	assert.Equal(t, types.AlgECDSA, (&ECDSAParams{Hash: types.HashSHA256}).Name())
}
