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
	"fmt"
	"time"

	"github.com/jeremyhahn/go-webcrypto/pkg/algorithm"
	"github.com/jeremyhahn/go-webcrypto/pkg/metrics"
	"github.com/jeremyhahn/go-webcrypto/pkg/storage"
	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

// Sign signs data with the given private key. The digest algorithm comes
// from the key's stored algorithm; the padding scheme from params.
//
// Preconditions are checked before any cryptographic work: the key must be
// a private key whose stored algorithm matches the requested scheme, and
// its material must be fetchable from the vault.
func (s *SubtleCrypto) Sign(params algorithm.SignParams, key *CryptoKey, data []byte) (signature []byte, err error) {
	if params == nil {
		return nil, fmt.Errorf("%w: nil parameters", ErrUnsupportedAlgorithm)
	}
	start := time.Now()
	defer func() {
		s.recorder.RecordOperation(metrics.OpSign, params.Name().String(), err, start)
	}()

	switch p := params.(type) {
	case *algorithm.RSASSAParams:
		material, hash, rsaErr := s.rsaSigningInputs(params, key, types.KeyTypePrivate)
		if rsaErr != nil {
			return nil, rsaErr
		}
		digest, digestErr := s.provider.Hash(hash, data)
		if digestErr != nil {
			return nil, digestErr
		}
		signature, err = s.provider.SignPKCS1v15(material.Bytes(), hash, digest)
	case *algorithm.RSAPSSParams:
		material, hash, rsaErr := s.rsaSigningInputs(params, key, types.KeyTypePrivate)
		if rsaErr != nil {
			return nil, rsaErr
		}
		digest, digestErr := s.provider.Hash(hash, data)
		if digestErr != nil {
			return nil, digestErr
		}
		signature, err = s.provider.SignPSS(s.rng, material.Bytes(), hash, digest, p.SaltLength)
	default:
		return nil, fmt.Errorf("%w: %s signing", ErrUnsupportedAlgorithm, params.Name())
	}
	if err != nil {
		s.logger.Debug("sign failed", "algorithm", params.Name().String(), "error", err)
		return nil, err
	}
	s.logger.Debug("sign", "algorithm", params.Name().String())
	return signature, nil
}

// Verify checks a signature over data with the given public key. The
// boolean result is reserved for cryptographic validity: malformed
// signatures and mismatched messages both yield false. Structural problems
// (wrong key type, unrecognized hash, unreadable handle) are explicit
// errors, never a false result.
func (s *SubtleCrypto) Verify(params algorithm.SignParams, key *CryptoKey, signature, data []byte) (valid bool, err error) {
	if params == nil {
		return false, fmt.Errorf("%w: nil parameters", ErrUnsupportedAlgorithm)
	}
	start := time.Now()
	defer func() {
		s.recorder.RecordOperation(metrics.OpVerify, params.Name().String(), err, start)
	}()

	switch p := params.(type) {
	case *algorithm.RSASSAParams:
		material, hash, rsaErr := s.rsaSigningInputs(params, key, types.KeyTypePublic)
		if rsaErr != nil {
			return false, rsaErr
		}
		digest, digestErr := s.provider.Hash(hash, data)
		if digestErr != nil {
			return false, digestErr
		}
		valid, err = s.provider.VerifyPKCS1v15(material.Bytes(), hash, digest, signature)
	case *algorithm.RSAPSSParams:
		material, hash, rsaErr := s.rsaSigningInputs(params, key, types.KeyTypePublic)
		if rsaErr != nil {
			return false, rsaErr
		}
		digest, digestErr := s.provider.Hash(hash, data)
		if digestErr != nil {
			return false, digestErr
		}
		valid, err = s.provider.VerifyPSS(material.Bytes(), hash, digest, signature, p.SaltLength)
	default:
		return false, fmt.Errorf("%w: %s verification", ErrUnsupportedAlgorithm, params.Name())
	}
	if err != nil {
		s.logger.Debug("verify failed", "algorithm", params.Name().String(), "error", err)
		return false, err
	}
	s.logger.Debug("verify", "algorithm", params.Name().String(), "valid", valid)
	return valid, nil
}

// rsaSigningInputs enforces the shared sign/verify preconditions for the
// RSA-hashed schemes: key presence, key type, algorithm match and a
// recognized hash, then fetches the key material. An unfetchable handle
// is an internal consistency failure, not a recoverable condition.
func (s *SubtleCrypto) rsaSigningInputs(params algorithm.SignParams, key *CryptoKey, want types.KeyType) (storage.KeyMaterial, types.HashName, error) {
	if key == nil {
		return storage.KeyMaterial{}, "", ErrKeyRequired
	}
	if key.Type() != want {
		return storage.KeyMaterial{}, "", fmt.Errorf("%w: %s requires a %s key, got %s",
			ErrInvalidAccess, params.Name(), want, key.Type())
	}
	alg, ok := key.Algorithm().(*algorithm.RSAHashedKeyAlgorithm)
	if !ok || alg.Algorithm != params.Name() {
		return storage.KeyMaterial{}, "", fmt.Errorf("%w: key algorithm %s does not match %s",
			ErrInvalidAccess, key.Algorithm().Name(), params.Name())
	}
	if _, ok := alg.Hash.CryptoHash(); !ok {
		return storage.KeyMaterial{}, "", fmt.Errorf("%w: %q", ErrUnsupportedHash, alg.Hash)
	}

	material, err := s.fetchMaterial(key)
	if err != nil {
		return storage.KeyMaterial{}, "", err
	}
	return material, alg.Hash, nil
}
