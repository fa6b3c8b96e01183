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

// Package subtle implements the operation engine: algorithm-family
// dispatch for key generation, the sign/verify pipeline and the
// CryptoKey/CryptoKeyPair lifecycle, on top of an injected randomness
// source, an injected key material vault and a primitive provider.
//
// The engine is stateless per call and performs no internal parallelism.
// Sharing one engine across goroutines is safe exactly when the injected
// randomness source and vault are themselves safe for concurrent use.
package subtle

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jeremyhahn/go-webcrypto/pkg/algorithm"
	"github.com/jeremyhahn/go-webcrypto/pkg/logging"
	"github.com/jeremyhahn/go-webcrypto/pkg/metrics"
	"github.com/jeremyhahn/go-webcrypto/pkg/primitive"
	"github.com/jeremyhahn/go-webcrypto/pkg/storage"
	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

// SubtleCrypto is the operation engine. Construct with New.
type SubtleCrypto struct {
	rng      io.Reader
	vault    storage.KeyStorage
	provider primitive.Provider
	logger   *logging.Logger
	recorder *metrics.Recorder
}

// Option configures a SubtleCrypto.
type Option func(*SubtleCrypto)

// WithProvider replaces the default software primitive provider.
func WithProvider(provider primitive.Provider) Option {
	return func(s *SubtleCrypto) { s.provider = provider }
}

// WithLogger installs a logger. The engine logs operation outcomes at
// debug level and is silent by default.
func WithLogger(logger *logging.Logger) Option {
	return func(s *SubtleCrypto) { s.logger = logger }
}

// WithMetrics installs a Prometheus metrics recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *SubtleCrypto) { s.recorder = recorder }
}

// New creates an operation engine over the given randomness source and
// key material vault. Pass a seeded deterministic reader in tests to make
// generation reproducible.
func New(rng io.Reader, vault storage.KeyStorage, opts ...Option) *SubtleCrypto {
	s := &SubtleCrypto{
		rng:      rng,
		vault:    vault,
		provider: primitive.NewSoftwareProvider(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RNG returns the engine's randomness source.
func (s *SubtleCrypto) RNG() io.Reader {
	return s.rng
}

// GenerateKey generates a key or key pair for the given algorithm
// descriptor, with the given extractability and fixed usage set.
//
// Dispatch matches on the descriptor's family and then on the canonical
// name within it. All validation (usage legality, name recognition,
// length checks) happens before any randomness is drawn or material
// stored. Symmetric families return a single *CryptoKey with
// types.KeyTypeSecret; asymmetric families return a *CryptoKeyPair whose
// halves share one stored record.
func (s *SubtleCrypto) GenerateKey(params algorithm.KeyGenParams, extractable bool, usages types.KeyUsages) (result KeyGenResult, err error) {
	if params == nil {
		return nil, fmt.Errorf("%w: nil parameters", ErrUnsupportedAlgorithm)
	}
	start := time.Now()
	defer func() {
		s.recorder.RecordOperation(metrics.OpGenerateKey, params.Name().String(), err, start)
	}()

	if err = usages.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUsage, err)
	}

	switch p := params.(type) {
	case *algorithm.RSAHashedKeyGenParams:
		result, err = s.generateRSAHashed(p, extractable, usages)
	case *algorithm.AESKeyGenParams:
		result, err = s.generateAES(p, extractable, usages)
	case *algorithm.HMACKeyGenParams:
		result, err = s.generateHMAC(p, extractable, usages)
	case *algorithm.ECKeyGenParams:
		result, err = nil, fmt.Errorf("%w: %s", ErrNotImplemented, p.Name())
	default:
		result, err = nil, fmt.Errorf("%w: %T", ErrUnsupportedAlgorithm, params)
	}
	if err != nil {
		s.logger.Debug("generate_key failed", "algorithm", params.Name().String(), "error", err)
		return nil, err
	}
	s.logger.Debug("generate_key", "algorithm", params.Name().String(), "extractable", extractable)
	return result, nil
}

// generateRSAHashed handles the RSA-hashed family: RSASSA-PKCS1-v1_5,
// RSA-PSS and RSA-OAEP.
func (s *SubtleCrypto) generateRSAHashed(p *algorithm.RSAHashedKeyGenParams, extractable bool, usages types.KeyUsages) (KeyGenResult, error) {
	var privateUsages, publicUsages []types.KeyUsage

	switch p.Algorithm {
	case types.AlgRSASSAPKCS1v15, types.AlgRSAPSS:
		if !usages.SubsetOf(types.UsageSign, types.UsageVerify) {
			return nil, fmt.Errorf("%w: %s permits sign and verify only", ErrInvalidUsage, p.Algorithm)
		}
		privateUsages = []types.KeyUsage{types.UsageSign}
		publicUsages = []types.KeyUsage{types.UsageVerify}
	case types.AlgRSAOAEP:
		if !usages.SubsetOf(types.UsageEncrypt, types.UsageDecrypt, types.UsageWrapKey, types.UsageUnwrapKey) {
			return nil, fmt.Errorf("%w: %s permits encrypt, decrypt, wrapKey and unwrapKey only", ErrInvalidUsage, p.Algorithm)
		}
		privateUsages = []types.KeyUsage{types.UsageDecrypt, types.UsageUnwrapKey}
		publicUsages = []types.KeyUsage{types.UsageEncrypt, types.UsageWrapKey}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, p.Algorithm)
	}
	if _, ok := p.Hash.CryptoHash(); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, p.Hash)
	}

	privateDER, err := s.provider.GenerateRSAKeyPair(s.rng, p.ModulusLength, p.PublicExponent)
	if err != nil {
		return nil, err
	}

	handle, err := s.vault.Store(storage.NewKeyMaterial(privateDER))
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to store key material: %w", err)
	}

	stored := p.StoredAlgorithm()
	return &CryptoKeyPair{
		PrivateKey: newCryptoKey(types.KeyTypePrivate, extractable, stored, intersect(usages, privateUsages), handle),
		PublicKey:  newCryptoKey(types.KeyTypePublic, true, stored, intersect(usages, publicUsages), handle),
	}, nil
}

// generateAES handles the AES family: AES-CTR, AES-CBC, AES-GCM, AES-KW.
// No usage restriction is enforced for symmetric keys.
func (s *SubtleCrypto) generateAES(p *algorithm.AESKeyGenParams, extractable bool, usages types.KeyUsages) (KeyGenResult, error) {
	switch p.Algorithm {
	case types.AlgAESCTR, types.AlgAESCBC, types.AlgAESGCM, types.AlgAESKW:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, p.Algorithm)
	}
	if p.Length != 128 && p.Length != 192 && p.Length != 256 {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidKeyLength, p.Length)
	}
	return s.generateSecret(p, extractable, usages, p.Length/8)
}

// generateHMAC handles the HMAC family. Length is mandatory; there is no
// default-to-block-size fallback.
func (s *SubtleCrypto) generateHMAC(p *algorithm.HMACKeyGenParams, extractable bool, usages types.KeyUsages) (KeyGenResult, error) {
	if _, ok := p.Hash.CryptoHash(); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, p.Hash)
	}
	if p.Length <= 0 || p.Length%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidKeyLength, p.Length)
	}
	return s.generateSecret(p, extractable, usages, p.Length/8)
}

// generateSecret draws n random bytes, stores them and wraps the handle
// into a secret CryptoKey.
func (s *SubtleCrypto) generateSecret(params algorithm.KeyGenParams, extractable bool, usages types.KeyUsages, n int) (KeyGenResult, error) {
	raw := make([]byte, n)
	if _, err := io.ReadFull(s.rng, raw); err != nil {
		return nil, fmt.Errorf("subtle: failed to draw key material: %w", err)
	}

	handle, err := s.vault.Store(storage.NewKeyMaterial(raw))
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to store key material: %w", err)
	}
	return newCryptoKey(types.KeyTypeSecret, extractable, params.StoredAlgorithm(), usages, handle), nil
}

// fetchMaterial retrieves the material for a key the engine issued. A
// vault miss here violates the storage contract and surfaces as
// ErrStorageConsistency.
func (s *SubtleCrypto) fetchMaterial(key *CryptoKey) (storage.KeyMaterial, error) {
	material, err := s.vault.Get(key.Handle())
	if errors.Is(err, storage.ErrNotFound) {
		return storage.KeyMaterial{}, fmt.Errorf("%w: %s", ErrStorageConsistency, key.Handle())
	}
	if err != nil {
		return storage.KeyMaterial{}, fmt.Errorf("subtle: failed to read key material: %w", err)
	}
	return material, nil
}

// intersect returns the usages requested by the caller that apply to one
// half of a key pair, preserving request order.
func intersect(requested types.KeyUsages, applicable []types.KeyUsage) types.KeyUsages {
	out := make(types.KeyUsages, 0, len(requested))
	for _, u := range requested {
		if types.KeyUsages(applicable).Contains(u) {
			out = append(out, u)
		}
	}
	return out
}
