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
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"time"

	jose "github.com/go-jose/go-jose/v4"
	youmarkpkcs8 "github.com/youmark/pkcs8"

	"github.com/jeremyhahn/go-webcrypto/pkg/algorithm"
	"github.com/jeremyhahn/go-webcrypto/pkg/metrics"
	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

// ExportKey exports a key's material in the requested format. The key
// must have been generated with extractable=true; exporting a
// non-extractable key is an access error.
//
// Formats: raw applies to secret keys, pkcs8 to private keys, spki to
// public keys, and jwk to all three.
func (s *SubtleCrypto) ExportKey(format types.KeyFormat, key *CryptoKey) (out []byte, err error) {
	start := time.Now()
	defer func() {
		s.recorder.RecordOperation(metrics.OpExportKey, format.String(), err, start)
	}()

	if key == nil {
		return nil, ErrKeyRequired
	}
	if !key.Extractable() {
		return nil, ErrKeyNotExtractable
	}

	material, err := s.fetchMaterial(key)
	if err != nil {
		return nil, err
	}

	switch format {
	case types.FormatRaw:
		if key.Type() != types.KeyTypeSecret {
			return nil, fmt.Errorf("%w: raw export requires a secret key", ErrUnsupportedFormat)
		}
		return material.Bytes(), nil

	case types.FormatPKCS8:
		if key.Type() != types.KeyTypePrivate {
			return nil, fmt.Errorf("%w: pkcs8 export requires a private key", ErrUnsupportedFormat)
		}
		// Asymmetric material is stored as PKCS#8 DER already.
		return material.Bytes(), nil

	case types.FormatSPKI:
		if key.Type() != types.KeyTypePublic {
			return nil, fmt.Errorf("%w: spki export requires a public key", ErrUnsupportedFormat)
		}
		return s.provider.DeriveRSAPublicKey(material.Bytes())

	case types.FormatJWK:
		return s.exportJWK(key, material.Bytes())

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ExportEncryptedPKCS8 exports a private key as password-protected PKCS#8
// DER (PBES2). The key must be extractable.
func (s *SubtleCrypto) ExportEncryptedPKCS8(key *CryptoKey, password []byte) ([]byte, error) {
	if key == nil {
		return nil, ErrKeyRequired
	}
	if !key.Extractable() {
		return nil, ErrKeyNotExtractable
	}
	if key.Type() != types.KeyTypePrivate {
		return nil, fmt.Errorf("%w: encrypted pkcs8 export requires a private key", ErrUnsupportedFormat)
	}

	material, err := s.fetchMaterial(key)
	if err != nil {
		return nil, err
	}
	privateKey, err := x509.ParsePKCS8PrivateKey(material.Bytes())
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to parse stored private key: %w", err)
	}
	der, err := youmarkpkcs8.MarshalPrivateKey(privateKey, password, nil)
	if err != nil {
		return nil, fmt.Errorf("subtle: encrypted PKCS#8 encoding failed: %w", err)
	}
	return der, nil
}

// exportJWK renders the key as an RFC 7517 JSON Web Key.
func (s *SubtleCrypto) exportJWK(key *CryptoKey, material []byte) ([]byte, error) {
	jwk := jose.JSONWebKey{
		Algorithm: jwkAlgorithm(key.Algorithm()),
	}

	switch key.Type() {
	case types.KeyTypeSecret:
		jwk.Key = material
	case types.KeyTypePrivate, types.KeyTypePublic:
		parsed, err := x509.ParsePKCS8PrivateKey(material)
		if err != nil {
			return nil, fmt.Errorf("subtle: failed to parse stored private key: %w", err)
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: jwk export of %T", ErrUnsupportedFormat, parsed)
		}
		if key.Type() == types.KeyTypePrivate {
			jwk.Key = rsaKey
		} else {
			jwk.Key = &rsaKey.PublicKey
		}
	default:
		return nil, fmt.Errorf("%w: jwk export of %s key", ErrUnsupportedFormat, key.Type())
	}
	return jwk.MarshalJSON()
}

// jwkAlgorithm maps a stored algorithm to the RFC 7518 "alg" value where
// one exists. Unmapped combinations leave "alg" unset.
func jwkAlgorithm(alg algorithm.KeyAlgorithm) string {
	switch a := alg.(type) {
	case *algorithm.RSAHashedKeyAlgorithm:
		suffix := ""
		switch a.Hash {
		case types.HashSHA256:
			suffix = "256"
		case types.HashSHA384:
			suffix = "384"
		case types.HashSHA512:
			suffix = "512"
		default:
			return ""
		}
		switch a.Algorithm {
		case types.AlgRSASSAPKCS1v15:
			return "RS" + suffix
		case types.AlgRSAPSS:
			return "PS" + suffix
		case types.AlgRSAOAEP:
			return "RSA-OAEP-" + suffix
		}
	case *algorithm.HMACKeyAlgorithm:
		switch a.Hash {
		case types.HashSHA256:
			return "HS256"
		case types.HashSHA384:
			return "HS384"
		case types.HashSHA512:
			return "HS512"
		}
	}
	return ""
}
