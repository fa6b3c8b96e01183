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

package primitive

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"
	"math/big"

	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

const (
	// minModulusBits is the smallest RSA modulus the software provider
	// will generate. crypto/rsa refuses smaller keys.
	minModulusBits = 1024

	// f4 is the only public exponent crypto/rsa generates keys with.
	f4 = 65537
)

// SoftwareProvider implements Provider on the standard library
// (crypto/rsa, crypto/x509, crypto/sha*). Key generation supports only the
// F4 public exponent (65537); any other exponent is an infeasible
// combination for this provider and fails before any randomness is drawn.
//
// Stateless and safe for concurrent use; thread-safety of the randomness
// sources passed in is the caller's concern.
type SoftwareProvider struct{}

// NewSoftwareProvider creates a standard library backed provider.
func NewSoftwareProvider() *SoftwareProvider {
	return &SoftwareProvider{}
}

// GenerateRSAKeyPair draws an RSA key pair and returns the private key as
// PKCS#8 DER.
func (p *SoftwareProvider) GenerateRSAKeyPair(rng io.Reader, modulusBits int, publicExponent []byte) ([]byte, error) {
	if modulusBits < minModulusBits || modulusBits%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidModulusLength, modulusBits)
	}
	if len(publicExponent) == 0 || len(publicExponent) > 4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidPublicExponent, len(publicExponent))
	}
	if e := new(big.Int).SetBytes(publicExponent); !e.IsInt64() || e.Int64() != f4 {
		return nil, fmt.Errorf("%w: only 65537 is supported", ErrInvalidPublicExponent)
	}

	privateKey, err := rsa.GenerateKey(rng, modulusBits)
	if err != nil {
		return nil, fmt.Errorf("primitive: RSA key generation failed: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("primitive: PKCS#8 encoding failed: %w", err)
	}
	return der, nil
}

// DeriveRSAPublicKey extracts the public half of a PKCS#8 RSA private key
// as PKIX DER.
func (p *SoftwareProvider) DeriveRSAPublicKey(privateDER []byte) ([]byte, error) {
	privateKey, err := p.parseRSAPrivateKey(privateDER)
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("primitive: PKIX encoding failed: %w", err)
	}
	return der, nil
}

// Hash computes the digest of data with the given hash algorithm.
func (p *SoftwareProvider) Hash(hash types.HashName, data []byte) ([]byte, error) {
	h, ok := hash.CryptoHash()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	hasher := h.New()
	hasher.Write(data)
	return hasher.Sum(nil), nil
}

// SignPKCS1v15 signs a digest with RSASSA-PKCS1-v1_5 padding. The padding
// is deterministic; no randomness is consumed.
func (p *SoftwareProvider) SignPKCS1v15(privateDER []byte, hash types.HashName, digest []byte) ([]byte, error) {
	privateKey, h, err := p.signingInputs(privateDER, hash, digest)
	if err != nil {
		return nil, err
	}
	signature, err := rsa.SignPKCS1v15(nil, privateKey, h, digest)
	if err != nil {
		return nil, fmt.Errorf("primitive: PKCS#1 v1.5 signing failed: %w", err)
	}
	return signature, nil
}

// VerifyPKCS1v15 checks an RSASSA-PKCS1-v1_5 signature over a digest.
func (p *SoftwareProvider) VerifyPKCS1v15(privateDER []byte, hash types.HashName, digest, signature []byte) (bool, error) {
	privateKey, h, err := p.signingInputs(privateDER, hash, digest)
	if err != nil {
		return false, err
	}
	if err := rsa.VerifyPKCS1v15(&privateKey.PublicKey, h, digest, signature); err != nil {
		return false, nil
	}
	return true, nil
}

// SignPSS signs a digest with RSASSA-PSS padding, drawing the salt from
// rng. The salt length is the literal byte count and must be positive;
// crypto/rsa reserves 0 and -1 as auto-selection sentinels, which this
// provider never forwards.
func (p *SoftwareProvider) SignPSS(rng io.Reader, privateDER []byte, hash types.HashName, digest []byte, saltLength int) ([]byte, error) {
	if saltLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSaltLength, saltLength)
	}
	privateKey, h, err := p.signingInputs(privateDER, hash, digest)
	if err != nil {
		return nil, err
	}
	opts := &rsa.PSSOptions{SaltLength: saltLength, Hash: h}
	signature, err := rsa.SignPSS(rng, privateKey, h, digest, opts)
	if err != nil {
		return nil, fmt.Errorf("primitive: PSS signing failed: %w", err)
	}
	return signature, nil
}

// VerifyPSS checks an RSASSA-PSS signature over a digest. The salt length
// is the exact byte count the signature must carry; a signature produced
// with any other salt length fails verification. Non-positive values are a
// structural error, never a wildcard match.
func (p *SoftwareProvider) VerifyPSS(privateDER []byte, hash types.HashName, digest, signature []byte, saltLength int) (bool, error) {
	if saltLength < 1 {
		return false, fmt.Errorf("%w: %d", ErrInvalidSaltLength, saltLength)
	}
	privateKey, h, err := p.signingInputs(privateDER, hash, digest)
	if err != nil {
		return false, err
	}
	opts := &rsa.PSSOptions{SaltLength: saltLength, Hash: h}
	if err := rsa.VerifyPSS(&privateKey.PublicKey, h, digest, signature, opts); err != nil {
		return false, nil
	}
	return true, nil
}

// signingInputs parses the private key and resolves the hash, rejecting
// digests whose length does not match the hash.
func (p *SoftwareProvider) signingInputs(privateDER []byte, hash types.HashName, digest []byte) (*rsa.PrivateKey, crypto.Hash, error) {
	privateKey, err := p.parseRSAPrivateKey(privateDER)
	if err != nil {
		return nil, 0, err
	}
	h, ok := hash.CryptoHash()
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	if len(digest) != h.Size() {
		return nil, 0, fmt.Errorf("%w: got %d bytes, %s produces %d", ErrDigestLength, len(digest), hash, h.Size())
	}
	return privateKey, h, nil
}

// parseRSAPrivateKey decodes PKCS#8 DER into an RSA private key.
func (p *SoftwareProvider) parseRSAPrivateKey(privateDER []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(privateDER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key (%T)", ErrInvalidPrivateKey, parsed)
	}
	return privateKey, nil
}

// Verify interface compliance at compile time
var _ Provider = (*SoftwareProvider)(nil)
