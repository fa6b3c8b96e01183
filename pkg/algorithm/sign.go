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
	"github.com/jeremyhahn/go-webcrypto/pkg/types"
)

// SignParams is the closed union of per-algorithm signing parameters
// accepted by the operation engine's Sign and Verify. The digest algorithm
// is not part of the signing parameters; it comes from the key's stored
// algorithm.
type SignParams interface {
	// Name returns the canonical algorithm name.
	Name() types.AlgorithmName

	signParams()
}

// RSASSAParams selects RSASSA-PKCS1-v1_5 signature padding. The variant
// carries no parameters of its own.
type RSASSAParams struct{}

// Name returns the canonical algorithm name.
func (p *RSASSAParams) Name() types.AlgorithmName { return types.AlgRSASSAPKCS1v15 }

func (p *RSASSAParams) signParams() {}

// RSAPSSParams selects RSASSA-PSS signature padding.
type RSAPSSParams struct {
	// SaltLength is the exact PSS salt length in bytes and must be
	// positive. Verification requires the signature's salt to have this
	// length; there is no auto-detected or hash-derived default.
	SaltLength int
}

// Name returns the canonical algorithm name.
func (p *RSAPSSParams) Name() types.AlgorithmName { return types.AlgRSAPSS }

func (p *RSAPSSParams) signParams() {}

// ECDSAParams selects ECDSA signing. The variant exists as a dispatch slot
// only; the operation engine reports it as unsupported.
type ECDSAParams struct {
	// Hash is the digest algorithm. Unlike the RSA variants, ECDSA carries
	// its hash in the signing parameters.
	Hash types.HashName
}

// Name returns the canonical algorithm name.
func (p *ECDSAParams) Name() types.AlgorithmName { return types.AlgECDSA }

func (p *ECDSAParams) signParams() {}

// Interface compliance checks.
var (
	_ SignParams = (*RSASSAParams)(nil)
	_ SignParams = (*RSAPSSParams)(nil)
	_ SignParams = (*ECDSAParams)(nil)
)
