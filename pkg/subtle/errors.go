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

import "errors"

// Error taxonomy of the operation engine. Validation and access errors
// are detected before any randomness is drawn or storage is written;
// primitive failures are propagated wrapped; ErrStorageConsistency marks
// a broken vault contract and is never retried.
var (
	// ErrKeyRequired indicates a nil key was passed to an operation.
	ErrKeyRequired = errors.New("subtle: key required")

	// ErrInvalidUsage indicates a requested usage set is not permitted
	// for the algorithm ("SyntaxError" class).
	ErrInvalidUsage = errors.New("subtle: key usage not permitted for algorithm")

	// ErrInvalidKeyLength indicates an invalid symmetric key length
	// ("SyntaxError" class).
	ErrInvalidKeyLength = errors.New("subtle: invalid key length")

	// ErrUnsupportedHash indicates an unrecognized digest algorithm name
	// ("SyntaxError" class).
	ErrUnsupportedHash = errors.New("subtle: unsupported hash algorithm")

	// ErrUnsupportedAlgorithm indicates an algorithm name not recognized
	// within its family.
	ErrUnsupportedAlgorithm = errors.New("subtle: unsupported algorithm")

	// ErrNotImplemented indicates a recognized family whose dispatch slot
	// is intentionally unimplemented (elliptic curve).
	ErrNotImplemented = errors.New("subtle: algorithm not implemented")

	// ErrInvalidAccess indicates an operation requested against a key of
	// the wrong type or algorithm ("InvalidAccessError" class).
	ErrInvalidAccess = errors.New("subtle: operation not permitted for key")

	// ErrKeyNotExtractable indicates an export attempt on a key generated
	// with extractable=false ("InvalidAccessError" class).
	ErrKeyNotExtractable = errors.New("subtle: key is not extractable")

	// ErrUnsupportedFormat indicates an export format not applicable to
	// the key's type or algorithm.
	ErrUnsupportedFormat = errors.New("subtle: unsupported export format")

	// ErrStorageConsistency indicates the vault could not return material
	// for a handle the engine itself issued. This is a programming
	// contract violation in the storage backend, not a recoverable
	// condition.
	ErrStorageConsistency = errors.New("subtle: storage lost material for engine-issued handle")
)
