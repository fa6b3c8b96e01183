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

package storage

import "errors"

var (
	// ErrClosed is returned when attempting to use a closed vault.
	ErrClosed = errors.New("storage: closed")

	// ErrNotFound is returned when a handle is unknown or evicted.
	ErrNotFound = errors.New("storage: not found")

	// ErrPassphraseRequired is returned when opening an encrypted vault
	// without a passphrase.
	ErrPassphraseRequired = errors.New("storage: passphrase required")

	// ErrInvalidVault is returned when an encrypted vault directory is
	// missing its metadata or the metadata is malformed.
	ErrInvalidVault = errors.New("storage: invalid vault")
)
