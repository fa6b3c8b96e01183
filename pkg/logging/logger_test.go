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

package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlerLogger_Captures(t *testing.T) {
	var buf bytes.Buffer
	logger := NewHandlerLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	logger.Debug("generate_key", "algorithm", "RSA-PSS")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "generate_key")
	assert.Contains(t, out, "RSA-PSS")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewHandlerLogger(slog.NewTextHandler(&buf, nil)).With("component", "subtle")

	logger.Info("hello")
	assert.Contains(t, buf.String(), "component=subtle")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.Debug("dropped")
		logger.Error("dropped")
	})
}

func TestNewLogger(t *testing.T) {
	require.NotNil(t, NewLogger(false))
	require.NotNil(t, NewLogger(true))
}
