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

// Package metrics provides Prometheus instrumentation for go-webcrypto
// operations. It exposes operation counters, error counters and latency
// histograms so embedders can monitor key generation and signing load.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all webcrypto metrics
	Namespace = "webcrypto"

	// Label names
	LabelOperation = "operation"
	LabelAlgorithm = "algorithm"
	LabelStatus    = "status"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation names
	OpGenerateKey = "generate_key"
	OpSign        = "sign"
	OpVerify      = "verify"
	OpExportKey   = "export_key"
)

var (
	// OperationsTotal tracks the total number of engine operations by
	// operation, algorithm and status. Use RecordOperation to increment.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of webcrypto operations by operation, algorithm and status",
		},
		[]string{LabelOperation, LabelAlgorithm, LabelStatus},
	)

	// OperationDuration tracks operation latency in seconds. Buckets are
	// sized for hash/sign latencies at the low end and RSA key generation
	// at the high end.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of webcrypto operations in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10},
		},
		[]string{LabelOperation, LabelAlgorithm},
	)

	// ErrorsTotal tracks errors by operation and algorithm.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total number of webcrypto errors by operation and algorithm",
		},
		[]string{LabelOperation, LabelAlgorithm},
	)
)

// Recorder records engine operation outcomes. A nil *Recorder is a no-op,
// so callers can thread it through unconditionally.
type Recorder struct{}

// NewRecorder returns a Recorder publishing to the package-level
// Prometheus collectors.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordOperation records one completed operation with its outcome and
// duration.
func (r *Recorder) RecordOperation(operation, algorithm string, err error, start time.Time) {
	if r == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
		ErrorsTotal.WithLabelValues(operation, algorithm).Inc()
	}
	OperationsTotal.WithLabelValues(operation, algorithm, status).Inc()
	OperationDuration.WithLabelValues(operation, algorithm).Observe(time.Since(start).Seconds())
}
