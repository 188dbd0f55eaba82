// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// result label for a successful transition
const resultOk = "ok"

var (
	registerOnce sync.Once

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nftd",
			Name:      "transitions_total",
			Help:      "Ledger transitions by operation and result.",
		},
		[]string{"operation", "result"},
	)
	transitionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nftd",
			Name:      "transition_seconds",
			Help:      "Ledger transition duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	totalSupply = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "nftd",
			Name:      "total_supply",
			Help:      "Number of existing tokens.",
		},
	)
)

// RegisterMetrics - add the engine collectors to the default registry
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(transitions, transitionDuration, totalSupply)
	})
}

func recordTransition(operation string, err error, duration time.Duration) {
	result := resultOk
	if nil != err {
		result = err.Error()
	}
	transitions.WithLabelValues(operation, result).Inc()
	transitionDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
