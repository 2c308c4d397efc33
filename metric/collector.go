// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metric exports ring instrumentation to Prometheus.
//
// The ring packages keep their counters as plain relaxed atomics so
// the hot path never touches a metrics library. This package bridges
// the two worlds: a Collector snapshots a ring's Stats on every scrape
// and emits them as constant metrics, so scrape cost lands on the
// Prometheus client, not on the producer or consumer thread.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/PranavReddyP16/Ultra-Low-Latency-Order-Book-Engine/ring"
)

// Source is any queue exposing ring counters. All ring flavors
// satisfy it.
type Source interface {
	Stats() ring.Stats
}

// RingCollector is a prometheus.Collector over one ring's counters.
//
// Register one collector per ring, each with a distinct queue name:
//
//	reg.MustRegister(metric.NewRingCollector("market_data", q))
type RingCollector struct {
	src Source

	pushes *prometheus.Desc
	pops   *prometheus.Desc
	failed *prometheus.Desc
	depth  *prometheus.Desc
}

// NewRingCollector creates a collector for src, labeled with the
// given queue name.
func NewRingCollector(queue string, src Source) *RingCollector {
	labels := prometheus.Labels{"queue": queue}
	return &RingCollector{
		src: src,
		pushes: prometheus.NewDesc(
			prometheus.BuildFQName("engine", "ring", "pushes_total"),
			"Total number of successful enqueues.",
			nil, labels,
		),
		pops: prometheus.NewDesc(
			prometheus.BuildFQName("engine", "ring", "pops_total"),
			"Total number of successful dequeues.",
			nil, labels,
		),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName("engine", "ring", "failed_pushes_total"),
			"Total number of enqueues rejected because the ring was full.",
			nil, labels,
		),
		depth: prometheus.NewDesc(
			prometheus.BuildFQName("engine", "ring", "depth"),
			"Buffered elements at scrape time (advisory).",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *RingCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pushes
	ch <- c.pops
	ch <- c.failed
	ch <- c.depth
}

// Collect implements prometheus.Collector. It snapshots the ring's
// counters; the snapshot is advisory under concurrent traffic, which
// is the nature of scraping a live queue.
func (c *RingCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.pushes, prometheus.CounterValue, float64(s.Pushes))
	ch <- prometheus.MustNewConstMetric(c.pops, prometheus.CounterValue, float64(s.Pops))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.FailedPushes))
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(s.Depth()))
}
