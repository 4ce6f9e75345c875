// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SnapshotInsights = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_insights",
			Help: "Number of insights in the current content snapshot.",
		})

	SnapshotLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_load_total",
			Help: "Cumulative number of successful snapshot loads.",
		})

	SnapshotLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_load_errors_total",
			Help: "Cumulative number of snapshot load errors.",
		})

	SlugResolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slug_resolve_total",
			Help: "Slug resolutions by match tier (exact, fold, fuzzy, miss).",
		},
		[]string{"tier"},
	)
)

func init() {
	prometheus.MustRegister(
		SnapshotInsights,
		SnapshotLoadTotal,
		SnapshotLoadErrorsTotal,
		SlugResolveTotal,
	)
}
