// Package metrics holds the client's Prometheus collectors. They are
// registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	CartMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation and result",
	}, []string{"operation", "result"})

	WishlistMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wishlist_mutations_total",
		Help: "Wishlist mutations by operation and result",
	}, []string{"operation", "result"})

	EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Events published on the bus by topic",
	}, []string{"topic"})

	EventListenerFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_listener_failures_total",
		Help: "Listener errors and panics caught during delivery, by topic",
	}, []string{"topic"})

	CartReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_context_reloads_total",
		Help: "Cart context reloads by outcome (applied, stale, error)",
	}, []string{"outcome"})

	CatalogRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_refresh_total",
		Help: "Catalog refresh runs by result",
	}, []string{"result"})

	CatalogRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_request_duration_seconds",
		Help:    "Duration of remote catalog requests",
		Buckets: prometheus.DefBuckets,
	})
)

// Result maps an error to a result label value.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
