// Package metrics exposes prometheus counters for the estimator API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EstimatesTotal counts estimates served, partitioned by whether an exact
	// price match existed.
	EstimatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estimator_estimates_total",
		Help: "Estimates served, by priced outcome.",
	}, []string{"priced"})

	// AdminMutationsTotal counts admin catalog/price mutations.
	AdminMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estimator_admin_mutations_total",
		Help: "Admin catalog and price mutations, by entity and action.",
	}, []string{"entity", "action"})

	// GridBuildsTotal counts full combination-grid enumerations (cache misses
	// plus warm-worker refreshes).
	GridBuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estimator_grid_builds_total",
		Help: "Full combination grid enumerations.",
	})
)

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
