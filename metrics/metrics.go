// Package metrics holds the prometheus collectors updated by the coordinate system and
// map projection packages. Nothing is registered by default; call Register with the
// registry of the application.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainExcursionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "referencing_projection_domain_excursions_total",
			Help: "Total number of points projected to NaN because they were outside the projection domain.",
		},
		[]string{"projection"},
	)

	noConvergenceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "referencing_projection_no_convergence_total",
			Help: "Total number of inverse projections that failed to converge.",
		},
		[]string{"projection"},
	)

	conventionComputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "referencing_cs_convention_computations_total",
			Help: "Total number of coordinate systems computed for an axes convention (cache misses).",
		},
		[]string{"convention"},
	)
)

// Collectors returns all collectors of this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{domainExcursionsTotal, noConvergenceTotal, conventionComputationsTotal}
}

// Register registers all collectors with r. Collectors already registered are ignored.
func Register(r prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := r.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

// DomainExcursion records a point outside the domain of the named projection.
func DomainExcursion(projection string) {
	domainExcursionsTotal.WithLabelValues(projection).Inc()
}

// NoConvergence records an inverse projection that did not converge.
func NoConvergence(projection string) {
	noConvergenceTotal.WithLabelValues(projection).Inc()
}

// ConventionComputed records the computation of a coordinate system for an axes convention.
func ConventionComputed(convention string) {
	conventionComputationsTotal.WithLabelValues(convention).Inc()
}
