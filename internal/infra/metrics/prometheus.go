// Package metrics exposes proximity alert counters through a dedicated Prometheus registry.
package metrics

import (
	"net/http"
	"time"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lostfound"

// Registry holds the alert metrics and the registry they are exported from.
type Registry struct {
	registry *prometheus.Registry

	forwardScans    prometheus.Counter
	forwardMatches  prometheus.Histogram
	zonesSkipped    prometheus.Counter
	deliveries      *prometheus.CounterVec
	nearbyLatencies prometheus.Histogram
}

// NewRegistry creates and registers every alert metric plus the Go runtime collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		forwardScans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forward_scans_total",
			Help:      "Publish-time zone scans.",
		}),
		forwardMatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "forward_matches",
			Help:      "Zones matched per publish-time scan.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		zonesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zones_skipped_total",
			Help:      "Zones excluded from matching for an invalid radius or center.",
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_deliveries_total",
			Help:      "Alert mail attempts by outcome.",
		}, []string{"status"}),
		nearbyLatencies: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nearby_query_duration_seconds",
			Help:      "Latency of the dashboard nearby query.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	r.registry.MustRegister(
		r.forwardScans,
		r.forwardMatches,
		r.zonesSkipped,
		r.deliveries,
		r.nearbyLatencies,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// NewAlertMetrics exposes the registry as the domain metrics port.
func NewAlertMetrics(r *Registry) service.AlertMetrics {
	return r
}

// ObserveForwardMatch implements service.AlertMetrics.
func (r *Registry) ObserveForwardMatch(matched int) {
	r.forwardScans.Inc()
	r.forwardMatches.Observe(float64(matched))
}

// ObserveZonesSkipped implements service.AlertMetrics.
func (r *Registry) ObserveZonesSkipped(count int) {
	if count <= 0 {
		return
	}
	r.zonesSkipped.Add(float64(count))
}

// ObserveDelivery implements service.AlertMetrics.
func (r *Registry) ObserveDelivery(status entity.DeliveryStatus) {
	r.deliveries.WithLabelValues(string(status)).Inc()
}

// ObserveNearbyQuery implements service.AlertMetrics.
func (r *Registry) ObserveNearbyQuery(duration time.Duration) {
	r.nearbyLatencies.Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
