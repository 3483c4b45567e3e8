package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"code.cloudfoundry.org/tenantrouter/models"
)

var (
	DefaultMetrics = initMetrics()
)

const metricsNamespace = "tenantrouter"

type Metrics struct {
	Handler        http.Handler
	ObservedValues ObservedValues
}

type ObservedValues struct {
	LastUpdatedAt      prometheus.Gauge
	RoutedTenants      prometheus.Gauge
	SnapshotVersion    prometheus.Gauge
	RequestsTotal      *prometheus.CounterVec
	ForwardErrorsTotal *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

func initMetrics() Metrics {
	m := Metrics{
		Handler: promhttp.Handler(),
		ObservedValues: ObservedValues{
			LastUpdatedAt: prometheus.NewGauge(
				prometheus.GaugeOpts{Namespace: metricsNamespace, Name: "last_updated_at", Help: "Unix timestamp indicating last successful reconcile"}),
			RoutedTenants: prometheus.NewGauge(
				prometheus.GaugeOpts{Namespace: metricsNamespace, Name: "routed_tenants", Help: "Number of tenants in the published routing snapshot"}),
			SnapshotVersion: prometheus.NewGauge(
				prometheus.GaugeOpts{Namespace: metricsNamespace, Name: "snapshot_version", Help: "Version of the published routing snapshot"}),
			RequestsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "requests_total", Help: "Requests forwarded upstream, by tenant and destination"},
				[]string{"tenant", "destination"}),
			ForwardErrorsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "forward_errors_total", Help: "Forwarding failures, by tenant, destination and error kind"},
				[]string{"tenant", "destination", "kind"}),
			RequestDuration: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{Namespace: metricsNamespace, Name: "request_duration_seconds", Help: "Gateway request duration, by tenant"},
				[]string{"tenant"}),
		},
	}

	prometheus.MustRegister(m.ObservedValues.LastUpdatedAt)
	prometheus.MustRegister(m.ObservedValues.RoutedTenants)
	prometheus.MustRegister(m.ObservedValues.SnapshotVersion)
	prometheus.MustRegister(m.ObservedValues.RequestsTotal)
	prometheus.MustRegister(m.ObservedValues.ForwardErrorsTotal)
	prometheus.MustRegister(m.ObservedValues.RequestDuration)

	return m
}

// Update records a successfully published snapshot.
func Update(snapshot *models.RoutingSnapshot) {
	DefaultMetrics.ObservedValues.LastUpdatedAt.SetToCurrentTime()
	DefaultMetrics.ObservedValues.RoutedTenants.Set(float64(len(snapshot.Routes)))
	DefaultMetrics.ObservedValues.SnapshotVersion.Set(float64(snapshot.Version))
}

// RecordRequest counts one completed forwarded request.
func RecordRequest(tenant, destination string, duration time.Duration) {
	DefaultMetrics.ObservedValues.RequestsTotal.WithLabelValues(tenant, destination).Inc()
	DefaultMetrics.ObservedValues.RequestDuration.WithLabelValues(tenant).Observe(duration.Seconds())
}

// RecordForwardError counts one failed relay attempt.
func RecordForwardError(tenant, destination, kind string) {
	DefaultMetrics.ObservedValues.ForwardErrorsTotal.WithLabelValues(tenant, destination, kind).Inc()
}
