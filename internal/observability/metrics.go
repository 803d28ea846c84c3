package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel_agency"

// Metrics holds the application's Prometheus collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	MediaRemovals     *prometheus.CounterVec
	EnquiriesReceived *prometheus.CounterVec

	OrphanSweeps     *prometheus.CounterVec
	ExhaustedOrphans prometheus.Gauge
	PurgedOTPs       prometheus.Counter
}

// NewMetrics registers every collector with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		MediaRemovals: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_removals_total",
			Help:      "Media object removal attempts by outcome.",
		}, []string{"outcome"}),

		EnquiriesReceived: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enquiries_received_total",
			Help:      "Enquiries submitted from the public site by source.",
		}, []string{"source"}),

		OrphanSweeps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_orphan_sweep_total",
			Help:      "Orphaned media retried by the sweeper, by outcome.",
		}, []string{"outcome"}),

		ExhaustedOrphans: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "media_orphans_exhausted",
			Help:      "Orphaned media that ran out of retries and need manual cleanup.",
		}),

		PurgedOTPs: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otps_purged_total",
			Help:      "Expired one-time codes deleted by the purge job.",
		}),
	}
}

func (m *Metrics) MediaRemoval(outcome string)   { m.MediaRemovals.WithLabelValues(outcome).Inc() }
func (m *Metrics) EnquiryReceived(source string) { m.EnquiriesReceived.WithLabelValues(source).Inc() }
func (m *Metrics) OrphanSwept(outcome string)    { m.OrphanSweeps.WithLabelValues(outcome).Inc() }
func (m *Metrics) OrphansExhausted(n int)        { m.ExhaustedOrphans.Set(float64(n)) }
func (m *Metrics) OTPsPurged(n int64)            { m.PurgedOTPs.Add(float64(n)) }
