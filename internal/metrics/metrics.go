// Package metrics exposes Prometheus counters for refund, waitlist and
// rate limiting activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eventbook"

// Recorder implements interfaces.RefundMetrics and the rate limiter hook.
type Recorder struct {
	gatherer prometheus.Gatherer

	refundRequests     *prometheus.CounterVec
	refundAmount       *prometheus.HistogramVec
	rateLimited        *prometheus.CounterVec
	waitlistPromotions prometheus.Counter
}

// NewRecorder registers the collectors on reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		gatherer: reg,
		refundRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refund_requests_total",
			Help:      "Refund and withdrawal requests by source and result.",
		}, []string{"source", "result"}),
		refundAmount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refund_amount",
			Help:      "Issued refund amounts in major currency units.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"source"}),
		rateLimited: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter, by path prefix.",
		}, []string{"prefix"}),
		waitlistPromotions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waitlist_promotions_total",
			Help:      "Participants promoted from the waitlist.",
		}),
	}
}

func (r *Recorder) RefundRequested(source, result string) {
	r.refundRequests.WithLabelValues(source, result).Inc()
}

func (r *Recorder) RefundIssued(source string, amountCents int64) {
	r.refundAmount.WithLabelValues(source).Observe(float64(amountCents) / 100)
}

func (r *Recorder) WaitlistPromoted(count int) {
	if count <= 0 {
		return
	}
	r.waitlistPromotions.Add(float64(count))
}

func (r *Recorder) RateLimited(prefix string) {
	r.rateLimited.WithLabelValues(prefix).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
