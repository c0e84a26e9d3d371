package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters and histograms for submissions, moderation and HTTP traffic.
type Metrics struct {
	leadSubmissions   *prometheus.CounterVec
	reviewSubmissions *prometheus.CounterVec
	notifications     *prometheus.CounterVec
	moderations       *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

// New registers the collectors on reg, or the default registerer when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		leadSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Lead submissions by result",
		}, []string{"result"}),
		reviewSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "reviews",
			Name:      "submissions_total",
			Help:      "Review submissions by result",
		}, []string{"result"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "notify",
			Name:      "emails_total",
			Help:      "Lead notification emails by kind and result",
		}, []string{"kind", "result"}),
		moderations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "reviews",
			Name:      "moderations_total",
			Help:      "Review moderation actions by resulting status",
		}, []string{"status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "site",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadSubmissions, m.reviewSubmissions, m.notifications, m.moderations, m.requestDuration)
	return m
}

// ObserveLeadSubmission counts a contact form submission by result (created, invalid, failed).
func (m *Metrics) ObserveLeadSubmission(result string) {
	if m == nil {
		return
	}
	m.leadSubmissions.WithLabelValues(result).Inc()
}

// ObserveReviewSubmission counts a review submission by result.
func (m *Metrics) ObserveReviewSubmission(result string) {
	if m == nil {
		return
	}
	m.reviewSubmissions.WithLabelValues(result).Inc()
}

// ObserveNotification records one notification outcome. Skipped notifications use result "skipped".
func (m *Metrics) ObserveNotification(kind, result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, result).Inc()
}

// ObserveModeration records a status change or a deletion ("deleted").
func (m *Metrics) ObserveModeration(status string) {
	if m == nil {
		return
	}
	m.moderations.WithLabelValues(status).Inc()
}

// ObserveRequest records the latency of one HTTP request against its route template.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
