// Package metrics holds the Prometheus collectors shared by the client components.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	BackendRequests *prometheus.CounterVec
	Polls           *prometheus.CounterVec
	Jobs            *prometheus.CounterVec
}

// New registers the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		BackendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "backend_requests_total",
			Help:      "Backend API calls by operation and HTTP status (0 for network errors).",
		}, []string{"operation", "code"}),
		Polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "job_polls_total",
			Help:      "Job status polls by outcome.",
		}, []string{"outcome"}),
		Jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "jobs_total",
			Help:      "Generation jobs by terminal status.",
		}, []string{"status"}),
	}

	reg.MustRegister(m.BackendRequests, m.Polls, m.Jobs)
	return m
}

func (m *Metrics) ObserveRequest(op string, status int) {
	if m == nil {
		return
	}
	m.BackendRequests.WithLabelValues(op, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ObservePoll(outcome string) {
	if m == nil {
		return
	}
	m.Polls.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveJob(status string) {
	if m == nil {
		return
	}
	m.Jobs.WithLabelValues(status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
