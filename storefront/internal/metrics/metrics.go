package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	sharedFetches *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	mutations     *prometheus.CounterVec
	polls         *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "query_fetches_total",
			Help:      "Backend fetches issued by the query cache.",
		}, []string{"entity", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "query_fetch_duration_seconds",
			Help:      "Latency of backend fetches.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity"}),
		sharedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "query_shared_fetches_total",
			Help:      "Callers that joined an in-flight fetch for the same key.",
		}, []string{"entity"}),
		invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "query_invalidations_total",
			Help:      "Cache entries marked stale by a mutation.",
		}, []string{"entity"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "mutations_total",
			Help:      "Mutations run against the backend.",
		}, []string{"name", "outcome"}),
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "poll_ticks_total",
			Help:      "Poll refetches by entity.",
		}, []string{"entity", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.fetches, m.fetchDuration, m.sharedFetches, m.invalidations, m.mutations, m.polls)
	}
	return m
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) ObserveFetch(entity string, took time.Duration, err error) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(entity, outcome(err)).Inc()
	m.fetchDuration.WithLabelValues(entity).Observe(took.Seconds())
}

func (m *Metrics) SharedFetch(entity string) {
	if m == nil {
		return
	}
	m.sharedFetches.WithLabelValues(entity).Inc()
}

func (m *Metrics) Invalidated(entity string) {
	if m == nil {
		return
	}
	m.invalidations.WithLabelValues(entity).Inc()
}

func (m *Metrics) ObserveMutation(name string, err error) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(name, outcome(err)).Inc()
}

func (m *Metrics) PollTick(entity string, err error) {
	if m == nil {
		return
	}
	m.polls.WithLabelValues(entity, outcome(err)).Inc()
}
