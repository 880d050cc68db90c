package metrics

import (
	"sync"

	"github.com/arloliu/grouper/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are registered lazily on first use so that constructing the
// collector never panics on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	durationHistogram    *prometheus.HistogramVec
	runsCounter          *prometheus.CounterVec
	subjectsGauge        *prometheus.GaugeVec
	groupsGauge          *prometheus.GaugeVec
	roundsHistogram      prometheus.Histogram
	transfersCounter     prometheus.Counter
	evictionsCounter     prometheus.Counter
	dissatisfactionGauge *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "grouper" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "grouper"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.durationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "duration_seconds",
			Help:      "Time taken by Assign calls in seconds, by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"algorithm"})

		p.runsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "runs_total",
			Help:      "Total Assign calls by algorithm and result.",
		}, []string{"algorithm", "result"})

		p.subjectsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "subjects_last",
			Help:      "Number of subjects in the most recent Assign call, by algorithm.",
		}, []string{"algorithm"})

		p.groupsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "groups_last",
			Help:      "Number of groups in the most recent Assign call, by algorithm.",
		}, []string{"algorithm"})

		p.roundsHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "propose_and_reject",
			Name:      "rounds",
			Help:      "Proposal rounds needed for a propose-and-reject run to converge.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1 .. 512
		})

		p.transfersCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "propose_and_reject",
			Name:      "transfers_total",
			Help:      "Total subjects handed from an overfull group to another group.",
		})

		p.evictionsCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "propose_and_reject",
			Name:      "evictions_total",
			Help:      "Total members displaced by accepted transfers.",
		})

		p.dissatisfactionGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "total_dissatisfaction_last",
			Help:      "Summed realized dissatisfaction of the most recent assignment, by algorithm.",
		}, []string{"algorithm"})

		p.reg.MustRegister(
			p.durationHistogram,
			p.runsCounter,
			p.subjectsGauge,
			p.groupsGauge,
			p.roundsHistogram,
			p.transfersCounter,
			p.evictionsCounter,
			p.dissatisfactionGauge,
		)
	})
}

// RecordAssignmentDuration records the time taken by an Assign call.
func (p *PrometheusCollector) RecordAssignmentDuration(algorithm string, seconds float64) {
	p.ensureRegistered()
	p.durationHistogram.WithLabelValues(algorithm).Observe(seconds)
}

// RecordAssignmentRun records an Assign attempt and its input sizes.
func (p *PrometheusCollector) RecordAssignmentRun(algorithm string, subjects, groups int, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.runsCounter.WithLabelValues(algorithm, result).Inc()
	p.subjectsGauge.WithLabelValues(algorithm).Set(float64(subjects))
	p.groupsGauge.WithLabelValues(algorithm).Set(float64(groups))
}

// RecordProposalRounds records the rounds needed for convergence.
func (p *PrometheusCollector) RecordProposalRounds(rounds int) {
	p.ensureRegistered()
	p.roundsHistogram.Observe(float64(rounds))
}

// RecordTransfers records subject movement during a propose-and-reject run.
func (p *PrometheusCollector) RecordTransfers(transfers, evictions int) {
	p.ensureRegistered()
	p.transfersCounter.Add(float64(transfers))
	p.evictionsCounter.Add(float64(evictions))
}

// RecordTotalDissatisfaction records the quality of the produced assignment.
func (p *PrometheusCollector) RecordTotalDissatisfaction(algorithm string, total int) {
	p.ensureRegistered()
	p.dissatisfactionGauge.WithLabelValues(algorithm).Set(float64(total))
}
