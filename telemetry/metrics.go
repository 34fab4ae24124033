// Package telemetry exports Prometheus collectors for pargraph runs.
//
// # Description
//
// Metrics cover whole runs (count by algorithm and status, merge rounds,
// wall time) and individual merges (frontier or conflict-list size per
// round). Collectors are registered on a caller-supplied registry so that
// independent instances never collide.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/pargraph/frontier"
)

const (
	metricsNamespace = "pargraph"
	runSubsystem     = "run"
)

// Run outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the collectors of one registry.
type Metrics struct {
	// RunsTotal counts runs. Labels: algorithm, status.
	RunsTotal *prometheus.CounterVec

	// RoundsPerRun records merges per successful run. Labels: algorithm.
	RoundsPerRun *prometheus.HistogramVec

	// RunDurationSeconds records wall time per run. Labels: algorithm.
	RunDurationSeconds *prometheus.HistogramVec

	// FrontierSize records the published size of every merge. Labels: algorithm.
	FrontierSize *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: runSubsystem,
				Name:      "total",
				Help:      "Total number of algorithm runs by algorithm and status",
			},
			[]string{"algorithm", "status"},
		),
		RoundsPerRun: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: runSubsystem,
				Name:      "rounds",
				Help:      "Frontier merges per run",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"algorithm"},
		),
		RunDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: runSubsystem,
				Name:      "duration_seconds",
				Help:      "Wall time of a run in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),
		FrontierSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "frontier_size",
				Help:      "Size of the merged frontier per round",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"algorithm"},
		),
	}
}

// Observer returns a frontier.Observer feeding FrontierSize for algorithm.
func (m *Metrics) Observer(algorithm string) frontier.Observer {
	return roundObserver{hist: m.FrontierSize.WithLabelValues(algorithm)}
}

type roundObserver struct {
	hist prometheus.Observer
}

func (o roundObserver) ObserveRound(_, size int) {
	o.hist.Observe(float64(size))
}

// ObserveRun records one finished run. Rounds are recorded only on success.
func (m *Metrics) ObserveRun(algorithm string, rounds int, elapsed time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.RunsTotal.WithLabelValues(algorithm, status).Inc()
	m.RunDurationSeconds.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if err == nil {
		m.RoundsPerRun.WithLabelValues(algorithm).Observe(float64(rounds))
	}
}

// WriteText gathers g and writes every metric family in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
