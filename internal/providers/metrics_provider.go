package providers

import (
	"chatsplit/internal/structures"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

type MetricsProviderInterface interface {
	AddNodes(grouped, skipped int)
	SetDatesTotal(command string, count int)
	IncFilesWritten(compression string)
	AddBytesWritten(count int)
	ObserveRunDuration(command string, duration time.Duration)
	SetLastSuccess(command string, at time.Time)
	Flush() error
}

// MetricsProvider collects run metrics on a private registry and writes them
// in the node exporter textfile format once the command finishes.
type MetricsProvider struct {
	registry     *prometheus.Registry
	textfile     string
	nodesTotal   *prometheus.CounterVec
	datesTotal   *prometheus.GaugeVec
	filesWritten *prometheus.CounterVec
	bytesWritten prometheus.Counter
	runDuration  *prometheus.GaugeVec
	lastSuccess  *prometheus.GaugeVec
}

func (m *MetricsProvider) AddNodes(grouped, skipped int) {
	m.nodesTotal.WithLabelValues("grouped").Add(float64(grouped))
	m.nodesTotal.WithLabelValues("skipped").Add(float64(skipped))
}

func (m *MetricsProvider) SetDatesTotal(command string, count int) {
	m.datesTotal.WithLabelValues(command).Set(float64(count))
}

func (m *MetricsProvider) IncFilesWritten(compression string) {
	m.filesWritten.WithLabelValues(compression).Inc()
}

func (m *MetricsProvider) AddBytesWritten(count int) {
	m.bytesWritten.Add(float64(count))
}

func (m *MetricsProvider) ObserveRunDuration(command string, duration time.Duration) {
	m.runDuration.WithLabelValues(command).Set(duration.Seconds())
}

func (m *MetricsProvider) SetLastSuccess(command string, at time.Time) {
	m.lastSuccess.WithLabelValues(command).Set(float64(at.Unix()))
}

func (m *MetricsProvider) Flush() error {
	if err := prometheus.WriteToTextfile(m.textfile, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &MetricsProvider{
		registry: registry,
		textfile: conf.Metrics.Textfile,

		nodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chatsplit_nodes_total",
			Help: "Mapping nodes seen, by whether they were grouped or skipped",
		}, []string{"result"}),

		datesTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chatsplit_dates_total",
			Help: "Distinct calendar dates found in the last run",
		}, []string{"command"}),

		filesWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chatsplit_files_written_total",
			Help: "Per-date output files written",
		}, []string{"compression"}),

		bytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "chatsplit_bytes_written_total",
			Help: "Bytes written to per-date output files",
		}),

		runDuration: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chatsplit_run_duration_seconds",
			Help: "Wall time of the last run",
		}, []string{"command"}),

		lastSuccess: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chatsplit_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		}, []string{"command"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) AddNodes(_, _ int)                            {}
func (n *noopMetrics) SetDatesTotal(_ string, _ int)                {}
func (n *noopMetrics) IncFilesWritten(_ string)                     {}
func (n *noopMetrics) AddBytesWritten(_ int)                        {}
func (n *noopMetrics) ObserveRunDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) SetLastSuccess(_ string, _ time.Time)         {}
func (n *noopMetrics) Flush() error                                 { return nil }
