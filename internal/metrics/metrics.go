// Package metrics records benchmark iterations on a private prometheus
// registry and writes them in the text exposition format.
package metrics

import (
	"github.com/AnatoleLucet/awfy"
	"github.com/AnatoleLucet/awfy/internal/richards"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

type Recorder struct {
	registry *prometheus.Registry

	duration     *prometheus.HistogramVec
	iterations   *prometheus.CounterVec
	queuePackets prometheus.Gauge
	holdCount    prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "awfy_iteration_duration_seconds",
			Help:    "Runtime of one timed benchmark iteration",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"benchmark"}),
		iterations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "awfy_iterations_total",
			Help: "Timed benchmark iterations by result",
		}, []string{"benchmark", "result"}),
		queuePackets: factory.NewGauge(prometheus.GaugeOpts{
			Name: "awfy_richards_queue_packets",
			Help: "Packets queued by the last Richards run",
		}),
		holdCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "awfy_richards_hold_count",
			Help: "Holds performed by the last Richards run",
		}),
	}
}

// Observe records it. It has the shape of awfy.RunOptions.OnIteration.
func (r *Recorder) Observe(it awfy.Iteration) {
	result := ResultOK
	if it.Err != nil {
		result = ResultError
	}

	r.iterations.WithLabelValues(it.Benchmark, result).Inc()
	r.duration.WithLabelValues(it.Benchmark).Observe(it.Runtime.Seconds())
}

func (r *Recorder) ObserveRichards(res richards.Result) {
	r.queuePackets.Set(float64(res.QueuePacketCount))
	r.holdCount.Set(float64(res.HoldCount))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteFile writes every collected metric to path, replacing it atomically.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
