// Package metrics exposes Prometheus collectors for rendering and live
// sessions.
//
// A nil *Metrics is valid and records nothing, so components can take one
// unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/vdiff/pkg/vdom"
)

// Render modes recorded by ObserveRender.
const (
	ModeMount   = "mount"
	ModePatch   = "patch"
	ModeNoop    = "noop"
	ModeUnmount = "unmount"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "vdiff").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for diff and apply durations.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "vdiff",
		// Diffs of typical trees finish well under a millisecond.
		Buckets:  prometheus.ExponentialBuckets(0.00001, 4, 10),
		Registry: prometheus.DefaultRegisterer,
	}
}

// Metrics holds the collectors.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	patchesApplied *prometheus.CounterVec
	diffDuration   prometheus.Histogram
	applyDuration  prometheus.Histogram
	activeSessions prometheus.Gauge
	eventsTotal    *prometheus.CounterVec
	framesSent     *prometheus.CounterVec
	wsErrors       *prometheus.CounterVec
}

// New registers the collectors with the configured registry. Registering
// twice with the same registry panics, as promauto does.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of renders by mode",
			ConstLabels: config.ConstLabels,
		}, []string{"mode"}),

		patchesApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_applied_total",
			Help:        "Total number of leaf patches applied by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		diffDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "diff_duration_seconds",
			Help:        "Tree diff duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		applyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "apply_duration_seconds",
			Help:        "Patch application duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of open live sessions",
			ConstLabels: config.ConstLabels,
		}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of client events by name and status",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "status"}),

		framesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "frames_sent_total",
			Help:        "Total number of protocol frames sent by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// ObserveRender counts one render in the given mode.
func (m *Metrics) ObserveRender(mode string) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(mode).Inc()
}

// ObservePatches counts the leaf patches of script by type.
func (m *Metrics) ObservePatches(script vdom.Script) {
	if m == nil {
		return
	}
	script.Walk(func(_ []int, p vdom.Patch) {
		m.patchesApplied.WithLabelValues(p.Type.String()).Inc()
	})
}

// ObserveDiff records the duration of one diff.
func (m *Metrics) ObserveDiff(d time.Duration) {
	if m == nil {
		return
	}
	m.diffDuration.Observe(d.Seconds())
}

// ObserveApply records the duration of one patch application.
func (m *Metrics) ObserveApply(d time.Duration) {
	if m == nil {
		return
	}
	m.applyDuration.Observe(d.Seconds())
}

// SessionOpened records a new live session.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

// SessionClosed records the end of a live session.
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

// ObserveEvent counts a client event. status is "success" or "error".
func (m *Metrics) ObserveEvent(event, status string) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(event, status).Inc()
}

// ObserveFrame counts one frame sent to a client.
func (m *Metrics) ObserveFrame(frameType string) {
	if m == nil {
		return
	}
	m.framesSent.WithLabelValues(frameType).Inc()
}

// WebSocketError counts a WebSocket error.
func (m *Metrics) WebSocketError(errorType string) {
	if m == nil {
		return
	}
	m.wsErrors.WithLabelValues(errorType).Inc()
}
