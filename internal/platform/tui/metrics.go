package tui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/vanara-leap/internal/core"
)

// Metrics holds the Prometheus collectors for play sessions.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	sessions         prometheus.Counter
	activeSessions   prometheus.Gauge
	runs             *prometheus.CounterVec
	levelsCompleted  prometheus.Counter
	highScores       prometheus.Counter
	narration        *prometheus.CounterVec
	narrationLatency prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leap",
			Name:      "sessions_total",
			Help:      "Play sessions started.",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "leap",
			Name:      "sessions_active",
			Help:      "Play sessions currently connected.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leap",
			Name:      "runs_finished_total",
			Help:      "Finished campaign runs by outcome.",
		}, []string{"outcome"}),
		levelsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leap",
			Name:      "levels_completed_total",
			Help:      "Levels cleared across all runs.",
		}),
		highScores: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leap",
			Name:      "high_scores_total",
			Help:      "Runs that set a new persisted high score.",
		}),
		narration: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leap",
			Name:      "narration_requests_total",
			Help:      "Narration lines requested, by kind.",
		}, []string{"kind"}),
		narrationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "leap",
			Name:      "narration_seconds",
			Help:      "Time to resolve a narration line, fallback included.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8},
		}),
	}
	m.registry.MustRegister(
		m.sessions, m.activeSessions, m.runs, m.levelsCompleted,
		m.highScores, m.narration, m.narrationLatency,
	)
	return m
}

// Registry exposes the registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts the metrics endpoint on addr in the background.
// The returned server is shut down by the caller.
func (m *Metrics) Serve(addr string, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("metrics endpoint listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	return srv
}

// ShutdownMetrics stops a server started by Serve.
func ShutdownMetrics(srv *http.Server) error {
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (m *Metrics) sessionStarted() {
	if m == nil {
		return
	}
	m.sessions.Inc()
	m.activeSessions.Inc()
}

func (m *Metrics) sessionEnded() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *Metrics) runFinished(run core.RunSummary, newHigh bool) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(run.Outcome).Inc()
	m.levelsCompleted.Add(float64(run.LevelsCleared))
	if newHigh {
		m.highScores.Inc()
	}
}

func (m *Metrics) narrationResolved(taunt bool, took time.Duration) {
	if m == nil {
		return
	}
	kind := "encouragement"
	if taunt {
		kind = "taunt"
	}
	m.narration.WithLabelValues(kind).Inc()
	m.narrationLatency.Observe(took.Seconds())
}
