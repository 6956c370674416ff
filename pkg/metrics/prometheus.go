package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// DefaultNamespace prefixes every metric name when no namespace is given
const DefaultNamespace = "roomies"

// PrometheusCollector implements Collector with Prometheus metrics.
// Metrics are registered on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	attempted    prometheus.Counter
	feasible     prometheus.Counter
	chunkSeconds prometheus.Histogram
	bestScore    prometheus.Gauge
	improvements prometheus.Counter
}

var _ Collector = (*PrometheusCollector)(nil)

// NewPrometheus creates a collector registering on reg (the default
// registerer if nil) under namespace (DefaultNamespace if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.attempted = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "constructions_total",
			Help:      "Total candidate constructions attempted.",
		})
		p.feasible = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "feasible_constructions_total",
			Help:      "Total candidate constructions that placed everyone.",
		})
		p.chunkSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "chunk_duration_seconds",
			Help:      "Wall time spent per search chunk in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		})
		p.bestScore = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "best_score",
			Help:      "Composite score of the current best solution.",
		})
		p.improvements = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "improvements_total",
			Help:      "Total times a chunk replaced the best solution.",
		})

		p.reg.MustRegister(p.attempted, p.feasible, p.chunkSeconds, p.bestScore, p.improvements)
	})
}

func (p *PrometheusCollector) ObserveChunk(attempted, feasible int, elapsed time.Duration) {
	p.ensureRegistered()
	p.attempted.Add(float64(attempted))
	p.feasible.Add(float64(feasible))
	p.chunkSeconds.Observe(elapsed.Seconds())
}

func (p *PrometheusCollector) SetBestScore(score int) {
	p.ensureRegistered()
	p.bestScore.Set(float64(score))
}

func (p *PrometheusCollector) IncImprovements() {
	p.ensureRegistered()
	p.improvements.Inc()
}

// Handler serves the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, "OK\n")
	})
	return mux
}

// Serve exposes the default registry's metrics on addr until ctx is done
func Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           Handler(prometheus.DefaultGatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down metrics server: %w", err)
	}
	return nil
}
