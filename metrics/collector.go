package metrics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nttcslab/cs-reliability/core"
	"github.com/nttcslab/cs-reliability/engine"
)

// Config configures a Collector's metric names and tracer.
type Config struct {
	// Namespace/Subsystem prefix every Prometheus metric name, following
	// the client_golang convention "namespace_subsystem_name".
	Namespace string
	Subsystem string

	// Tracer produces the span wrapping each Compute call. A nil Tracer
	// resolves to trace.NewNoopTracerProvider's tracer, so Collector is
	// safe to use without wiring a real TracerProvider in tests.
	Tracer trace.Tracer
}

// DefaultConfig returns the default namespace/subsystem and a no-op
// tracer.
func DefaultConfig() Config {
	return Config{
		Namespace: "cs_reliability",
		Subsystem: "engine",
		Tracer:    trace.NewNoopTracerProvider().Tracer("cs-reliability"),
	}
}

// Collector wraps engine.Compute with Prometheus instrumentation and an
// OpenTelemetry span. It is safe for concurrent use: every instrument is
// a prometheus.Collector guarded by its own internal locking.
type Collector struct {
	tracer trace.Tracer

	computeTotal    prometheus.Counter
	errorsTotal     prometheus.Counter
	computeDuration prometheus.Histogram
	stateCount      prometheus.Gauge
}

// NewCollector builds a Collector and registers its instruments against
// reg. A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, cfg Config) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if cfg.Tracer == nil {
		cfg.Tracer = trace.NewNoopTracerProvider().Tracer("cs-reliability")
	}

	c := &Collector{
		tracer: cfg.Tracer,
		computeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace, Subsystem: cfg.Subsystem, Name: "compute_total",
			Help: "Total number of engine.Compute invocations.",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace, Subsystem: cfg.Subsystem, Name: "compute_errors_total",
			Help: "Total number of engine.Compute invocations that returned an error.",
		}),
		computeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace, Subsystem: cfg.Subsystem, Name: "compute_duration_seconds",
			Help:    "Wall-clock time spent in engine.Compute.",
			Buckets: prometheus.DefBuckets,
		}),
		stateCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace, Subsystem: cfg.Subsystem, Name: "last_state_count",
			Help: "Number of DAG states (#(states) in the original C++ output) from the most recent successful Compute call.",
		}),
	}

	for _, coll := range []prometheus.Collector{c.computeTotal, c.errorsTotal, c.computeDuration, c.stateCount} {
		if err := reg.Register(coll); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Compute runs engine.Compute inside an OpenTelemetry span tagged with a
// freshly generated run id, records wall-clock duration and state count
// on the Prometheus instruments, and returns engine.Compute's result
// unchanged. The returned runID is also the span's run_id attribute, so
// a caller can correlate its own logs with the span.
func (c *Collector) Compute(ctx context.Context, n int, edges []core.Edge, pi []float64, sources []int, opts ...engine.Option) (*engine.Result, string, error) {
	runID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "engine.Compute", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Int("vertex_count", n),
		attribute.Int("edge_count", len(edges)),
		attribute.Int("source_count", len(sources)),
	))
	defer span.End()

	c.computeTotal.Inc()
	start := time.Now()
	res, err := engine.Compute(n, edges, pi, sources, opts...)
	c.computeDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		c.errorsTotal.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, runID, err
	}

	c.stateCount.Set(float64(res.StateCount))
	span.SetAttributes(attribute.Int("state_count", res.StateCount))
	return res, runID, nil
}
