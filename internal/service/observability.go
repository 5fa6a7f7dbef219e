package service

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *zap.Logger
}

// NewLogUseCaseObserver writes service use-case events to logger.
func NewLogUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := make([]zap.Field, 0, 4+len(event.Fields))
	fields = append(fields,
		zap.String("use_case", event.Name),
		zap.Int64("duration_ms", event.Duration.Milliseconds()),
		zap.Bool("success", event.Success),
	)
	for k, v := range event.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	if event.Err != nil {
		fields = append(fields, zap.Error(event.Err))
		o.logger.Error("service_use_case", fields...)
		return
	}
	o.logger.Info("service_use_case", fields...)
}

type metricsUseCaseObserver struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsUseCaseObserver registers use-case counters and latency
// histograms on reg.
func NewMetricsUseCaseObserver(reg prometheus.Registerer) (UseCaseObserver, error) {
	o := &metricsUseCaseObserver{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skilltrade",
			Name:      "use_case_total",
			Help:      "Service use cases executed, by outcome.",
		}, []string{"use_case", "success"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skilltrade",
			Name:      "use_case_duration_seconds",
			Help:      "Service use case latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"use_case"}),
	}
	if err := reg.Register(o.total); err != nil {
		return nil, err
	}
	if err := reg.Register(o.duration); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *metricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.total.WithLabelValues(event.Name, strconv.FormatBool(event.Success)).Inc()
	o.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

// MultiObserver fans events out to every observer in order.
type MultiObserver []UseCaseObserver

func (m MultiObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range m {
		if obs != nil {
			obs.ObserveUseCase(ctx, event)
		}
	}
}
