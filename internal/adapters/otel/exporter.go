package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

const (
	serviceName    = "cardiosim"
	serviceVersion = "1.0.0"
)

// Exporter exports risk-computation metrics to an OTEL Collector.
type Exporter struct {
	provider          *sdkmetric.MeterProvider
	meter             metric.Meter
	computationsTotal metric.Int64Counter
	riskHist          metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	computationsTotal, err := meter.Int64Counter(
		"cardiosim_risk_computations_total",
		metric.WithDescription("Total number of risk computations"),
		metric.WithUnit("{computation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating computations counter: %w", err)
	}

	riskHist, err := meter.Float64Histogram(
		"cardiosim_ten_year_risk_percent",
		metric.WithDescription("Distribution of computed 10-year risk percentages"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating risk histogram: %w", err)
	}

	return &Exporter{
		provider:          provider,
		meter:             meter,
		computationsTotal: computationsTotal,
		riskHist:          riskHist,
	}, nil
}

// RecordComputation records one completed risk computation, labeled by the
// coefficient group and clinical band.
func (e *Exporter) RecordComputation(ctx context.Context, result domain.Result) {
	attrs := metric.WithAttributes(
		attribute.String("group", string(result.Group)),
		attribute.String("band", string(domain.BandFor(result.TenYearRiskPercent))),
	)
	e.computationsTotal.Add(ctx, 1, attrs)
	e.riskHist.Record(ctx, result.TenYearRiskPercent, attrs)
}

// Close shuts down the meter provider, flushing pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
