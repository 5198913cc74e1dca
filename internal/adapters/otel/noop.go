package otel

import (
	"context"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

// NoopExporter is a metrics exporter that does nothing.
type NoopExporter struct{}

// NewNoopExporter creates a new no-op exporter for graceful degradation.
func NewNoopExporter() *NoopExporter {
	return &NoopExporter{}
}

func (e *NoopExporter) RecordComputation(ctx context.Context, result domain.Result) {}

func (e *NoopExporter) Close(ctx context.Context) error { return nil }
