package ports

import (
	"context"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
)

// MetricsExporter exports risk-computation metrics to an external
// observability system.
type MetricsExporter interface {
	// RecordComputation records one completed risk computation.
	RecordComputation(ctx context.Context, result domain.Result)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
