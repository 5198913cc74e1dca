package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/cardiosim/internal/adapters/otel"
	"github.com/emiliopalmerini/cardiosim/internal/adapters/turso"
	"github.com/emiliopalmerini/cardiosim/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestScenarioRepositoryConformance(t *testing.T) {
	var _ ports.ScenarioRepository = (*turso.ScenarioRepository)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
	var _ ports.MetricsExporter = (*otel.NoopExporter)(nil)
}
