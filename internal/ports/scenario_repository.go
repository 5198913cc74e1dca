package ports

import (
	"context"

	"github.com/emiliopalmerini/cardiosim/internal/scenario"
)

// ScenarioRepository persists named scenarios for later review and export.
type ScenarioRepository interface {
	Save(ctx context.Context, s *scenario.Saved) error
	// GetByID returns nil with no error when the scenario does not exist.
	GetByID(ctx context.Context, id string) (*scenario.Saved, error)
	List(ctx context.Context) ([]*scenario.Saved, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
