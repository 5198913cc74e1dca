package turso

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
	"github.com/emiliopalmerini/cardiosim/internal/scenario"
)

// ScenarioRepository stores saved scenarios in libsql. Profiles are stored as
// JSON; risk results are recomputed on load, since the engine is
// deterministic, with the headline percentages denormalized into columns for
// SQL-side inspection.
type ScenarioRepository struct {
	db *sql.DB
}

func NewScenarioRepository(db *sql.DB) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

func (r *ScenarioRepository) Save(ctx context.Context, s *scenario.Saved) error {
	baselineJSON, err := json.Marshal(s.Scenario.Baseline)
	if err != nil {
		return fmt.Errorf("failed to marshal baseline profile: %w", err)
	}
	interventionJSON, err := json.Marshal(s.Scenario.Intervention)
	if err != nil {
		return fmt.Errorf("failed to marshal intervention profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO saved_scenarios (
			id, name, baseline_json, intervention_json,
			baseline_risk_percent, intervention_risk_percent, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		s.ID,
		s.Name,
		string(baselineJSON),
		string(interventionJSON),
		s.Scenario.BaselineResult.TenYearRiskPercent,
		s.Scenario.InterventionResult.TenYearRiskPercent,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}
	return nil
}

func (r *ScenarioRepository) GetByID(ctx context.Context, id string) (*scenario.Saved, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, baseline_json, intervention_json, created_at
		FROM saved_scenarios WHERE id = ?
	`, id)

	saved, err := scanSaved(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}
	return saved, nil
}

func (r *ScenarioRepository) List(ctx context.Context) ([]*scenario.Saved, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, baseline_json, intervention_json, created_at
		FROM saved_scenarios ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var result []*scenario.Saved
	for rows.Next() {
		saved, err := scanSaved(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}
		result = append(result, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scenarios: %w", err)
	}
	return result, nil
}

func (r *ScenarioRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM saved_scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	return nil
}

func (r *ScenarioRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM saved_scenarios`)
	if err != nil {
		return fmt.Errorf("failed to clear scenarios: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSaved(row scanner) (*scenario.Saved, error) {
	var (
		id, name, baselineJSON, interventionJSON, createdAt string
	)
	if err := row.Scan(&id, &name, &baselineJSON, &interventionJSON, &createdAt); err != nil {
		return nil, err
	}

	var baseline, intervention domain.Profile
	if err := json.Unmarshal([]byte(baselineJSON), &baseline); err != nil {
		return nil, fmt.Errorf("failed to unmarshal baseline profile: %w", err)
	}
	if err := json.Unmarshal([]byte(interventionJSON), &intervention); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intervention profile: %w", err)
	}

	baseResult, err := domain.ComputeRisk(baseline)
	if err != nil {
		return nil, fmt.Errorf("stored baseline profile no longer scores: %w", err)
	}
	intResult, err := domain.ComputeRisk(intervention)
	if err != nil {
		return nil, fmt.Errorf("stored intervention profile no longer scores: %w", err)
	}

	ts, _ := time.Parse(time.RFC3339, createdAt)

	return &scenario.Saved{
		ID:   id,
		Name: name,
		Scenario: scenario.Scenario{
			Baseline:           baseline,
			Intervention:       intervention,
			BaselineResult:     baseResult,
			InterventionResult: intResult,
		},
		CreatedAt: ts,
	}, nil
}
