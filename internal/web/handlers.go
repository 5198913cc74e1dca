package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/cardiosim/internal/domain"
	"github.com/emiliopalmerini/cardiosim/internal/scenario"
	"github.com/emiliopalmerini/cardiosim/internal/timeline"
)

type riskResponse struct {
	Result domain.Result `json:"result"`
	Band   domain.Band   `json:"band"`
	Label  string        `json:"band_label"`
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if !decodeBody(w, r, &profile) {
		return
	}

	result, err := domain.ComputeRisk(profile)
	if err != nil {
		writeError(w, err)
		return
	}
	s.metrics.RecordComputation(r.Context(), result)

	band := domain.BandFor(result.TenYearRiskPercent)
	writeJSON(w, http.StatusOK, riskResponse{Result: result, Band: band, Label: band.Label()})
}

type scenarioRequest struct {
	Baseline domain.Profile `json:"baseline"`
	// Either field-level overrides or a high-level intervention plan; when
	// both are present the plan is applied on top of the overrides.
	Overrides    *scenario.Overrides    `json:"overrides,omitempty"`
	Intervention *scenario.Intervention `json:"intervention,omitempty"`
}

type scenarioResponse struct {
	Scenario   scenario.Scenario   `json:"scenario"`
	Comparison scenario.Comparison `json:"comparison"`
	Drivers    []scenario.Driver   `json:"drivers"`
}

func buildFromRequest(req scenarioRequest) (scenario.Scenario, error) {
	var o scenario.Overrides
	if req.Overrides != nil {
		o = *req.Overrides
	}
	s, err := scenario.Build(req.Baseline, o)
	if err != nil {
		return scenario.Scenario{}, err
	}
	if req.Intervention == nil {
		return s, nil
	}
	applied, err := req.Intervention.Apply(s.Intervention)
	if err != nil {
		return scenario.Scenario{}, err
	}
	// Deltas always compare to the original baseline, not the intermediate
	// overridden profile.
	applied.Baseline = s.Baseline
	applied.BaselineResult = s.BaselineResult
	return applied, nil
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if !decodeBody(w, r, &req) {
		return
	}

	scn, err := buildFromRequest(req)
	if err != nil {
		writeError(w, err)
		return
	}
	s.metrics.RecordComputation(r.Context(), scn.InterventionResult)

	drivers, err := scenario.Drivers(scn)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, scenarioResponse{
		Scenario:   scn,
		Comparison: scenario.Compare(scn),
		Drivers:    drivers,
	})
}

type timelineRequest struct {
	Baseline     domain.Profile  `json:"baseline"`
	Intervention *domain.Profile `json:"intervention,omitempty"`
	HorizonYears int             `json:"horizon_years"`
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	var req timelineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.HorizonYears < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "horizon_years must be >= 0"})
		return
	}

	if req.Intervention == nil {
		tl, err := timeline.Project(req.Baseline, req.HorizonYears)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, timeline.Pair{Baseline: tl})
		return
	}

	pair, err := timeline.ProjectPair(req.Baseline, *req.Intervention, req.HorizonYears)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

type interpolateRequest struct {
	Baseline     domain.Profile `json:"baseline"`
	Intervention domain.Profile `json:"intervention"`
	Months       int            `json:"months"`
}

func (s *Server) handleInterpolate(w http.ResponseWriter, r *http.Request) {
	var req interpolateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Months < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "months must be >= 0"})
		return
	}

	entries, err := timeline.Interpolate(req.Baseline, req.Intervention, req.Months)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Presets())
}

type saveScenarioRequest struct {
	Name string `json:"name"`
	scenarioRequest
}

func (s *Server) requireRepo(w http.ResponseWriter) bool {
	if s.scenarioRepo == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "scenario persistence is not configured"})
		return false
	}
	return true
}

func (s *Server) handleSaveScenario(w http.ResponseWriter, r *http.Request) {
	if !s.requireRepo(w) {
		return
	}
	var req saveScenarioRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	scn, err := buildFromRequest(req.scenarioRequest)
	if err != nil {
		writeError(w, err)
		return
	}

	saved := &scenario.Saved{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Scenario:  scn,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.scenarioRepo.Save(r.Context(), saved); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	if !s.requireRepo(w) {
		return
	}
	list, err := s.scenarioRepo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*scenario.Saved{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	if !s.requireRepo(w) {
		return
	}
	id := r.PathValue("id")
	existing, err := s.scenarioRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "scenario not found"})
		return
	}
	if err := s.scenarioRepo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearScenarios(w http.ResponseWriter, r *http.Request) {
	if !s.requireRepo(w) {
		return
	}
	if err := s.scenarioRepo.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
