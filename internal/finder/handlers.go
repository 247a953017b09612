package finder

import (
	"encoding/json"
	"net/http"

	"github.com/iDarcky/retrocircuit/internal/catalog"
	"github.com/iDarcky/retrocircuit/internal/plugin"
	"github.com/iDarcky/retrocircuit/pkg/models"
	"go.uber.org/zap"
)

// matchRequest is the JSON body for POST /matches.
type matchRequest struct {
	Profile    string `json:"profile"`
	FormFactor string `json:"form_factor_pref"`
	TargetTier string `json:"target_tier"`
	BudgetBand string `json:"budget_band"`
}

// matchResponse wraps the ranked matches with the weight vector computed
// for the user's profile.
type matchResponse struct {
	Matches []models.MatchResult `json:"matches"`
	Weights WeightVector         `json:"weights"`
}

// Routes returns the HTTP routes this module exposes.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "POST", Path: "/matches", Handler: m.handleMatches},
		{Method: "GET", Path: "/weights/{profile}", Handler: m.handleWeights},
	}
}

// handleMatches runs a recommendation request against the published catalog.
func (m *Module) handleMatches(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		finderWriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	devices, err := m.catalog.PublishedDevices(r.Context())
	if err != nil {
		m.logger.Warn("failed to load catalog", zap.Error(err))
		finderWriteError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	prefs := PreferenceAnswer{
		Profile:    req.Profile,
		FormFactor: req.FormFactor,
		TargetTier: req.TargetTier,
		BudgetBand: req.BudgetBand,
	}

	matches := Rank(catalog.NormalizeAll(devices), prefs)

	finderWriteJSON(w, http.StatusOK, matchResponse{
		Matches: matches,
		Weights: WeightsFor(req.Profile),
	})
}

// handleWeights exposes the profile weight vector on its own, mostly for
// the frontend to explain why results lean a certain way.
func (m *Module) handleWeights(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")
	finderWriteJSON(w, http.StatusOK, WeightsFor(profile))
}

func finderWriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func finderWriteError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://retrocircuit.io/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
