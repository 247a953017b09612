package arena

import (
	"encoding/json"
	"net/http"

	"github.com/iDarcky/retrocircuit/internal/catalog"
	"github.com/iDarcky/retrocircuit/internal/plugin"
	"github.com/iDarcky/retrocircuit/pkg/models"
	"go.uber.org/zap"
)

// compareResponse bundles the verdict with the spec readout and the full
// per-metric table for the two default variants.
type compareResponse struct {
	Result    *models.ComparisonResult `json:"result"`
	Readout   []ReadoutRow             `json:"readout,omitempty"`
	SpecSheet []models.ComparisonPoint `json:"spec_sheet,omitempty"`
}

// metricInfo is the serializable face of a Metric.
type metricInfo struct {
	Key           string `json:"key"`
	Label         string `json:"label"`
	Unit          string `json:"unit,omitempty"`
	LowerIsBetter bool   `json:"lower_is_better,omitempty"`
}

// Routes returns the HTTP routes this module exposes.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/compare", Handler: m.handleCompare},
		{Method: "GET", Path: "/metrics", Handler: m.handleMetrics},
	}
}

// handleCompare runs a head-to-head between the two devices named by the
// a and b slug query parameters.
func (m *Module) handleCompare(w http.ResponseWriter, r *http.Request) {
	slugA := r.URL.Query().Get("a")
	slugB := r.URL.Query().Get("b")
	if slugA == "" || slugB == "" {
		arenaWriteError(w, http.StatusBadRequest, "both a and b slug parameters are required")
		return
	}

	devA := m.resolve(r, slugA)
	devB := m.resolve(r, slugB)

	result := Compare(devA, devB)
	if result == nil {
		arenaWriteError(w, http.StatusNotFound, "one or both devices could not be resolved")
		return
	}

	resp := compareResponse{Result: result}
	varA, varB := devA.DefaultVariant(), devB.DefaultVariant()
	if varA != nil && varB != nil {
		resp.Readout = Readout(varA, varB)
		resp.SpecSheet = CompareVariants(varA, varB)
	}
	arenaWriteJSON(w, http.StatusOK, resp)
}

// handleMetrics lists the side-by-side metric catalog.
func (m *Module) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	infos := make([]metricInfo, 0, len(Metrics))
	for _, mt := range Metrics {
		infos = append(infos, metricInfo{
			Key:           mt.Key,
			Label:         mt.Label,
			Unit:          mt.Unit,
			LowerIsBetter: mt.LowerIsBetter,
		})
	}
	arenaWriteJSON(w, http.StatusOK, infos)
}

// resolve loads and normalizes one side of the comparison. Lookup
// failures come back nil so Compare degrades to its no-data result.
func (m *Module) resolve(r *http.Request, slug string) *models.Device {
	dev, err := m.catalog.GetBySlug(r.Context(), slug)
	if err != nil {
		m.logger.Debug("device lookup failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	if dev == nil {
		return nil
	}
	normalized := catalog.NormalizeDevice(*dev)
	return &normalized
}

func arenaWriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func arenaWriteError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://retrocircuit.io/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
