package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/iDarcky/retrocircuit/internal/plugin"
	"github.com/iDarcky/retrocircuit/internal/services"
	"github.com/iDarcky/retrocircuit/pkg/models"
)

// deviceDetail is the response for GET /devices/{slug}: the normalized
// record plus derived emulation capability for its default variant.
type deviceDetail struct {
	Device       models.Device `json:"device"`
	Tiers        Aggregation   `json:"tiers"`
	MaxTierLabel string        `json:"max_tier_label"`
	Icon         string        `json:"icon"`
}

// Routes returns the HTTP routes this module exposes.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/devices", Handler: m.handleListDevices},
		{Method: "GET", Path: "/devices/{slug}", Handler: m.handleGetDevice},
		{Method: "GET", Path: "/devices/export", Handler: m.handleExportCSV},
		{Method: "POST", Path: "/devices/import", Handler: m.handleImportCSV},
	}
}

// handleListDevices returns a filtered page of catalog devices. Drafts are
// hidden unless the caller asks for a status explicitly.
func (m *Module) handleListDevices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := services.DeviceFilter{
		Status:     q.Get("status"),
		FormFactor: q.Get("form_factor"),
		Category:   q.Get("category"),
		Search:     q.Get("q"),
	}
	if filter.Status == "" {
		filter.Status = string(models.StatusPublished)
	}
	if y := q.Get("year_from"); y != "" {
		filter.YearFrom, _ = strconv.Atoi(y)
	}
	if y := q.Get("year_to"); y != "" {
		filter.YearTo, _ = strconv.Atoi(y)
	}

	opts := services.ListOptions{
		SortBy:    q.Get("sort"),
		SortOrder: q.Get("order"),
	}
	if l := q.Get("limit"); l != "" {
		opts.Limit, _ = strconv.Atoi(l)
	}
	if o := q.Get("offset"); o != "" {
		opts.Offset, _ = strconv.Atoi(o)
	}

	result, err := m.repo.List(r.Context(), filter, opts)
	if err != nil {
		m.logger.Error("failed to list devices", zap.Error(err))
		catalogWriteError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	for i := range result.Items {
		result.Items[i] = NormalizeDevice(result.Items[i])
	}
	catalogWriteJSON(w, http.StatusOK, result)
}

// handleGetDevice returns one device by slug with tier aggregation.
func (m *Module) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	device, err := m.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			catalogWriteError(w, http.StatusNotFound, "no device with slug "+slug)
			return
		}
		m.logger.Error("failed to load device", zap.String("slug", slug), zap.Error(err))
		catalogWriteError(w, http.StatusInternalServerError, "failed to load device")
		return
	}

	normalized := NormalizeDevice(*device)
	var profile *models.EmulationProfile
	if normalized.Specs != nil {
		profile = normalized.Specs.Profile
	}

	catalogWriteJSON(w, http.StatusOK, deviceDetail{
		Device:       normalized,
		Tiers:        Aggregate(profile),
		MaxTierLabel: MaxTierLabel(profile),
		Icon:         normalized.FormFactor.Icon(),
	})
}

func catalogWriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func catalogWriteError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://retrocircuit.io/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
