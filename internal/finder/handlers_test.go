package finder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iDarcky/retrocircuit/internal/testutil"
	"github.com/iDarcky/retrocircuit/pkg/models"
)

// staticCatalog serves a fixed device slice.
type staticCatalog struct {
	devices []models.Device
	err     error
}

func (c *staticCatalog) PublishedDevices(context.Context) ([]models.Device, error) {
	return c.devices, c.err
}

func newTestModule(t *testing.T, devices ...models.Device) *Module {
	t.Helper()
	m := New(&staticCatalog{devices: devices})
	m.logger = testutil.Logger()
	return m
}

func TestHandleMatches(t *testing.T) {
	m := newTestModule(t,
		testutil.NewDevice(testutil.WithName("Pocket One"), testutil.WithFormFactor(models.FormFactorVertical)),
		testutil.NewDevice(testutil.WithName("Flip Max"), testutil.WithFormFactor(models.FormFactorClamshell)),
	)

	body := `{"profile":"onthego","form_factor_pref":"vertical"}`
	req := httptest.NewRequest(http.MethodPost, "/matches", strings.NewReader(body))
	w := httptest.NewRecorder()

	m.handleMatches(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Matches []models.MatchResult `json:"matches"`
		Weights WeightVector         `json:"weights"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(resp.Matches))
	}
	if resp.Matches[0].Name != "Pocket One" {
		t.Errorf("top match = %s, want Pocket One", resp.Matches[0].Name)
	}
	if resp.Weights.Portability <= 1.0 {
		t.Errorf("onthego profile should boost portability, got %v", resp.Weights.Portability)
	}
}

func TestHandleMatches_BadBody(t *testing.T) {
	m := newTestModule(t)
	req := httptest.NewRequest(http.MethodPost, "/matches", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	m.handleMatches(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleWeights(t *testing.T) {
	m := newTestModule(t)
	req := httptest.NewRequest(http.MethodGet, "/weights/performance", http.NoBody)
	req.SetPathValue("profile", "performance")
	w := httptest.NewRecorder()

	m.handleWeights(w, req)

	var vec WeightVector
	if err := json.NewDecoder(w.Body).Decode(&vec); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if vec.Power != 1.25 {
		t.Errorf("Power = %v, want 1.25", vec.Power)
	}
}
