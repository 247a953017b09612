package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iDarcky/retrocircuit/internal/services"
	"github.com/iDarcky/retrocircuit/pkg/models"
)

func TestHandleListDevices_PublishedByDefault(t *testing.T) {
	m, _ := newStartedModule(t)

	req := httptest.NewRequest(http.MethodGet, "/devices", http.NoBody)
	w := httptest.NewRecorder()
	m.handleListDevices(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var result services.ListResult[models.Device]
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Items) == 0 {
		t.Fatal("expected published seed devices")
	}
	for _, d := range result.Items {
		if d.Status != models.StatusPublished {
			t.Errorf("device %q has status %s, drafts should be hidden", d.Name, d.Status)
		}
		if d.Specs == nil {
			t.Errorf("device %q not normalized in list response", d.Name)
		}
	}
}

func TestHandleListDevices_FormFactorFilter(t *testing.T) {
	m, _ := newStartedModule(t)

	req := httptest.NewRequest(http.MethodGet, "/devices?form_factor=clamshell", http.NoBody)
	w := httptest.NewRecorder()
	m.handleListDevices(w, req)

	var result services.ListResult[models.Device]
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, d := range result.Items {
		if d.FormFactor != models.FormFactorClamshell {
			t.Errorf("device %q has form factor %s", d.Name, d.FormFactor)
		}
	}
}

func TestHandleGetDevice(t *testing.T) {
	m, _ := newStartedModule(t)

	req := httptest.NewRequest(http.MethodGet, "/devices/retroid-pocket-5", http.NoBody)
	req.SetPathValue("slug", "retroid-pocket-5")
	w := httptest.NewRecorder()
	m.handleGetDevice(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var detail deviceDetail
	if err := json.NewDecoder(w.Body).Decode(&detail); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if detail.Device.Slug != "retroid-pocket-5" {
		t.Errorf("slug = %q", detail.Device.Slug)
	}
	if detail.Device.Specs == nil {
		t.Error("device should be normalized")
	}
	if len(detail.Tiers.Tiers) != len(SystemTiers) {
		t.Errorf("len(tiers) = %d, want %d", len(detail.Tiers.Tiers), len(SystemTiers))
	}
	if detail.MaxTierLabel == "—" {
		t.Error("rated device should report a capable tier")
	}
	if detail.Icon == "" {
		t.Error("expected a form factor icon")
	}
}

func TestHandleGetDevice_NotFound(t *testing.T) {
	m, _ := newStartedModule(t)

	req := httptest.NewRequest(http.MethodGet, "/devices/no-such-device", http.NoBody)
	req.SetPathValue("slug", "no-such-device")
	w := httptest.NewRecorder()
	m.handleGetDevice(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}
}
