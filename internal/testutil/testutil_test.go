package testutil

import (
	"context"
	"testing"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

func TestLogger_NotNil(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewStore_Usable(t *testing.T) {
	db := NewStore(t)
	if err := db.DB().PingContext(context.Background()); err != nil {
		t.Fatalf("store not usable: %v", err)
	}
}

func TestNewDevice_Defaults(t *testing.T) {
	d := NewDevice()
	if d.ID == "" {
		t.Error("expected generated ID")
	}
	if d.Status != models.StatusPublished {
		t.Errorf("status = %s, want published", d.Status)
	}
	if len(d.Variants) != 1 || !d.Variants[0].IsDefault {
		t.Error("expected one default variant")
	}
	if d.Variants[0].DeviceID != d.ID {
		t.Error("variant should reference the device")
	}
}

func TestNewDevice_Options(t *testing.T) {
	d := NewDevice(
		WithName("Pocket Rocket"),
		WithFormFactor(models.FormFactorClamshell),
		WithPrice(129),
		WithReleaseYear(2022),
	)
	if d.Name != "Pocket Rocket" || d.Slug != "pocket-rocket" {
		t.Errorf("name/slug = %q/%q", d.Name, d.Slug)
	}
	if d.FormFactor != models.FormFactorClamshell {
		t.Errorf("form factor = %s", d.FormFactor)
	}
	if d.ReleaseYear != 2022 || d.Variants[0].ReleaseYear != 2022 {
		t.Error("release year should apply to device and variants")
	}
	if d.Variants[0].PriceLaunchUSD == nil || *d.Variants[0].PriceLaunchUSD != 129 {
		t.Error("price should apply to variants")
	}
}

func TestNewDevice_WithRatings(t *testing.T) {
	d := NewDevice(WithRatings(map[models.TargetSystem]models.Rating{
		models.SystemPS2: models.RatingGreat,
	}))
	p := d.Variants[0].Profile
	if p == nil {
		t.Fatal("expected emulation profile")
	}
	if p.Rating(models.SystemPS2) != models.RatingGreat {
		t.Errorf("rating = %s, want Great", p.Rating(models.SystemPS2))
	}
	if p.Rating(models.SystemPS3) != models.RatingNA {
		t.Errorf("unrated system = %s, want N/A", p.Rating(models.SystemPS3))
	}
}
