package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iDarcky/retrocircuit/internal/catalog"
	"github.com/iDarcky/retrocircuit/internal/services"
	"github.com/iDarcky/retrocircuit/internal/testutil"
	"github.com/iDarcky/retrocircuit/pkg/models"
)

func newRepo(t *testing.T) *services.SQLiteDeviceRepository {
	t.Helper()
	db := testutil.NewStore(t)
	if err := db.Migrate(context.Background(), "catalog", catalog.Migrations()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return services.NewSQLiteDeviceRepository(db.DB())
}

func TestDeviceRepository_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	d := testutil.NewDevice(
		testutil.WithName("Retro Station"),
		testutil.WithPrice(199),
		testutil.WithRatings(map[models.TargetSystem]models.Rating{
			models.SystemSNES: models.RatingPerfect,
			models.SystemPS2:  models.RatingStruggles,
		}),
	)
	if err := repo.Create(ctx, &d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Retro Station" || got.Slug != "retro-station" {
		t.Errorf("name/slug = %q/%q", got.Name, got.Slug)
	}
	if len(got.Variants) != 1 {
		t.Fatalf("len(variants) = %d, want 1", len(got.Variants))
	}
	v := got.Variants[0]
	if v.PriceLaunchUSD == nil || *v.PriceLaunchUSD != 199 {
		t.Error("variant price not round-tripped")
	}
	if v.Profile == nil {
		t.Fatal("emulation profile not loaded")
	}
	if v.Profile.Rating(models.SystemSNES) != models.RatingPerfect {
		t.Errorf("snes rating = %s, want Perfect", v.Profile.Rating(models.SystemSNES))
	}
}

func TestDeviceRepository_GetBySlug(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	d := testutil.NewDevice(testutil.WithName("Pocket Hero"))
	if err := repo.Create(ctx, &d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "pocket-hero")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != d.ID {
		t.Errorf("ID = %s, want %s", got.ID, d.ID)
	}

	if _, err := repo.GetBySlug(ctx, "nonexistent-slug"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeviceRepository_ListFilters(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	seed := []models.Device{
		testutil.NewDevice(testutil.WithName("Vertical One"),
			testutil.WithFormFactor(models.FormFactorVertical),
			testutil.WithReleaseYear(2021)),
		testutil.NewDevice(testutil.WithName("Clamshell Two"),
			testutil.WithFormFactor(models.FormFactorClamshell),
			testutil.WithReleaseYear(2023)),
		testutil.NewDevice(testutil.WithName("Hidden Draft"),
			testutil.WithStatus(models.StatusDraft),
			testutil.WithReleaseYear(2024)),
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter services.DeviceFilter
		want   int
	}{
		{"published only", services.DeviceFilter{Status: "published"}, 2},
		{"by form factor", services.DeviceFilter{FormFactor: "clamshell"}, 1},
		{"search by name", services.DeviceFilter{Search: "vertical"}, 1},
		{"year window", services.DeviceFilter{YearFrom: 2022, YearTo: 2023}, 1},
		{"no filter", services.DeviceFilter{}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.List(ctx, tt.filter, services.ListOptions{})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if result.Total != tt.want {
				t.Errorf("total = %d, want %d", result.Total, tt.want)
			}
			if len(result.Items) != tt.want {
				t.Errorf("len(items) = %d, want %d", len(result.Items), tt.want)
			}
		})
	}
}

func TestDeviceRepository_ListPagination(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	names := []string{"Alpha", "Beta", "Gamma"}
	for _, name := range names {
		d := testutil.NewDevice(testutil.WithName(name))
		if err := repo.Create(ctx, &d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	result, err := repo.List(ctx, services.DeviceFilter{}, services.ListOptions{
		Limit: 2, SortBy: "name", SortOrder: "asc",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
	if len(result.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(result.Items))
	}
	if result.Items[0].Name != "Alpha" || result.Items[1].Name != "Beta" {
		t.Errorf("page = %q, %q", result.Items[0].Name, result.Items[1].Name)
	}
}

func TestDeviceRepository_PublishedDevices(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	pub := testutil.NewDevice(testutil.WithName("Public"))
	draft := testutil.NewDevice(testutil.WithName("Secret"), testutil.WithStatus(models.StatusDraft))
	for _, d := range []*models.Device{&pub, &draft} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	devices, err := repo.PublishedDevices(ctx)
	if err != nil {
		t.Fatalf("PublishedDevices: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("len(devices) = %d, want 1", len(devices))
	}
	if devices[0].Name != "Public" {
		t.Errorf("device = %q, want Public", devices[0].Name)
	}
	if len(devices[0].Variants) != 1 {
		t.Error("published devices should come back with variants joined")
	}
}

func TestDeviceRepository_UpdateAndDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	d := testutil.NewDevice(testutil.WithName("Original"))
	if err := repo.Create(ctx, &d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	d.Name = "Renamed"
	d.Status = models.StatusDraft
	if err := repo.Update(ctx, &d); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.Name != "Renamed" || got.Status != models.StatusDraft {
		t.Errorf("after update: name %q status %s", got.Name, got.Status)
	}

	if err := repo.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, d.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, d.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}

	if err := repo.Update(ctx, &models.Device{ID: "missing"}); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("update of missing device err = %v, want ErrNotFound", err)
	}
}
