package catalog

import (
	"context"
	"testing"

	"github.com/spf13/viper"

	"github.com/iDarcky/retrocircuit/internal/services"
	"github.com/iDarcky/retrocircuit/internal/testutil"
)

func newStartedModule(t *testing.T) (*Module, *services.SQLiteDeviceRepository) {
	t.Helper()
	db := testutil.NewStore(t)
	repo := services.NewSQLiteDeviceRepository(db.DB())
	m := New(db, repo)
	if err := m.Init(viper.New(), testutil.Logger()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { _ = m.Stop() })
	return m, repo
}

func TestModule_StartSeedsEmptyDatabase(t *testing.T) {
	m, repo := newStartedModule(t)

	result, err := repo.List(context.Background(), services.DeviceFilter{}, services.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total == 0 {
		t.Fatal("expected seed devices after first start")
	}

	// A second start must not duplicate the seed.
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	again, err := repo.List(context.Background(), services.DeviceFilter{}, services.ListOptions{})
	if err != nil {
		t.Fatalf("List after restart: %v", err)
	}
	if again.Total != result.Total {
		t.Errorf("device count changed across restarts: %d -> %d", result.Total, again.Total)
	}
}

func TestModule_SeedIncludesProfiles(t *testing.T) {
	_, repo := newStartedModule(t)

	devices, err := repo.PublishedDevices(context.Background())
	if err != nil {
		t.Fatalf("PublishedDevices: %v", err)
	}

	withProfile := 0
	for _, d := range devices {
		for _, v := range d.Variants {
			if v.Profile != nil && len(v.Profile.Ratings) > 0 {
				withProfile++
			}
		}
	}
	if withProfile == 0 {
		t.Error("seed catalog should carry emulation profiles")
	}
}
