package catalog

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iDarcky/retrocircuit/internal/plugin"
	"github.com/iDarcky/retrocircuit/internal/services"
	pkgcatalog "github.com/iDarcky/retrocircuit/pkg/catalog"
)

// Module implements the catalog device module. It owns the catalog_*
// schema and seeds an empty database from the embedded device catalog.
type Module struct {
	store  plugin.Store
	repo   services.DeviceRepository
	seed   *pkgcatalog.Catalog
	logger *zap.Logger
	config *viper.Viper
}

// New creates a catalog module over the given store and repository.
func New(store plugin.Store, repo services.DeviceRepository) *Module {
	return &Module{store: store, repo: repo, seed: pkgcatalog.NewCatalog()}
}

func (m *Module) Name() string    { return "catalog" }
func (m *Module) Version() string { return "1.0.0" }

func (m *Module) Init(config *viper.Viper, logger *zap.Logger) error {
	m.config = config
	m.logger = logger
	m.logger.Info("catalog module initialized")
	return nil
}

// Start applies the catalog schema and seeds the device table when empty.
func (m *Module) Start(ctx context.Context) error {
	if err := m.store.Migrate(ctx, m.Name(), Migrations()); err != nil {
		return fmt.Errorf("catalog migrations: %w", err)
	}
	return m.seedIfEmpty(ctx)
}

func (m *Module) Stop() error { return nil }

func (m *Module) seedIfEmpty(ctx context.Context) error {
	var count int
	err := m.store.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM catalog_devices").Scan(&count)
	if err != nil {
		return fmt.Errorf("count catalog devices: %w", err)
	}
	if count > 0 {
		return nil
	}

	devices, err := m.seed.Devices()
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}
	for i := range devices {
		if err := m.repo.Create(ctx, &devices[i]); err != nil {
			return fmt.Errorf("seed device %q: %w", devices[i].Name, err)
		}
	}
	m.logger.Info("seeded device catalog", zap.Int("devices", len(devices)))
	return nil
}
