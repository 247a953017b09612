package finder

import (
	"context"

	"github.com/iDarcky/retrocircuit/pkg/models"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Catalog supplies the normalized device records the finder scores.
// Implemented by the services layer; the engine itself never touches
// persistence.
type Catalog interface {
	PublishedDevices(ctx context.Context) ([]models.Device, error)
}

// Module implements the finder recommendation module.
type Module struct {
	catalog Catalog
	logger  *zap.Logger
	config  *viper.Viper
}

// New creates a finder module backed by the given catalog source.
func New(catalog Catalog) *Module {
	return &Module{catalog: catalog}
}

func (m *Module) Name() string    { return "finder" }
func (m *Module) Version() string { return "1.0.0" }

func (m *Module) Init(config *viper.Viper, logger *zap.Logger) error {
	m.config = config
	m.logger = logger
	m.logger.Info("finder module initialized")
	return nil
}

func (m *Module) Start(ctx context.Context) error { return nil }

func (m *Module) Stop() error { return nil }
