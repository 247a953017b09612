package arena

import (
	"context"

	"github.com/iDarcky/retrocircuit/pkg/models"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Catalog resolves device records by slug. Implemented by the services
// layer; a nil device with a nil error means the slug is unknown.
type Catalog interface {
	GetBySlug(ctx context.Context, slug string) (*models.Device, error)
}

// Module implements the arena comparison module.
type Module struct {
	catalog Catalog
	logger  *zap.Logger
	config  *viper.Viper
}

// New creates an arena module backed by the given catalog source.
func New(catalog Catalog) *Module {
	return &Module{catalog: catalog}
}

func (m *Module) Name() string    { return "arena" }
func (m *Module) Version() string { return "1.0.0" }

func (m *Module) Init(config *viper.Viper, logger *zap.Logger) error {
	m.config = config
	m.logger = logger
	m.logger.Info("arena module initialized")
	return nil
}

func (m *Module) Start(ctx context.Context) error { return nil }

func (m *Module) Stop() error { return nil }
