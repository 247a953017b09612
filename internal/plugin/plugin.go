package plugin

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Route represents an HTTP route exposed by a plugin.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Plugin defines the interface that all RetroCircuit modules must implement.
type Plugin interface {
	// Name returns the plugin's unique identifier (e.g., "finder", "arena").
	Name() string

	// Version returns the plugin's semantic version.
	Version() string

	// Init initializes the plugin with configuration and logger.
	Init(config *viper.Viper, logger *zap.Logger) error

	// Start begins the plugin's background operations.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the plugin.
	Stop() error

	// Routes returns the HTTP routes this plugin exposes.
	Routes() []Route
}

// Migration is a single schema change owned by a plugin. Versions are
// plugin-scoped and must be provided in ascending order.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx) error
}

// Store is the persistence interface handed to plugins that need SQL
// storage. Implemented by the SQLite store.
type Store interface {
	DB() *sql.DB
	Tx(ctx context.Context, fn func(tx *sql.Tx) error) error
	Migrate(ctx context.Context, pluginName string, migrations []Migration) error
	Close() error
}
