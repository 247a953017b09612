package catalog

import (
	"database/sql"

	"github.com/iDarcky/retrocircuit/internal/plugin"
)

// Migrations returns the catalog module's schema migrations in order.
func Migrations() []plugin.Migration {
	return []plugin.Migration{
		{
			Version:     1,
			Description: "create catalog device tables",
			Up: func(tx *sql.Tx) error {
				stmts := []string{
					`CREATE TABLE IF NOT EXISTS catalog_devices (
						id                TEXT PRIMARY KEY,
						name              TEXT NOT NULL,
						slug              TEXT NOT NULL UNIQUE,
						manufacturer_id   TEXT NOT NULL DEFAULT '',
						manufacturer_name TEXT NOT NULL DEFAULT '',
						form_factor       TEXT NOT NULL DEFAULT 'unknown',
						category          TEXT NOT NULL DEFAULT 'emulation',
						status            TEXT NOT NULL DEFAULT 'draft',
						generation        TEXT NOT NULL DEFAULT '',
						release_year      INTEGER NOT NULL DEFAULT 0,
						image_url         TEXT NOT NULL DEFAULT '',
						units_sold        TEXT NOT NULL DEFAULT '',
						description       TEXT NOT NULL DEFAULT ''
					)`,
					`CREATE INDEX IF NOT EXISTS idx_catalog_devices_status
						ON catalog_devices(status)`,
					`CREATE TABLE IF NOT EXISTS catalog_variants (
						id                  TEXT PRIMARY KEY,
						device_id           TEXT NOT NULL
							REFERENCES catalog_devices(id) ON DELETE CASCADE,
						name                TEXT NOT NULL,
						is_default          INTEGER NOT NULL DEFAULT 0,
						release_year        INTEGER NOT NULL DEFAULT 0,
						model_no            TEXT NOT NULL DEFAULT '',
						image_url           TEXT NOT NULL DEFAULT '',
						price_launch_usd    REAL,
						cpu_model           TEXT NOT NULL DEFAULT '',
						cpu_cores           INTEGER NOT NULL DEFAULT 0,
						cpu_clock_max_mhz   INTEGER NOT NULL DEFAULT 0,
						gpu_model           TEXT NOT NULL DEFAULT '',
						ram_mb              INTEGER NOT NULL DEFAULT 0,
						ram_type            TEXT NOT NULL DEFAULT '',
						storage_gb          INTEGER NOT NULL DEFAULT 0,
						storage_type        TEXT NOT NULL DEFAULT '',
						screen_size_inch    REAL NOT NULL DEFAULT 0,
						screen_resolution_x INTEGER NOT NULL DEFAULT 0,
						screen_resolution_y INTEGER NOT NULL DEFAULT 0,
						display_tech        TEXT NOT NULL DEFAULT '',
						refresh_rate_hz     INTEGER NOT NULL DEFAULT 0,
						battery_capacity_mah INTEGER NOT NULL DEFAULT 0,
						battery_capacity_wh  REAL NOT NULL DEFAULT 0,
						weight_g            INTEGER NOT NULL DEFAULT 0
					)`,
					`CREATE INDEX IF NOT EXISTS idx_catalog_variants_device
						ON catalog_variants(device_id)`,
					`CREATE TABLE IF NOT EXISTS catalog_emulation_profiles (
						id            TEXT PRIMARY KEY,
						variant_id    TEXT NOT NULL UNIQUE
							REFERENCES catalog_variants(id) ON DELETE CASCADE,
						ratings       TEXT NOT NULL DEFAULT '{}',
						summary_text  TEXT NOT NULL DEFAULT '',
						source        TEXT NOT NULL DEFAULT '',
						last_verified DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
					)`,
				}
				for _, stmt := range stmts {
					if _, err := tx.Exec(stmt); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
