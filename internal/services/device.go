package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

// DeviceFilter controls which devices are returned by List.
type DeviceFilter struct {
	Status     string // Filter by DeviceStatus value.
	FormFactor string // Filter by FormFactor value.
	Category   string // Filter by DeviceCategory value.
	Search     string // Search name, slug, or manufacturer name.
	YearFrom   int    // Inclusive lower bound on release year (0 = no bound).
	YearTo     int    // Inclusive upper bound on release year (0 = no bound).
}

// DeviceRepository provides access to catalog devices with their variants
// and emulation profiles loaded.
type DeviceRepository interface {
	// Get returns a single device by ID, fully joined.
	Get(ctx context.Context, id string) (*models.Device, error)

	// GetBySlug returns a single device by URL slug, fully joined.
	GetBySlug(ctx context.Context, slug string) (*models.Device, error)

	// List returns a filtered, paginated list of devices.
	List(ctx context.Context, filter DeviceFilter, opts ListOptions) (*ListResult[models.Device], error)

	// PublishedDevices returns every published device, fully joined.
	// This is the catalog view the matching engine scores.
	PublishedDevices(ctx context.Context) ([]models.Device, error)

	// Create inserts a device together with its variants and profiles.
	// If any ID is empty, a UUID is generated.
	Create(ctx context.Context, device *models.Device) error

	// Update modifies an existing device's own fields (not its variants).
	Update(ctx context.Context, device *models.Device) error

	// Delete removes a device and, via foreign keys, its variants.
	Delete(ctx context.Context, id string) error
}

// Compile-time interface guard.
var _ DeviceRepository = (*SQLiteDeviceRepository)(nil)

// SQLiteDeviceRepository implements DeviceRepository using SQLite.
// It queries the catalog_* tables created by the catalog module's migrations.
type SQLiteDeviceRepository struct {
	db *sql.DB
}

// NewSQLiteDeviceRepository creates a DeviceRepository.
func NewSQLiteDeviceRepository(db *sql.DB) *SQLiteDeviceRepository {
	return &SQLiteDeviceRepository{db: db}
}

// deviceColumns is the shared column list for device queries.
const deviceColumns = `id, name, slug, manufacturer_id, manufacturer_name,
	form_factor, category, status, generation, release_year,
	image_url, units_sold, description`

// variantColumns is the shared column list for variant queries.
const variantColumns = `id, device_id, name, is_default, release_year, model_no,
	image_url, price_launch_usd, cpu_model, cpu_cores, cpu_clock_max_mhz,
	gpu_model, ram_mb, ram_type, storage_gb, storage_type,
	screen_size_inch, screen_resolution_x, screen_resolution_y,
	display_tech, refresh_rate_hz,
	battery_capacity_mah, battery_capacity_wh, weight_g`

func (r *SQLiteDeviceRepository) Get(ctx context.Context, id string) (*models.Device, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *SQLiteDeviceRepository) GetBySlug(ctx context.Context, slug string) (*models.Device, error) {
	return r.getOne(ctx, "slug = ?", slug)
}

func (r *SQLiteDeviceRepository) getOne(ctx context.Context, cond string, arg any) (*models.Device, error) {
	//nolint:gosec // cond is a fixed column predicate, never user input
	row := r.db.QueryRowContext(ctx,
		`SELECT `+deviceColumns+` FROM catalog_devices WHERE `+cond, arg)
	d, err := scanDevice(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get device %v: %w", arg, err)
	}
	if err := r.attachVariants(ctx, []*models.Device{d}); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDeviceRepository) List(ctx context.Context, filter DeviceFilter, opts ListOptions) (*ListResult[models.Device], error) {
	opts = normalizeListOptions(opts)

	// Validate sortBy against allowed columns.
	sortCol := "name"
	allowedSorts := map[string]string{
		"name":         "name",
		"release_year": "release_year",
		"status":       "status",
		"form_factor":  "form_factor",
	}
	if opts.SortBy != "" {
		if col, ok := allowedSorts[opts.SortBy]; ok {
			sortCol = col
		}
	}

	// Build WHERE clause with parameterized placeholders.
	where := "1=1"
	var args []any

	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.FormFactor != "" {
		where += " AND form_factor = ?"
		args = append(args, filter.FormFactor)
	}
	if filter.Category != "" {
		where += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		where += " AND (name LIKE ? OR slug LIKE ? OR manufacturer_name LIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if filter.YearFrom > 0 {
		where += " AND release_year >= ?"
		args = append(args, filter.YearFrom)
	}
	if filter.YearTo > 0 {
		where += " AND release_year <= ?"
		args = append(args, filter.YearTo)
	}

	// Count total matching rows.
	var total int
	//nolint:gosec // where uses parameterized placeholders only
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM catalog_devices WHERE "+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count devices: %w", err)
	}

	// Query with pagination and sorting.
	queryArgs := make([]any, 0, len(args)+2)
	queryArgs = append(queryArgs, args...)
	queryArgs = append(queryArgs, opts.Limit, opts.Offset)

	orderDir := "DESC"
	if opts.SortOrder == "asc" {
		orderDir = "ASC"
	}

	//nolint:gosec // where and sortCol are validated above, not user input
	query := fmt.Sprintf(
		"SELECT %s FROM catalog_devices WHERE %s ORDER BY %s %s LIMIT ? OFFSET ?",
		deviceColumns, where, sortCol, orderDir,
	)

	rows, err := r.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	devices, err := collectDevices(rows)
	if err != nil {
		return nil, err
	}

	refs := make([]*models.Device, len(devices))
	for i := range devices {
		refs[i] = &devices[i]
	}
	if err := r.attachVariants(ctx, refs); err != nil {
		return nil, err
	}

	return &ListResult[models.Device]{Items: devices, Total: total}, nil
}

func (r *SQLiteDeviceRepository) PublishedDevices(ctx context.Context) ([]models.Device, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+deviceColumns+` FROM catalog_devices WHERE status = ? ORDER BY name ASC`,
		string(models.StatusPublished))
	if err != nil {
		return nil, fmt.Errorf("load published devices: %w", err)
	}
	defer rows.Close()

	devices, err := collectDevices(rows)
	if err != nil {
		return nil, err
	}

	refs := make([]*models.Device, len(devices))
	for i := range devices {
		refs[i] = &devices[i]
	}
	if err := r.attachVariants(ctx, refs); err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *SQLiteDeviceRepository) Create(ctx context.Context, device *models.Device) error {
	if device.ID == "" {
		device.ID = uuid.New().String()
	}
	if device.Slug == "" {
		device.Slug = models.Slugify(device.Name)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create device: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO catalog_devices (
			id, name, slug, manufacturer_id, manufacturer_name,
			form_factor, category, status, generation, release_year,
			image_url, units_sold, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		device.ID, device.Name, device.Slug, device.ManufacturerID, device.ManufacturerName,
		string(device.FormFactor), string(device.Category), string(device.Status),
		device.Generation, device.ReleaseYear,
		device.ImageURL, device.UnitsSold, device.Description,
	)
	if err != nil {
		return fmt.Errorf("create device %q: %w", device.Name, err)
	}

	for i := range device.Variants {
		if err := insertVariant(ctx, tx, device.ID, &device.Variants[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SQLiteDeviceRepository) Update(ctx context.Context, device *models.Device) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE catalog_devices SET
			name = ?, slug = ?, manufacturer_id = ?, manufacturer_name = ?,
			form_factor = ?, category = ?, status = ?, generation = ?,
			release_year = ?, image_url = ?, units_sold = ?, description = ?
		WHERE id = ?`,
		device.Name, device.Slug, device.ManufacturerID, device.ManufacturerName,
		string(device.FormFactor), string(device.Category), string(device.Status),
		device.Generation, device.ReleaseYear, device.ImageURL, device.UnitsSold,
		device.Description, device.ID,
	)
	if err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteDeviceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM catalog_devices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// attachVariants loads variants and their emulation profiles for the given
// devices in two batched queries.
func (r *SQLiteDeviceRepository) attachVariants(ctx context.Context, devices []*models.Device) error {
	if len(devices) == 0 {
		return nil
	}

	byID := make(map[string]*models.Device, len(devices))
	ids := make([]any, 0, len(devices))
	for _, d := range devices {
		byID[d.ID] = d
		ids = append(ids, d.ID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	//nolint:gosec // placeholders holds only "?" markers
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+variantColumns+` FROM catalog_variants
		 WHERE device_id IN (`+placeholders+`)
		 ORDER BY is_default DESC, name ASC`, ids...)
	if err != nil {
		return fmt.Errorf("load variants: %w", err)
	}
	defer rows.Close()

	variantOwner := make(map[string]string) // variant id -> device id
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return err
		}
		variantOwner[v.ID] = v.DeviceID
		if d, ok := byID[v.DeviceID]; ok {
			d.Variants = append(d.Variants, *v)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate variants: %w", err)
	}
	if len(variantOwner) == 0 {
		return nil
	}

	variantIDs := make([]any, 0, len(variantOwner))
	for id := range variantOwner {
		variantIDs = append(variantIDs, id)
	}
	placeholders = strings.TrimSuffix(strings.Repeat("?,", len(variantIDs)), ",")

	//nolint:gosec // placeholders holds only "?" markers
	profRows, err := r.db.QueryContext(ctx,
		`SELECT id, variant_id, ratings, summary_text, source, last_verified
		 FROM catalog_emulation_profiles WHERE variant_id IN (`+placeholders+`)`,
		variantIDs...)
	if err != nil {
		return fmt.Errorf("load emulation profiles: %w", err)
	}
	defer profRows.Close()

	for profRows.Next() {
		p, err := scanProfile(profRows)
		if err != nil {
			return err
		}
		d, ok := byID[variantOwner[p.VariantID]]
		if !ok {
			continue
		}
		for i := range d.Variants {
			if d.Variants[i].ID == p.VariantID {
				d.Variants[i].Profile = p
				break
			}
		}
	}
	if err := profRows.Err(); err != nil {
		return fmt.Errorf("iterate emulation profiles: %w", err)
	}
	return nil
}

func insertVariant(ctx context.Context, tx *sql.Tx, deviceID string, v *models.Variant) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.DeviceID = deviceID

	_, err := tx.ExecContext(ctx, `
		INSERT INTO catalog_variants (
			id, device_id, name, is_default, release_year, model_no,
			image_url, price_launch_usd, cpu_model, cpu_cores, cpu_clock_max_mhz,
			gpu_model, ram_mb, ram_type, storage_gb, storage_type,
			screen_size_inch, screen_resolution_x, screen_resolution_y,
			display_tech, refresh_rate_hz,
			battery_capacity_mah, battery_capacity_wh, weight_g
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.DeviceID, v.Name, v.IsDefault, v.ReleaseYear, v.ModelNo,
		v.ImageURL, v.PriceLaunchUSD, v.CPUModel, v.CPUCores, v.CPUClockMaxMHz,
		v.GPUModel, v.RAMMB, v.RAMType, v.StorageGB, v.StorageType,
		v.ScreenSizeInch, v.ScreenResX, v.ScreenResY,
		v.DisplayTech, v.RefreshRateHz,
		v.BatteryCapacityMAh, v.BatteryCapacityWh, v.WeightG,
	)
	if err != nil {
		return fmt.Errorf("create variant %q: %w", v.Name, err)
	}

	if v.Profile == nil {
		return nil
	}
	if v.Profile.ID == "" {
		v.Profile.ID = uuid.New().String()
	}
	v.Profile.VariantID = v.ID

	ratingsJSON, _ := json.Marshal(v.Profile.Ratings)
	if v.Profile.Ratings == nil {
		ratingsJSON = []byte("{}")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO catalog_emulation_profiles (
			id, variant_id, ratings, summary_text, source, last_verified
		) VALUES (?, ?, ?, ?, ?, ?)`,
		v.Profile.ID, v.Profile.VariantID, string(ratingsJSON),
		v.Profile.SummaryText, v.Profile.Source, v.Profile.LastVerified,
	)
	if err != nil {
		return fmt.Errorf("create emulation profile for variant %q: %w", v.Name, err)
	}
	return nil
}

// scanDevice scans a single *sql.Row into a Device.
func scanDevice(row *sql.Row) (*models.Device, error) {
	var d models.Device
	var ff, cat, status string
	err := row.Scan(
		&d.ID, &d.Name, &d.Slug, &d.ManufacturerID, &d.ManufacturerName,
		&ff, &cat, &status, &d.Generation, &d.ReleaseYear,
		&d.ImageURL, &d.UnitsSold, &d.Description,
	)
	if err != nil {
		return nil, err
	}
	d.FormFactor = models.FormFactor(ff)
	d.Category = models.DeviceCategory(cat)
	d.Status = models.DeviceStatus(status)
	return &d, nil
}

// collectDevices drains a *sql.Rows of device rows.
func collectDevices(rows *sql.Rows) ([]models.Device, error) {
	var devices []models.Device
	for rows.Next() {
		var d models.Device
		var ff, cat, status string
		err := rows.Scan(
			&d.ID, &d.Name, &d.Slug, &d.ManufacturerID, &d.ManufacturerName,
			&ff, &cat, &status, &d.Generation, &d.ReleaseYear,
			&d.ImageURL, &d.UnitsSold, &d.Description,
		)
		if err != nil {
			return nil, err
		}
		d.FormFactor = models.FormFactor(ff)
		d.Category = models.DeviceCategory(cat)
		d.Status = models.DeviceStatus(status)
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate devices: %w", err)
	}
	if devices == nil {
		devices = []models.Device{}
	}
	return devices, nil
}

// scanVariant scans a *sql.Rows row into a Variant.
func scanVariant(rows *sql.Rows) (*models.Variant, error) {
	var v models.Variant
	var price sql.NullFloat64
	err := rows.Scan(
		&v.ID, &v.DeviceID, &v.Name, &v.IsDefault, &v.ReleaseYear, &v.ModelNo,
		&v.ImageURL, &price, &v.CPUModel, &v.CPUCores, &v.CPUClockMaxMHz,
		&v.GPUModel, &v.RAMMB, &v.RAMType, &v.StorageGB, &v.StorageType,
		&v.ScreenSizeInch, &v.ScreenResX, &v.ScreenResY,
		&v.DisplayTech, &v.RefreshRateHz,
		&v.BatteryCapacityMAh, &v.BatteryCapacityWh, &v.WeightG,
	)
	if err != nil {
		return nil, err
	}
	if price.Valid {
		v.PriceLaunchUSD = &price.Float64
	}
	return &v, nil
}

// scanProfile scans a *sql.Rows row into an EmulationProfile.
func scanProfile(rows *sql.Rows) (*models.EmulationProfile, error) {
	var p models.EmulationProfile
	var ratingsJSON string
	err := rows.Scan(
		&p.ID, &p.VariantID, &ratingsJSON,
		&p.SummaryText, &p.Source, &p.LastVerified,
	)
	if err != nil {
		return nil, err
	}
	_ = json.Unmarshal([]byte(ratingsJSON), &p.Ratings)
	return &p, nil
}
