package catalog

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/iDarcky/retrocircuit/internal/services"
	"github.com/iDarcky/retrocircuit/pkg/models"
)

// csvHeaders returns the CSV column headers. Each row is one variant joined
// with its owning device.
func csvHeaders() []string {
	return []string{
		"slug", "name", "manufacturer", "form_factor", "category", "status",
		"release_year", "generation", "units_sold",
		"variant_name", "is_default", "model_no", "price_launch_usd",
		"cpu_model", "cpu_cores", "cpu_clock_max_mhz", "gpu_model",
		"ram_mb", "ram_type", "storage_gb", "storage_type",
		"screen_size_inch", "display_tech", "weight_g",
	}
}

// csvColumnCount is the number of columns in the CSV format.
const csvColumnCount = 24

// deviceToCSVRows converts a device to CSV rows, one per variant (matching
// csvHeaders order). A device with no variants produces a single row with
// empty variant columns.
func deviceToCSVRows(d models.Device) [][]string {
	base := []string{
		d.Slug,
		d.Name,
		d.ManufacturerName,
		string(d.FormFactor),
		string(d.Category),
		string(d.Status),
		intField(d.ReleaseYear),
		d.Generation,
		d.UnitsSold,
	}

	if len(d.Variants) == 0 {
		row := make([]string, csvColumnCount)
		copy(row, base)
		return [][]string{row}
	}

	rows := make([][]string, 0, len(d.Variants))
	for _, v := range d.Variants {
		row := make([]string, 0, csvColumnCount)
		row = append(row, base...)
		row = append(row,
			v.Name,
			strconv.FormatBool(v.IsDefault),
			v.ModelNo,
			priceField(v.PriceLaunchUSD),
			v.CPUModel,
			intField(v.CPUCores),
			intField(v.CPUClockMaxMHz),
			v.GPUModel,
			intField(v.RAMMB),
			v.RAMType,
			intField(v.StorageGB),
			v.StorageType,
			floatField(v.ScreenSizeInch),
			v.DisplayTech,
			intField(v.WeightG),
		)
		rows = append(rows, row)
	}
	return rows
}

// csvRowToVariant parses one CSV row into the device header fields and a
// variant. Returns an error for malformed numeric data.
func csvRowToVariant(row []string) (models.Device, models.Variant, error) {
	if len(row) < csvColumnCount {
		return models.Device{}, models.Variant{}, fmt.Errorf("expected %d columns, got %d", csvColumnCount, len(row))
	}

	// Re-slice to exactly csvColumnCount so gosec can verify bounds statically.
	r := row[:csvColumnCount]

	var d models.Device
	d.Slug = r[0]
	d.Name = r[1]
	d.ManufacturerName = r[2]
	d.FormFactor = models.FormFactor(r[3])
	d.Category = models.DeviceCategory(r[4])
	d.Status = models.DeviceStatus(r[5])

	var err error
	if d.ReleaseYear, err = parseIntField("release_year", r[6]); err != nil {
		return models.Device{}, models.Variant{}, err
	}
	d.Generation = r[7]
	d.UnitsSold = r[8]

	var v models.Variant
	v.Name = r[9]
	if r[10] != "" {
		if v.IsDefault, err = strconv.ParseBool(r[10]); err != nil {
			return models.Device{}, models.Variant{}, fmt.Errorf("invalid is_default: %w", err)
		}
	}
	v.ModelNo = r[11]

	if r[12] != "" {
		price, err := strconv.ParseFloat(r[12], 64)
		if err != nil {
			return models.Device{}, models.Variant{}, fmt.Errorf("invalid price_launch_usd: %w", err)
		}
		v.PriceLaunchUSD = &price
	}

	v.CPUModel = r[13]
	if v.CPUCores, err = parseIntField("cpu_cores", r[14]); err != nil {
		return models.Device{}, models.Variant{}, err
	}
	if v.CPUClockMaxMHz, err = parseIntField("cpu_clock_max_mhz", r[15]); err != nil {
		return models.Device{}, models.Variant{}, err
	}
	v.GPUModel = r[16]
	if v.RAMMB, err = parseIntField("ram_mb", r[17]); err != nil {
		return models.Device{}, models.Variant{}, err
	}
	v.RAMType = r[18]
	if v.StorageGB, err = parseIntField("storage_gb", r[19]); err != nil {
		return models.Device{}, models.Variant{}, err
	}
	v.StorageType = r[20]

	if r[21] != "" {
		if v.ScreenSizeInch, err = strconv.ParseFloat(r[21], 64); err != nil {
			return models.Device{}, models.Variant{}, fmt.Errorf("invalid screen_size_inch: %w", err)
		}
	}
	v.DisplayTech = r[22]
	if v.WeightG, err = parseIntField("weight_g", r[23]); err != nil {
		return models.Device{}, models.Variant{}, err
	}

	return d, v, nil
}

// csvRowsToDevices groups parsed rows into devices by slug, preserving row
// order. Device-level fields come from the first row of each slug.
func csvRowsToDevices(rows [][]string) ([]models.Device, error) {
	var devices []models.Device
	index := map[string]int{}

	for i, row := range rows {
		d, v, err := csvRowToVariant(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if d.Slug == "" {
			return nil, fmt.Errorf("row %d: missing slug", i+1)
		}

		pos, ok := index[d.Slug]
		if !ok {
			pos = len(devices)
			index[d.Slug] = pos
			devices = append(devices, d)
		}
		if v.Name != "" || v.IsDefault {
			devices[pos].Variants = append(devices[pos].Variants, v)
		}
	}
	return devices, nil
}

// handleExportCSV streams the full catalog, drafts included, as CSV.
func (m *Module) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	result, err := m.repo.List(r.Context(), services.DeviceFilter{}, services.ListOptions{
		Limit:     1000,
		SortBy:    "name",
		SortOrder: "asc",
	})
	if err != nil {
		m.logger.Error("failed to export catalog", zap.Error(err))
		catalogWriteError(w, http.StatusInternalServerError, "failed to export catalog")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="retrocircuit-catalog.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeaders())
	for _, d := range result.Items {
		for _, row := range deviceToCSVRows(d) {
			_ = cw.Write(row)
		}
	}
	cw.Flush()
}

// handleImportCSV creates devices from an uploaded CSV export. Rows sharing
// a slug become variants of one device.
func (m *Module) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	cr := csv.NewReader(r.Body)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		catalogWriteError(w, http.StatusBadRequest, "invalid CSV: "+err.Error())
		return
	}
	if len(rows) > 0 && len(rows[0]) > 0 && rows[0][0] == "slug" {
		rows = rows[1:]
	}

	devices, err := csvRowsToDevices(rows)
	if err != nil {
		catalogWriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	imported := 0
	for i := range devices {
		if err := m.repo.Create(r.Context(), &devices[i]); err != nil {
			m.logger.Error("failed to import device",
				zap.String("slug", devices[i].Slug),
				zap.Error(err),
			)
			catalogWriteError(w, http.StatusInternalServerError,
				fmt.Sprintf("imported %d of %d devices before error on %s", imported, len(devices), devices[i].Slug))
			return
		}
		imported++
	}

	catalogWriteJSON(w, http.StatusOK, map[string]int{"imported": imported})
}

func intField(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func floatField(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func priceField(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func parseIntField(name, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return n, nil
}
