package catalog

import "github.com/iDarcky/retrocircuit/pkg/models"

// seedDevice mirrors models.Device with YAML tags. The embedded catalog
// stays decoupled from the JSON wire shape of the models package.
type seedDevice struct {
	Name         string        `yaml:"name"`
	Slug         string        `yaml:"slug"`
	Manufacturer string        `yaml:"manufacturer"`
	FormFactor   string        `yaml:"form_factor"`
	Category     string        `yaml:"category"`
	Status       string        `yaml:"status"`
	Generation   string        `yaml:"generation"`
	ReleaseYear  int           `yaml:"release_year"`
	ImageURL     string        `yaml:"image_url"`
	UnitsSold    string        `yaml:"units_sold"`
	Description  string        `yaml:"description"`
	Variants     []seedVariant `yaml:"variants"`
}

type seedVariant struct {
	Name        string   `yaml:"name"`
	IsDefault   bool     `yaml:"is_default"`
	ReleaseYear int      `yaml:"release_year"`
	ModelNo     string   `yaml:"model_no"`
	ImageURL    string   `yaml:"image_url"`
	PriceUSD    *float64 `yaml:"price_launch_usd"`

	CPUModel       string `yaml:"cpu_model"`
	CPUCores       int    `yaml:"cpu_cores"`
	CPUClockMaxMHz int    `yaml:"cpu_clock_max_mhz"`
	GPUModel       string `yaml:"gpu_model"`

	RAMMB       int    `yaml:"ram_mb"`
	RAMType     string `yaml:"ram_type"`
	StorageGB   int    `yaml:"storage_gb"`
	StorageType string `yaml:"storage_type"`

	ScreenSizeInch float64 `yaml:"screen_size_inch"`
	ScreenResX     int     `yaml:"screen_resolution_x"`
	ScreenResY     int     `yaml:"screen_resolution_y"`
	DisplayTech    string  `yaml:"display_tech"`
	RefreshRateHz  int     `yaml:"refresh_rate_hz"`

	BatteryCapacityMAh int     `yaml:"battery_capacity_mah"`
	BatteryCapacityWh  float64 `yaml:"battery_capacity_wh"`
	WeightG            int     `yaml:"weight_g"`

	Ratings map[string]string `yaml:"ratings"`
	Summary string            `yaml:"summary"`
}

func (sd seedDevice) toModel() models.Device {
	slug := sd.Slug
	if slug == "" {
		slug = models.Slugify(sd.Name)
	}
	status := models.DeviceStatus(sd.Status)
	if sd.Status == "" {
		status = models.StatusPublished
	}
	d := models.Device{
		Name:             sd.Name,
		Slug:             slug,
		ManufacturerName: sd.Manufacturer,
		FormFactor:       models.FormFactor(sd.FormFactor),
		Category:         models.DeviceCategory(sd.Category),
		Status:           status,
		Generation:       sd.Generation,
		ReleaseYear:      sd.ReleaseYear,
		ImageURL:         sd.ImageURL,
		UnitsSold:        sd.UnitsSold,
		Description:      sd.Description,
	}
	if d.Category == "" {
		d.Category = models.CategoryEmulation
	}
	for _, sv := range sd.Variants {
		d.Variants = append(d.Variants, sv.toModel())
	}
	return d
}

func (sv seedVariant) toModel() models.Variant {
	v := models.Variant{
		Name:        sv.Name,
		IsDefault:   sv.IsDefault,
		ReleaseYear: sv.ReleaseYear,
		ModelNo:     sv.ModelNo,
		ImageURL:    sv.ImageURL,

		PriceLaunchUSD: sv.PriceUSD,

		CPUModel:       sv.CPUModel,
		CPUCores:       sv.CPUCores,
		CPUClockMaxMHz: sv.CPUClockMaxMHz,
		GPUModel:       sv.GPUModel,

		RAMMB:       sv.RAMMB,
		RAMType:     sv.RAMType,
		StorageGB:   sv.StorageGB,
		StorageType: sv.StorageType,

		ScreenSizeInch: sv.ScreenSizeInch,
		ScreenResX:     sv.ScreenResX,
		ScreenResY:     sv.ScreenResY,
		DisplayTech:    sv.DisplayTech,
		RefreshRateHz:  sv.RefreshRateHz,

		BatteryCapacityMAh: sv.BatteryCapacityMAh,
		BatteryCapacityWh:  sv.BatteryCapacityWh,
		WeightG:            sv.WeightG,
	}
	if len(sv.Ratings) > 0 || sv.Summary != "" {
		ratings := make(map[models.TargetSystem]models.Rating, len(sv.Ratings))
		for sys, rating := range sv.Ratings {
			ratings[models.TargetSystem(sys)] = models.Rating(rating)
		}
		v.Profile = &models.EmulationProfile{
			Ratings:     ratings,
			SummaryText: sv.Summary,
			Source:      "seed catalog",
		}
	}
	return v
}
