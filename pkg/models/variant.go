package models

import "time"

// Variant is a specific hardware configuration of a Device, such as a
// storage tier or regional SKU. Exactly one Variant per Device should carry
// IsDefault; the normalizer tolerates catalogs where none does.
type Variant struct {
	ID          string `json:"id"`
	DeviceID    string `json:"device_id"`
	Name        string `json:"variant_name"`
	IsDefault   bool   `json:"is_default"`
	ReleaseYear int    `json:"release_year,omitempty"`
	ModelNo     string `json:"model_no,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	PriceLaunchUSD *float64 `json:"price_launch_usd,omitempty"`

	CPUModel       string `json:"cpu_model,omitempty"`
	CPUCores       int    `json:"cpu_cores,omitempty"`
	CPUClockMaxMHz int    `json:"cpu_clock_max_mhz,omitempty"`
	GPUModel       string `json:"gpu_model,omitempty"`

	RAMMB       int    `json:"ram_mb,omitempty"`
	RAMType     string `json:"ram_type,omitempty"`
	StorageGB   int    `json:"storage_gb,omitempty"`
	StorageType string `json:"storage_type,omitempty"`

	ScreenSizeInch float64 `json:"screen_size_inch,omitempty"`
	ScreenResX     int     `json:"screen_resolution_x,omitempty"`
	ScreenResY     int     `json:"screen_resolution_y,omitempty"`
	DisplayTech    string  `json:"display_tech,omitempty"`
	RefreshRateHz  int     `json:"refresh_rate_hz,omitempty"`

	BatteryCapacityMAh int     `json:"battery_capacity_mah,omitempty"`
	BatteryCapacityWh  float64 `json:"battery_capacity_wh,omitempty"`
	WeightG            int     `json:"weight_g,omitempty"`

	// Profile is the variant's 1:1 emulation profile. The store layer may
	// materialize it from a joined row set; by the time a Variant reaches
	// the engine it is a singleton or nil, never a list.
	Profile *EmulationProfile `json:"emulation_profile,omitempty"`
}

// EmulationProfile holds per-target-system playability ratings for one
// Variant, along with free-text notes and verification metadata. Mutated
// only by catalog maintainers; read-only to the engine.
type EmulationProfile struct {
	ID        string `json:"id"`
	VariantID string `json:"variant_id"`

	Ratings map[TargetSystem]Rating `json:"ratings"`

	SummaryText  string    `json:"summary_text,omitempty"`
	Source       string    `json:"source,omitempty"`
	LastVerified time.Time `json:"last_verified,omitempty"`
}

// Rating returns the profile's rating for a target system, or RatingNA when
// the system was never evaluated. Safe on a nil profile.
func (p *EmulationProfile) Rating(sys TargetSystem) Rating {
	if p == nil || p.Ratings == nil {
		return RatingNA
	}
	if r, ok := p.Ratings[sys]; ok {
		return r
	}
	return RatingNA
}
