package arena

import (
	"fmt"
	"strconv"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

// Metric describes one row of the manual side-by-side table: how to read
// the value off a variant, how to render it, and whether a smaller number
// is the better one.
type Metric struct {
	Key           string
	Label         string
	Unit          string
	LowerIsBetter bool

	// Value extracts the display string and numeric magnitude for one
	// variant. A zero magnitude means the field is unset.
	Value func(*models.Variant) (string, float64)
}

func numberMetric(key, label, unit string, get func(*models.Variant) float64) Metric {
	return Metric{
		Key:   key,
		Label: label,
		Unit:  unit,
		Value: func(v *models.Variant) (string, float64) {
			n := get(v)
			if n == 0 {
				return "", 0
			}
			return strconv.FormatFloat(n, 'f', -1, 64) + unit, n
		},
	}
}

func textMetric(key, label string, get func(*models.Variant) string) Metric {
	return Metric{
		Key:   key,
		Label: label,
		Value: func(v *models.Variant) (string, float64) { return get(v), 0 },
	}
}

// Metrics is the full per-variant metric catalog in display order.
var Metrics = []Metric{
	numberMetric("release_year", "Release Year", "", func(v *models.Variant) float64 { return float64(v.ReleaseYear) }),
	{
		Key:           "price_launch_usd",
		Label:         "Launch Price",
		LowerIsBetter: true,
		Value: func(v *models.Variant) (string, float64) {
			if v.PriceLaunchUSD == nil {
				return "", 0
			}
			return fmt.Sprintf("$%.0f", *v.PriceLaunchUSD), *v.PriceLaunchUSD
		},
	},
	textMetric("model_no", "Model Number", func(v *models.Variant) string { return v.ModelNo }),

	numberMetric("screen_size_inch", "Screen Size", `"`, func(v *models.Variant) float64 { return v.ScreenSizeInch }),
	{
		Key:   "screen_resolution",
		Label: "Resolution",
		Value: func(v *models.Variant) (string, float64) {
			if v.ScreenResX == 0 || v.ScreenResY == 0 {
				return "", 0
			}
			// Pixel count, so a taller-but-narrower panel can still win.
			return fmt.Sprintf("%dx%d", v.ScreenResX, v.ScreenResY), float64(v.ScreenResX * v.ScreenResY)
		},
	},
	textMetric("display_tech", "Display Tech", func(v *models.Variant) string { return v.DisplayTech }),
	numberMetric("refresh_rate_hz", "Refresh Rate", "Hz", func(v *models.Variant) float64 { return float64(v.RefreshRateHz) }),

	textMetric("cpu_model", "CPU Model", func(v *models.Variant) string { return v.CPUModel }),
	numberMetric("cpu_cores", "CPU Cores", "", func(v *models.Variant) float64 { return float64(v.CPUCores) }),
	numberMetric("cpu_clock_max_mhz", "CPU Clock (Max)", " MHz", func(v *models.Variant) float64 { return float64(v.CPUClockMaxMHz) }),
	textMetric("gpu_model", "GPU Model", func(v *models.Variant) string { return v.GPUModel }),

	numberMetric("ram_mb", "RAM", " MB", func(v *models.Variant) float64 { return float64(v.RAMMB) }),
	textMetric("ram_type", "RAM Type", func(v *models.Variant) string { return v.RAMType }),
	numberMetric("storage_gb", "Storage", " GB", func(v *models.Variant) float64 { return float64(v.StorageGB) }),
	textMetric("storage_type", "Storage Type", func(v *models.Variant) string { return v.StorageType }),

	numberMetric("battery_capacity_mah", "Battery Capacity", " mAh", func(v *models.Variant) float64 { return float64(v.BatteryCapacityMAh) }),
	numberMetric("battery_capacity_wh", "Battery Energy", " Wh", func(v *models.Variant) float64 { return v.BatteryCapacityWh }),
	{
		Key:           "weight_g",
		Label:         "Weight",
		Unit:          "g",
		LowerIsBetter: true,
		Value: func(v *models.Variant) (string, float64) {
			if v.WeightG == 0 {
				return "", 0
			}
			return strconv.Itoa(v.WeightG) + "g", float64(v.WeightG)
		},
	},
}

// CompareVariants walks the metric catalog over two variants and returns
// one comparison point per metric where at least one side has a value.
// Text-only metrics always come back as a tie with empty bars.
func CompareVariants(a, b *models.Variant) []models.ComparisonPoint {
	if a == nil || b == nil {
		return nil
	}
	points := make([]models.ComparisonPoint, 0, len(Metrics))
	for _, m := range Metrics {
		valA, numA := m.Value(a)
		valB, numB := m.Value(b)
		if valA == "" && valB == "" {
			continue
		}
		barA, barB := bars(numA, numB)
		if m.LowerIsBetter && barA > 0 && barB > 0 {
			// Invert the bars so the shorter (better) value draws longer.
			barA, barB = barB, barA
		}
		points = append(points, models.ComparisonPoint{
			Feature: m.Label,
			AValue:  orDash(valA),
			BValue:  orDash(valB),
			Winner:  winnerOf(numA, numB, m.LowerIsBetter),
			AScore:  barA,
			BScore:  barB,
		})
	}
	return points
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
