package arena

import (
	"fmt"
	"strings"

	"github.com/iDarcky/retrocircuit/internal/catalog"
	"github.com/iDarcky/retrocircuit/pkg/models"
)

// ReadoutRow is one labeled line of the match readout panel.
type ReadoutRow struct {
	Label  string `json:"label"`
	AValue string `json:"a_value"`
	BValue string `json:"b_value"`
}

// Readout builds the spec summary rows shown under a head-to-head verdict.
// Rows that neither side can fill are dropped rather than rendered empty.
func Readout(a, b *models.Variant) []ReadoutRow {
	if a == nil || b == nil {
		return nil
	}
	rows := []ReadoutRow{
		{Label: "CHIPSET", AValue: orDash(a.CPUModel), BValue: orDash(b.CPUModel)},
		{Label: "GPU", AValue: orDash(a.GPUModel), BValue: orDash(b.GPUModel)},
		{Label: "DISPLAY", AValue: FormatDisplay(a), BValue: FormatDisplay(b)},
		{Label: "MEMORY", AValue: FormatMemory(a), BValue: FormatMemory(b)},
		{Label: "STORAGE", AValue: FormatStorage(a), BValue: FormatStorage(b)},
	}
	if battery, ok := formatBatteryPair(a, b); ok {
		rows = append(rows, battery)
	}
	rows = append(rows, ReadoutRow{
		Label:  "EMULATION CAP",
		AValue: catalog.MaxTierLabel(a.Profile),
		BValue: catalog.MaxTierLabel(b.Profile),
	})
	if a.PriceLaunchUSD != nil || b.PriceLaunchUSD != nil {
		rows = append(rows, ReadoutRow{
			Label:  "LAUNCH PRICE",
			AValue: orDash(priceValueDash(a.PriceLaunchUSD)),
			BValue: orDash(priceValueDash(b.PriceLaunchUSD)),
		})
	}
	return rows
}

// FormatDisplay summarizes a variant's screen as size, refresh rate, and
// panel tech (or resolution class when the tech is unknown), kept short
// enough for a single readout cell.
func FormatDisplay(v *models.Variant) string {
	var parts []string
	if v.ScreenSizeInch > 0 {
		parts = append(parts, trimFloat(v.ScreenSizeInch)+`"`)
	}
	if v.RefreshRateHz > 0 {
		parts = append(parts, fmt.Sprintf("%dHz", v.RefreshRateHz))
	}
	if tech := shortDisplayTech(v.DisplayTech); tech != "" {
		parts = append(parts, tech)
	} else if cls := resolutionClass(v.ScreenResY); cls != "" {
		parts = append(parts, cls)
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " · ")
}

// FormatStorage renders capacity plus medium, "512GB eMMC" style.
func FormatStorage(v *models.Variant) string {
	if v.StorageGB == 0 {
		return "—"
	}
	s := fmt.Sprintf("%dGB", v.StorageGB)
	if v.StorageType != "" {
		s += " " + v.StorageType
	}
	return s
}

// FormatMemory renders RAM in GB plus type, "16GB LPDDR5" style. Sub-GB
// amounts keep one decimal place.
func FormatMemory(v *models.Variant) string {
	if v.RAMMB == 0 {
		return "—"
	}
	gb := float64(v.RAMMB) / 1024
	var size string
	if gb == float64(int(gb)) {
		size = fmt.Sprintf("%dGB", int(gb))
	} else {
		size = fmt.Sprintf("%.1fGB", gb)
	}
	if v.RAMType != "" {
		size += " " + v.RAMType
	}
	return size
}

// formatBatteryPair emits a battery row only when both sides report the
// same unit, so the two cells stay comparable.
func formatBatteryPair(a, b *models.Variant) (ReadoutRow, bool) {
	if a.BatteryCapacityMAh > 0 && b.BatteryCapacityMAh > 0 {
		return ReadoutRow{
			Label:  "BATTERY",
			AValue: fmt.Sprintf("%d mAh", a.BatteryCapacityMAh),
			BValue: fmt.Sprintf("%d mAh", b.BatteryCapacityMAh),
		}, true
	}
	if a.BatteryCapacityWh > 0 && b.BatteryCapacityWh > 0 {
		return ReadoutRow{
			Label:  "BATTERY",
			AValue: trimFloat(a.BatteryCapacityWh) + " Wh",
			BValue: trimFloat(b.BatteryCapacityWh) + " Wh",
		}, true
	}
	return ReadoutRow{}, false
}

func shortDisplayTech(tech string) string {
	t := strings.ToLower(tech)
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "amoled"):
		return "AMOLED"
	case strings.Contains(t, "oled"):
		return "OLED"
	case strings.Contains(t, "ips"):
		return "IPS"
	case strings.Contains(t, "ltps"):
		return "LTPS"
	case strings.Contains(t, "mini-led"):
		return "MiniLED"
	case strings.Contains(t, "lcd"):
		return "LCD"
	}
	return tech
}

func resolutionClass(resY int) string {
	switch {
	case resY <= 0:
		return ""
	case resY >= 2160:
		return "4K"
	case resY >= 1440:
		return "1440p"
	case resY >= 1080:
		return "1080p"
	case resY >= 720:
		return "720p"
	case resY >= 480:
		return "480p"
	}
	return fmt.Sprintf("%dp", resY)
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.1f", f)
	return strings.TrimSuffix(s, ".0")
}

func priceValueDash(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("$%.0f", *p)
}
