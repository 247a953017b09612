// Package arena computes head-to-head comparisons between two catalog
// devices: a fixed five-dimension verdict with winner tags and visual
// score bars, plus a full per-metric side-by-side table over the default
// variants.
package arena

import (
	"fmt"
	"math"

	"github.com/iDarcky/retrocircuit/internal/specs"
	"github.com/iDarcky/retrocircuit/pkg/models"
)

// Compare evaluates the five canonical dimensions between two normalized
// devices and returns a structured verdict. Returns nil when either side
// is missing; callers render that as a "no data" state.
func Compare(a, b *models.Device) *models.ComparisonResult {
	if a == nil || b == nil {
		return nil
	}

	points := make([]models.ComparisonPoint, 0, 5)

	// Legacy: the earlier machine wins. Bars stay even because age is a
	// pedigree statement, not a magnitude.
	legacy := models.ComparisonPoint{
		Feature: "Legacy",
		AValue:  legacyValue(a),
		BValue:  legacyValue(b),
		Winner:  models.WinnerTie,
		AScore:  50,
		BScore:  50,
	}
	switch {
	case a.ReleaseYear != 0 && (b.ReleaseYear == 0 || a.ReleaseYear < b.ReleaseYear):
		legacy.Winner = models.WinnerA
	case b.ReleaseYear != 0 && (a.ReleaseYear == 0 || b.ReleaseYear < a.ReleaseYear):
		legacy.Winner = models.WinnerB
	}
	points = append(points, legacy)

	points = append(points, numericPoint("Market (Millions Sold)",
		orUnknown(a.UnitsSold), orUnknown(b.UnitsSold),
		specs.ParseSales(a.UnitsSold), specs.ParseSales(b.UnitsSold)))

	priceA, priceB := devicePrice(a), devicePrice(b)
	points = append(points, numericPoint("Launch Price",
		priceValue(priceA), priceValue(priceB),
		deref(priceA), deref(priceB)))

	cpuA, cpuB := deviceSpec(a, cpuModel), deviceSpec(b, cpuModel)
	points = append(points, numericPoint("CPU",
		orUnknown(cpuA), orUnknown(cpuB),
		specs.ParseMagnitude(cpuA), specs.ParseMagnitude(cpuB)))

	ramA, ramB := deviceSpec(a, ramDescriptor), deviceSpec(b, ramDescriptor)
	points = append(points, numericPoint("RAM",
		orUnknown(ramA), orUnknown(ramB),
		specs.ParseMagnitude(ramA), specs.ParseMagnitude(ramB)))

	return &models.ComparisonResult{
		DeviceA:      a.Name,
		DeviceB:      b.Name,
		DeviceAImage: a.ImageURL,
		DeviceBImage: b.ImageURL,
		Summary:      summaryLine(a, b),
		Points:       points,
	}
}

// numericPoint builds a higher-wins comparison point from already parsed
// magnitudes. Unparseable values arrive as 0 and lose to any positive
// value on the other side.
func numericPoint(feature, valA, valB string, numA, numB float64) models.ComparisonPoint {
	barA, barB := bars(numA, numB)
	return models.ComparisonPoint{
		Feature: feature,
		AValue:  valA,
		BValue:  valB,
		Winner:  winnerOf(numA, numB, false),
		AScore:  barA,
		BScore:  barB,
	}
}

// winnerOf picks the side with the better magnitude. Equal values,
// including the both-zero case, are a tie.
func winnerOf(a, b float64, lowerIsBetter bool) models.Winner {
	if a == b {
		return models.WinnerTie
	}
	if lowerIsBetter {
		// A zero on one side means "unknown", which never beats a real value.
		if a == 0 {
			return models.WinnerB
		}
		if b == 0 {
			return models.WinnerA
		}
		a, b = b, a
	}
	if a > b {
		return models.WinnerA
	}
	return models.WinnerB
}

// bars scales both magnitudes to a 0-100 range against the larger of the
// two. Both come back 0 when neither side has a value.
func bars(a, b float64) (int, int) {
	max := math.Max(a, b)
	if max == 0 {
		return 0, 0
	}
	return int(math.Round(a / max * 100)), int(math.Round(b / max * 100))
}

func legacyValue(d *models.Device) string {
	if d.ReleaseYear == 0 {
		return "Unknown"
	}
	if d.Generation == "" {
		return fmt.Sprintf("%d", d.ReleaseYear)
	}
	return fmt.Sprintf("%d (%s)", d.ReleaseYear, d.Generation)
}

func priceValue(p *float64) string {
	if p == nil {
		return "Unknown"
	}
	return fmt.Sprintf("$%.0f", *p)
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func cpuModel(v *models.Variant) string { return v.CPUModel }

func ramDescriptor(v *models.Variant) string {
	if v.RAMMB == 0 {
		return ""
	}
	if v.RAMType == "" {
		return fmt.Sprintf("%d MB", v.RAMMB)
	}
	return fmt.Sprintf("%d MB %s", v.RAMMB, v.RAMType)
}

// deviceSpec reads a spec string off the normalized spec set, falling back
// to the default variant for devices that skipped normalization.
func deviceSpec(d *models.Device, get func(*models.Variant) string) string {
	if d.Specs != nil {
		return get(d.Specs)
	}
	if v := d.DefaultVariant(); v != nil {
		return get(v)
	}
	return ""
}

func devicePrice(d *models.Device) *float64 {
	if d.Specs != nil && d.Specs.PriceLaunchUSD != nil {
		return d.Specs.PriceLaunchUSD
	}
	if v := d.DefaultVariant(); v != nil {
		return v.PriceLaunchUSD
	}
	return nil
}

func summaryLine(a, b *models.Device) string {
	return fmt.Sprintf("%s faces off against %s.",
		manufacturerOrUnknown(a), manufacturerOrUnknown(b))
}

func manufacturerOrUnknown(d *models.Device) string {
	if d.ManufacturerName == "" {
		return "Unknown"
	}
	return d.ManufacturerName
}
