// Package catalog turns raw relational device records into the canonical
// projections consumed by the finder and arena modules: a normalized
// default-variant view per device, and per-tier emulation capability
// summaries.
package catalog

import "github.com/iDarcky/retrocircuit/pkg/models"

// NormalizeDevice attaches the default variant's spec set to the device
// projection and backfills display fields the device record lacks.
//
// Selection follows the is_default-flag-first, first-in-list-fallback rule.
// A device with zero variants receives an empty spec set rather than an
// error. Idempotent: normalizing an already-normalized device changes
// nothing.
func NormalizeDevice(d models.Device) models.Device {
	def := d.DefaultVariant()
	if def == nil {
		d.Specs = &models.Variant{}
		return d
	}

	if d.ImageURL == "" && def.ImageURL != "" {
		d.ImageURL = def.ImageURL
	}
	if d.ReleaseYear == 0 && def.ReleaseYear != 0 {
		d.ReleaseYear = def.ReleaseYear
	}

	specs := *def
	d.Specs = &specs
	return d
}

// NormalizeAll normalizes every device in a catalog slice.
func NormalizeAll(devices []models.Device) []models.Device {
	out := make([]models.Device, len(devices))
	for i := range devices {
		out[i] = NormalizeDevice(devices[i])
	}
	return out
}
