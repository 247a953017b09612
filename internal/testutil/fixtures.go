package testutil

import (
	"github.com/google/uuid"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

// NewDevice returns a published Device with one default variant, suitable
// for test fixtures. Override individual fields after creation as needed.
func NewDevice(opts ...func(*models.Device)) models.Device {
	id := uuid.New().String()
	d := models.Device{
		ID:               id,
		Name:             "Test Handheld",
		Slug:             "test-handheld",
		ManufacturerName: "Testco",
		FormFactor:       models.FormFactorHorizontal,
		Category:         models.CategoryEmulation,
		Status:           models.StatusPublished,
		ReleaseYear:      2023,
		Variants: []models.Variant{
			{
				ID:          uuid.New().String(),
				DeviceID:    id,
				Name:        "Base",
				IsDefault:   true,
				ReleaseYear: 2023,
			},
		},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithName sets the device name and a slugified copy of it.
func WithName(name string) func(*models.Device) {
	return func(d *models.Device) {
		d.Name = name
		d.Slug = models.Slugify(name)
	}
}

// WithFormFactor sets the device form factor.
func WithFormFactor(ff models.FormFactor) func(*models.Device) {
	return func(d *models.Device) { d.FormFactor = ff }
}

// WithCategory sets the device category.
func WithCategory(c models.DeviceCategory) func(*models.Device) {
	return func(d *models.Device) { d.Category = c }
}

// WithStatus sets the device publication status.
func WithStatus(s models.DeviceStatus) func(*models.Device) {
	return func(d *models.Device) { d.Status = s }
}

// WithReleaseYear sets the release year on the device and its variants.
func WithReleaseYear(year int) func(*models.Device) {
	return func(d *models.Device) {
		d.ReleaseYear = year
		for i := range d.Variants {
			d.Variants[i].ReleaseYear = year
		}
	}
}

// WithPrice sets the launch price on every variant.
func WithPrice(usd float64) func(*models.Device) {
	return func(d *models.Device) {
		for i := range d.Variants {
			p := usd
			d.Variants[i].PriceLaunchUSD = &p
		}
	}
}

// WithVariants replaces the device's variant list.
func WithVariants(vs ...models.Variant) func(*models.Device) {
	return func(d *models.Device) {
		for i := range vs {
			vs[i].DeviceID = d.ID
		}
		d.Variants = vs
	}
}

// WithRatings attaches an emulation profile with the given ratings to
// every variant.
func WithRatings(ratings map[models.TargetSystem]models.Rating) func(*models.Device) {
	return func(d *models.Device) {
		for i := range d.Variants {
			d.Variants[i].Profile = &models.EmulationProfile{
				ID:        uuid.New().String(),
				VariantID: d.Variants[i].ID,
				Ratings:   ratings,
			}
		}
	}
}
