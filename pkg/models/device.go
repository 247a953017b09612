package models

import "strings"

// FormFactor categorizes the physical shape of a device.
type FormFactor string

const (
	FormFactorHorizontal FormFactor = "horizontal"
	FormFactorVertical   FormFactor = "vertical"
	FormFactorClamshell  FormFactor = "clamshell"
	FormFactorHybrid     FormFactor = "hybrid"
	FormFactorHome       FormFactor = "home"
	FormFactorMicro      FormFactor = "micro"
	FormFactorUnknown    FormFactor = "unknown"
)

// DeviceCategory identifies the hardware architecture class of a device.
// PC-class devices bypass per-tier emulation rules during scoring because
// they run full desktop emulators regardless of era.
type DeviceCategory string

const (
	CategoryEmulation DeviceCategory = "emulation"
	CategoryPCGaming  DeviceCategory = "pc_gaming"
	CategoryFPGA      DeviceCategory = "fpga"
	CategoryLegacy    DeviceCategory = "legacy"
)

// DeviceStatus controls publication visibility of a catalog record.
type DeviceStatus string

const (
	StatusDraft     DeviceStatus = "draft"
	StatusPublished DeviceStatus = "published"
)

// Device represents a hardware product line in the Retro Circuit catalog.
// A Device owns zero or more Variants; the matching engine treats it as
// read-only input.
type Device struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	ManufacturerID   string         `json:"manufacturer_id,omitempty"`
	ManufacturerName string         `json:"manufacturer_name,omitempty"`
	FormFactor       FormFactor     `json:"form_factor"`
	Category         DeviceCategory `json:"device_category"`
	Status           DeviceStatus   `json:"status"`
	Generation       string         `json:"generation,omitempty"`
	ReleaseYear      int            `json:"release_year,omitempty"`
	ImageURL         string         `json:"image_url,omitempty"`
	UnitsSold        string         `json:"units_sold,omitempty"`
	Description      string         `json:"description,omitempty"`

	Variants []Variant `json:"variants,omitempty"`

	// Specs is the default variant's spec set, attached by the catalog
	// normalizer. Nil until the device has been normalized; an empty
	// Variant for devices with no variants at all.
	Specs *Variant `json:"specs,omitempty"`
}

// DefaultVariant selects the variant flagged as default, falling back to the
// first variant in list order when no flag is set. Returns nil for a device
// with no variants.
func (d *Device) DefaultVariant() *Variant {
	for i := range d.Variants {
		if d.Variants[i].IsDefault {
			return &d.Variants[i]
		}
	}
	if len(d.Variants) > 0 {
		return &d.Variants[0]
	}
	return nil
}

// Slugify converts a display name into a URL-safe slug: lowercase, with
// runs of non-alphanumeric characters collapsed into single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	prevHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
