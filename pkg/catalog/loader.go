// Package catalog embeds the seed device catalog shipped with the binary.
// A fresh database is populated from it on first start.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

//go:embed catalog.yaml
var catalogRawData []byte

// catalogFile is the top-level structure of the embedded YAML.
type catalogFile struct {
	Devices []seedDevice `yaml:"devices"`
}

// Catalog provides lazy-loaded access to the embedded seed devices.
type Catalog struct {
	once    sync.Once
	devices []models.Device
	err     error
}

// NewCatalog creates a Catalog that parses the embedded YAML on first access.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Devices returns a copy of all seed devices.
func (c *Catalog) Devices() ([]models.Device, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	cp := make([]models.Device, len(c.devices))
	copy(cp, c.devices)
	return cp, nil
}

// load parses the embedded YAML catalog data.
func (c *Catalog) load() {
	var f catalogFile
	if err := yaml.Unmarshal(catalogRawData, &f); err != nil {
		c.err = fmt.Errorf("catalog: parse yaml: %w", err)
		return
	}
	devices := make([]models.Device, 0, len(f.Devices))
	for _, sd := range f.Devices {
		devices = append(devices, sd.toModel())
	}
	c.devices = devices
}
