package arena

import (
	"testing"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

func floatPtr(f float64) *float64 { return &f }

func deviceWithSpecs(name string, year int, sold string, specs models.Variant) *models.Device {
	specs.IsDefault = true
	return &models.Device{
		Name:             name,
		Slug:             models.Slugify(name),
		ManufacturerName: name + " Corp",
		ReleaseYear:      year,
		Generation:       "Test Gen",
		UnitsSold:        sold,
		Variants:         []models.Variant{specs},
		Specs:            &specs,
	}
}

func pointByFeature(t *testing.T, result *models.ComparisonResult, feature string) models.ComparisonPoint {
	t.Helper()
	for _, p := range result.Points {
		if p.Feature == feature {
			return p
		}
	}
	t.Fatalf("no comparison point for feature %q", feature)
	return models.ComparisonPoint{}
}

func TestCompare_NilDevice(t *testing.T) {
	d := deviceWithSpecs("Solo", 2020, "1.2 million", models.Variant{})
	if Compare(nil, d) != nil {
		t.Error("Compare(nil, d) should be nil")
	}
	if Compare(d, nil) != nil {
		t.Error("Compare(d, nil) should be nil")
	}
	if Compare(nil, nil) != nil {
		t.Error("Compare(nil, nil) should be nil")
	}
}

func TestCompare_FiveDimensionsInOrder(t *testing.T) {
	a := deviceWithSpecs("Alpha", 2004, "60 million", models.Variant{CPUModel: "2.0GHz custom", RAMMB: 512})
	b := deviceWithSpecs("Beta", 2012, "20 million", models.Variant{CPUModel: "1.2GHz custom", RAMMB: 256})

	result := Compare(a, b)
	if result == nil {
		t.Fatal("Compare returned nil for two valid devices")
	}

	want := []string{"Legacy", "Market (Millions Sold)", "Launch Price", "CPU", "RAM"}
	if len(result.Points) != len(want) {
		t.Fatalf("len(points) = %d, want %d", len(result.Points), len(want))
	}
	for i, feature := range want {
		if result.Points[i].Feature != feature {
			t.Errorf("points[%d].Feature = %q, want %q", i, result.Points[i].Feature, feature)
		}
	}
}

func TestCompare_LegacyEarlierYearWins(t *testing.T) {
	older := deviceWithSpecs("Older", 2001, "", models.Variant{})
	newer := deviceWithSpecs("Newer", 2017, "", models.Variant{})

	p := pointByFeature(t, Compare(older, newer), "Legacy")
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A (earlier year)", p.Winner)
	}
	if p.AScore != 50 || p.BScore != 50 {
		t.Errorf("legacy bars = %d/%d, want 50/50", p.AScore, p.BScore)
	}

	p = pointByFeature(t, Compare(newer, older), "Legacy")
	if p.Winner != models.WinnerB {
		t.Errorf("winner = %s, want B (earlier year)", p.Winner)
	}
}

func TestCompare_LegacySameYearTies(t *testing.T) {
	a := deviceWithSpecs("A", 2004, "", models.Variant{})
	b := deviceWithSpecs("B", 2004, "", models.Variant{})
	if p := pointByFeature(t, Compare(a, b), "Legacy"); p.Winner != models.WinnerTie {
		t.Errorf("winner = %s, want Tie", p.Winner)
	}
}

func TestCompare_MarketBars(t *testing.T) {
	a := deviceWithSpecs("A", 2004, "60 million", models.Variant{})
	b := deviceWithSpecs("B", 2004, "30 million", models.Variant{})

	p := pointByFeature(t, Compare(a, b), "Market (Millions Sold)")
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A", p.Winner)
	}
	if p.AScore != 100 || p.BScore != 50 {
		t.Errorf("bars = %d/%d, want 100/50", p.AScore, p.BScore)
	}
	if p.AValue != "60 million" {
		t.Errorf("AValue = %q, want raw display string", p.AValue)
	}
}

func TestCompare_MarketUnknownBothZero(t *testing.T) {
	a := deviceWithSpecs("A", 2004, "", models.Variant{})
	b := deviceWithSpecs("B", 2004, "", models.Variant{})

	p := pointByFeature(t, Compare(a, b), "Market (Millions Sold)")
	if p.Winner != models.WinnerTie {
		t.Errorf("winner = %s, want Tie when both sides unknown", p.Winner)
	}
	if p.AScore != 0 || p.BScore != 0 {
		t.Errorf("bars = %d/%d, want 0/0", p.AScore, p.BScore)
	}
	if p.AValue != "Unknown" {
		t.Errorf("AValue = %q, want Unknown", p.AValue)
	}
}

func TestCompare_UnparseableLosesToValue(t *testing.T) {
	a := deviceWithSpecs("A", 2004, "", models.Variant{CPUModel: "custom silicon"})
	b := deviceWithSpecs("B", 2004, "", models.Variant{CPUModel: "1.5GHz quad"})

	p := pointByFeature(t, Compare(a, b), "CPU")
	if p.Winner != models.WinnerB {
		t.Errorf("winner = %s, want B (only side with a parsed value)", p.Winner)
	}
	if p.AScore != 0 || p.BScore != 100 {
		t.Errorf("bars = %d/%d, want 0/100", p.AScore, p.BScore)
	}
}

func TestCompare_LaunchPrice(t *testing.T) {
	a := deviceWithSpecs("A", 2004, "", models.Variant{PriceLaunchUSD: floatPtr(399)})
	b := deviceWithSpecs("B", 2004, "", models.Variant{})

	p := pointByFeature(t, Compare(a, b), "Launch Price")
	if p.AValue != "$399" {
		t.Errorf("AValue = %q, want $399", p.AValue)
	}
	if p.BValue != "Unknown" {
		t.Errorf("BValue = %q, want Unknown", p.BValue)
	}
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A", p.Winner)
	}
}

func TestCompare_RAMDescriptor(t *testing.T) {
	a := deviceWithSpecs("A", 2004, "", models.Variant{RAMMB: 512, RAMType: "DDR3"})
	b := deviceWithSpecs("B", 2004, "", models.Variant{RAMMB: 256})

	p := pointByFeature(t, Compare(a, b), "RAM")
	if p.AValue != "512 MB DDR3" {
		t.Errorf("AValue = %q, want 512 MB DDR3", p.AValue)
	}
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A", p.Winner)
	}
	if p.BScore != 50 {
		t.Errorf("BScore = %d, want 50", p.BScore)
	}
}

func TestCompare_SummaryNamesManufacturers(t *testing.T) {
	a := deviceWithSpecs("Alpha", 2004, "", models.Variant{})
	b := deviceWithSpecs("Beta", 2004, "", models.Variant{})

	result := Compare(a, b)
	if result.Summary != "Alpha Corp faces off against Beta Corp." {
		t.Errorf("summary = %q", result.Summary)
	}
	if result.DeviceA != "Alpha" || result.DeviceB != "Beta" {
		t.Errorf("device names = %q / %q", result.DeviceA, result.DeviceB)
	}
}

func TestCompare_FallsBackToDefaultVariant(t *testing.T) {
	// Device that skipped normalization: Specs nil, variant carries specs.
	a := &models.Device{
		Name:        "Raw",
		ReleaseYear: 2010,
		Variants: []models.Variant{
			{Name: "Base", IsDefault: true, RAMMB: 1024},
		},
	}
	b := deviceWithSpecs("Cooked", 2010, "", models.Variant{RAMMB: 512})

	p := pointByFeature(t, Compare(a, b), "RAM")
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A from default-variant fallback", p.Winner)
	}
}
