package arena

import (
	"testing"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

func specPoint(t *testing.T, points []models.ComparisonPoint, feature string) models.ComparisonPoint {
	t.Helper()
	for _, p := range points {
		if p.Feature == feature {
			return p
		}
	}
	t.Fatalf("no spec sheet point for feature %q", feature)
	return models.ComparisonPoint{}
}

func TestCompareVariants_NilSide(t *testing.T) {
	v := &models.Variant{RAMMB: 512}
	if CompareVariants(nil, v) != nil {
		t.Error("nil A side should produce nil")
	}
	if CompareVariants(v, nil) != nil {
		t.Error("nil B side should produce nil")
	}
}

func TestCompareVariants_SkipsEmptyMetrics(t *testing.T) {
	a := &models.Variant{RAMMB: 512}
	b := &models.Variant{RAMMB: 256}

	points := CompareVariants(a, b)
	for _, p := range points {
		if p.Feature != "RAM" {
			t.Errorf("unexpected point %q for variants that only set RAM", p.Feature)
		}
	}
	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
}

func TestCompareVariants_HigherWins(t *testing.T) {
	a := &models.Variant{StorageGB: 512, StorageType: "NVMe"}
	b := &models.Variant{StorageGB: 64, StorageType: "eMMC"}

	p := specPoint(t, CompareVariants(a, b), "Storage")
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A", p.Winner)
	}
	if p.AScore != 100 {
		t.Errorf("AScore = %d, want 100", p.AScore)
	}
	if p.BScore != 13 {
		t.Errorf("BScore = %d, want 13", p.BScore)
	}
}

func TestCompareVariants_LowerIsBetterWeight(t *testing.T) {
	light := &models.Variant{WeightG: 280}
	heavy := &models.Variant{WeightG: 560}

	p := specPoint(t, CompareVariants(light, heavy), "Weight")
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A (lighter)", p.Winner)
	}
	if p.AValue != "280g" || p.BValue != "560g" {
		t.Errorf("values = %q / %q", p.AValue, p.BValue)
	}
	// Bars invert so the lighter device draws the longer bar.
	if p.AScore <= p.BScore {
		t.Errorf("bars = %d/%d, lighter side should draw longer", p.AScore, p.BScore)
	}
}

func TestCompareVariants_LowerIsBetterPrice(t *testing.T) {
	cheap := &models.Variant{PriceLaunchUSD: floatPtr(99)}
	dear := &models.Variant{PriceLaunchUSD: floatPtr(399)}

	p := specPoint(t, CompareVariants(cheap, dear), "Launch Price")
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A (cheaper)", p.Winner)
	}
	if p.AValue != "$99" {
		t.Errorf("AValue = %q, want $99", p.AValue)
	}
}

func TestCompareVariants_LowerIsBetterUnknownLoses(t *testing.T) {
	known := &models.Variant{WeightG: 400}
	unknown := &models.Variant{RAMMB: 256} // no weight

	p := specPoint(t, CompareVariants(known, unknown), "Weight")
	if p.Winner != models.WinnerA {
		t.Errorf("winner = %s, want A (a missing value never beats a real one)", p.Winner)
	}
	if p.BValue != "—" {
		t.Errorf("BValue = %q, want dash placeholder", p.BValue)
	}
}

func TestCompareVariants_TextMetricTies(t *testing.T) {
	a := &models.Variant{DisplayTech: "OLED"}
	b := &models.Variant{DisplayTech: "IPS LCD"}

	p := specPoint(t, CompareVariants(a, b), "Display Tech")
	if p.Winner != models.WinnerTie {
		t.Errorf("winner = %s, want Tie for text-only metric", p.Winner)
	}
	if p.AScore != 0 || p.BScore != 0 {
		t.Errorf("bars = %d/%d, want 0/0", p.AScore, p.BScore)
	}
}

func TestCompareVariants_ResolutionUsesPixelCount(t *testing.T) {
	tall := &models.Variant{ScreenResX: 640, ScreenResY: 480}   // 307200 px
	wide := &models.Variant{ScreenResX: 1280, ScreenResY: 720}  // 921600 px

	p := specPoint(t, CompareVariants(tall, wide), "Resolution")
	if p.Winner != models.WinnerB {
		t.Errorf("winner = %s, want B (more pixels)", p.Winner)
	}
	if p.AValue != "640x480" {
		t.Errorf("AValue = %q, want 640x480", p.AValue)
	}
}

func TestMetrics_CatalogShape(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Metrics {
		if m.Key == "" || m.Label == "" {
			t.Errorf("metric %+v missing key or label", m)
		}
		if seen[m.Key] {
			t.Errorf("duplicate metric key %q", m.Key)
		}
		seen[m.Key] = true
		if m.Value == nil {
			t.Errorf("metric %q has no value extractor", m.Key)
		}
	}
	if !seen["price_launch_usd"] || !seen["weight_g"] {
		t.Error("metric catalog should include launch price and weight")
	}
}
