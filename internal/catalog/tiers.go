package catalog

import "github.com/iDarcky/retrocircuit/pkg/models"

// SystemTier is a static grouping of target systems by era and emulation
// difficulty. Tiers are ordered simplest to most demanding; the slice index
// plus one is the tier number shown to users.
type SystemTier struct {
	ID         int
	Title      string
	ShortLabel string
	Systems    []models.TargetSystem
}

// SystemTiers is the fixed tier table. Code-defined, never persisted.
var SystemTiers = []SystemTier{
	{
		ID:         1,
		Title:      "TIER 1: CLASSIC 2D",
		ShortLabel: "TIER 1",
		Systems: []models.TargetSystem{
			models.SystemNES, models.SystemSNES, models.SystemMasterSystem,
			models.SystemGenesis, models.SystemGameBoy, models.SystemGameBoyColor,
			models.SystemGBA,
		},
	},
	{
		ID:         2,
		Title:      "TIER 2: EARLY 3D",
		ShortLabel: "TIER 2",
		Systems: []models.TargetSystem{
			models.SystemPS1, models.SystemN64, models.SystemSaturn,
			models.SystemNDS, models.SystemDreamcast,
		},
	},
	{
		ID:         3,
		Title:      "TIER 3: ADVANCED HANDHELDS",
		ShortLabel: "TIER 3",
		Systems: []models.TargetSystem{
			models.SystemPSP, models.System3DS, models.SystemVita,
		},
	},
	{
		ID:         4,
		Title:      "TIER 4: CLASSIC HOME",
		ShortLabel: "TIER 4",
		Systems: []models.TargetSystem{
			models.SystemPS2, models.SystemGameCube, models.SystemXbox,
		},
	},
	{
		ID:         5,
		Title:      "TIER 5: MODERN & HD",
		ShortLabel: "TIER 5",
		Systems: []models.TargetSystem{
			models.SystemWii, models.SystemWiiU, models.SystemPS3,
			models.SystemXbox360, models.SystemSwitch,
		},
	},
}

// Badge is a human-readable capability label derived from averaged ratings.
type Badge string

const (
	BadgePerfect    Badge = "PERFECT"
	BadgeGreat      Badge = "GREAT"
	BadgePlayable   Badge = "PLAYABLE"
	BadgeStruggles  Badge = "STRUGGLES"
	BadgeUnplayable Badge = "UNPLAYABLE"
	BadgeUntested   Badge = "UNTESTED"
)

// BadgeForAverage maps a tier's average rating to its display badge using
// fixed thresholds. An average of exactly 0 means no system in the tier was
// evaluated.
func BadgeForAverage(avg float64) Badge {
	switch {
	case avg >= 4.5:
		return BadgePerfect
	case avg >= 3.5:
		return BadgeGreat
	case avg >= 2.5:
		return BadgePlayable
	case avg >= 1.5:
		return BadgeStruggles
	case avg > 0:
		return BadgeUnplayable
	default:
		return BadgeUntested
	}
}

// TierSummary describes one tier's aggregated capability for a profile.
type TierSummary struct {
	TierID  int     `json:"tier_id"`
	Label   string  `json:"label"`
	Average float64 `json:"average"`
	Badge   Badge   `json:"badge"`
}

// Aggregation is the result of reducing a profile across all tiers.
// MaxCapableTier is 0 when no tier contains a playable system.
type Aggregation struct {
	Tiers          []TierSummary `json:"tiers"`
	MaxCapableTier int           `json:"max_capable_tier"`
}

// Aggregate reduces a variant's emulation profile into per-tier badges and
// the maximum capable tier. A nil profile yields no badges and tier 0,
// rendered as an em dash upstream.
//
// Tier averages exclude N/A ratings from both numerator and denominator, so
// one Perfect among three untested systems averages 5.0, not 1.25.
//
// MaxCapableTier scans tiers in ascending order and records the last tier
// containing at least one system rated Playable or better. The scan does not
// require lower tiers to qualify: a device with one Playable Tier 3 system
// and nothing below still reports Tier 3.
// TODO: confirm with product whether the non-monotonic cap is intended.
func Aggregate(profile *models.EmulationProfile) Aggregation {
	if profile == nil {
		return Aggregation{}
	}

	agg := Aggregation{Tiers: make([]TierSummary, 0, len(SystemTiers))}
	for _, tier := range SystemTiers {
		sum, rated := 0, 0
		anyPlayable := false
		for _, sys := range tier.Systems {
			r := profile.Rating(sys)
			if score := r.Score(); score > 0 {
				sum += score
				rated++
			}
			if r.Playable() {
				anyPlayable = true
			}
		}

		avg := 0.0
		if rated > 0 {
			avg = float64(sum) / float64(rated)
		}
		agg.Tiers = append(agg.Tiers, TierSummary{
			TierID:  tier.ID,
			Label:   tier.ShortLabel,
			Average: avg,
			Badge:   BadgeForAverage(avg),
		})

		if anyPlayable {
			agg.MaxCapableTier = tier.ID
		}
	}
	return agg
}

// MaxTierLabel renders a profile's maximum capable tier for display,
// returning an em dash when the profile is missing or nothing qualifies.
func MaxTierLabel(profile *models.EmulationProfile) string {
	agg := Aggregate(profile)
	if agg.MaxCapableTier == 0 {
		return "—"
	}
	return SystemTiers[agg.MaxCapableTier-1].ShortLabel
}
