package finder

import (
	"strings"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

// Form-factor preference tokens. "surprise" means no preference.
const (
	FormFactorSurprise = "surprise"
)

// Target-tier tokens from the "what do you mainly want to play" question.
const (
	TierToken8Bit   = "8bit"
	TierToken32Bit  = "32bit"
	TierToken2000s  = "2000s"
	TierToken6thGen = "6thgen"
	TierTokenModern = "modern"
)

// Budget band tokens.
const (
	BudgetUnder60  = "b_under_60"
	Budget60To120  = "b_60_120"
	Budget120To180 = "b_120_180"
	Budget180To300 = "b_180_300"
	Budget300Plus  = "b_300_plus"
)

// Scoring constants. Totals are unclamped sums of the three sub-scores.
const (
	formFactorMatchBonus   = 5
	formFactorMismatch     = -5
	tierRulePassBonus      = 10
	missingProfilePenalty  = -5
	noPricePenalty         = -10
	budgetWithinBonus      = 10
	budgetCheaperBonus     = 5
	budgetOverCeilingMalus = -20
)

// PreferenceAnswer is the request-scoped user input for one recommendation
// run. Empty or unrecognized tokens are treated as "no preference", never as
// validation errors; the vocabulary is expected to grow.
type PreferenceAnswer struct {
	Profile    string `json:"profile,omitempty"`
	FormFactor string `json:"form_factor_pref,omitempty"`
	TargetTier string `json:"target_tier,omitempty"`
	BudgetBand string `json:"budget_band,omitempty"`
}

// budgetBand is a half-open price range; Ceiling 0 marks the open-ended top
// band.
type budgetBand struct {
	Floor   float64
	Ceiling float64
}

var budgetBands = map[string]budgetBand{
	BudgetUnder60:  {Floor: 0, Ceiling: 60},
	Budget60To120:  {Floor: 60, Ceiling: 120},
	Budget120To180: {Floor: 120, Ceiling: 180},
	Budget180To300: {Floor: 180, Ceiling: 300},
	Budget300Plus:  {Floor: 300},
}

// tierRule decides whether one variant's emulation profile satisfies a
// requested play-target era.
type tierRule func(p *models.EmulationProfile) bool

// anyPlayable passes when at least one of the listed systems is rated
// Playable or better.
func anyPlayable(systems ...models.TargetSystem) tierRule {
	return func(p *models.EmulationProfile) bool {
		for _, sys := range systems {
			if p.Rating(sys).Playable() {
				return true
			}
		}
		return false
	}
}

// atLeastTwoPlayable passes when two or more of the listed systems are rated
// Playable or better.
func atLeastTwoPlayable(systems ...models.TargetSystem) tierRule {
	return func(p *models.EmulationProfile) bool {
		hits := 0
		for _, sys := range systems {
			if p.Rating(sys).Playable() {
				hits++
			}
		}
		return hits >= 2
	}
}

// tierRules maps a target-tier token to the rule each variant is checked
// against, keyed by representative systems for the era.
var tierRules = map[string]tierRule{
	TierToken8Bit:   anyPlayable(models.SystemSNES, models.SystemGBA),
	TierToken32Bit:  anyPlayable(models.SystemPS1, models.SystemN64),
	TierToken2000s:  anyPlayable(models.SystemPSP, models.SystemNDS),
	TierToken6thGen: atLeastTwoPlayable(models.SystemPS2, models.SystemGameCube, models.SystemXbox),
	TierTokenModern: atLeastTwoPlayable(models.SystemPS3, models.SystemXbox360, models.SystemSwitch),
}

// ScoreDevice sums the three independent sub-scores for one normalized
// device against the user's preferences. Pure and side-effect-free.
func ScoreDevice(d models.Device, prefs PreferenceAnswer) int {
	return formFactorScore(d, prefs.FormFactor) +
		tierScore(d, prefs.TargetTier) +
		budgetScore(d, prefs.BudgetBand)
}

// formFactorScore rewards an exact case-insensitive match and penalizes any
// mismatch. No preference (or "surprise me") contributes nothing.
func formFactorScore(d models.Device, pref string) int {
	if pref == "" || pref == FormFactorSurprise {
		return 0
	}
	if strings.EqualFold(string(d.FormFactor), pref) {
		return formFactorMatchBonus
	}
	return formFactorMismatch
}

// tierScore evaluates the requested tier rule against every variant of the
// device and keeps the best outcome: one sufficiently capable variant makes
// the whole device qualify. PC-class devices bypass every rule outright.
// A variant with no profile takes a fixed penalty, and a device with no
// variants at all scores the floor penalty.
func tierScore(d models.Device, tierToken string) int {
	if tierToken == "" {
		return 0
	}
	rule, ok := tierRules[tierToken]
	if !ok {
		return 0
	}

	if d.Category == models.CategoryPCGaming {
		return tierRulePassBonus
	}

	if len(d.Variants) == 0 {
		return missingProfilePenalty
	}

	best := missingProfilePenalty
	for i := range d.Variants {
		score := missingProfilePenalty
		if p := d.Variants[i].Profile; p != nil {
			if rule(p) {
				score = tierRulePassBonus
			} else {
				score = 0
			}
		}
		if score > best {
			best = score
		}
	}
	return best
}

// budgetScore compares the device's launch price to the requested band.
// Cheaper than requested is favorable (+5); blowing the ceiling costs more
// than missing data does.
func budgetScore(d models.Device, bandToken string) int {
	if bandToken == "" {
		return 0
	}
	band, ok := budgetBands[bandToken]
	if !ok {
		return 0
	}

	price := devicePrice(d)
	if price == nil {
		return noPricePenalty
	}

	switch {
	case band.Ceiling > 0 && *price > band.Ceiling:
		return budgetOverCeilingMalus
	case *price <= band.Floor:
		return budgetCheaperBonus
	default:
		return budgetWithinBonus
	}
}

// devicePrice reads the launch price off the normalized spec set, falling
// back to the default variant for devices that skipped normalization.
func devicePrice(d models.Device) *float64 {
	if d.Specs != nil && d.Specs.PriceLaunchUSD != nil {
		return d.Specs.PriceLaunchUSD
	}
	if v := d.DefaultVariant(); v != nil {
		return v.PriceLaunchUSD
	}
	return nil
}
