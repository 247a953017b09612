package finder

import (
	"sort"

	"github.com/iDarcky/retrocircuit/pkg/models"
)

// topN is the number of recommendations shown to the user.
const topN = 3

// scoredCandidate pairs a device with its total score during ranking.
// The score never leaves this package.
type scoredCandidate struct {
	device models.Device
	score  int
}

// Rank scores every device against the preferences, orders candidates by
// total score descending with release year breaking ties (newer wins), and
// projects the top three into MatchResults. Catalogs with fewer than three
// devices return fewer results.
func Rank(devices []models.Device, prefs PreferenceAnswer) []models.MatchResult {
	candidates := make([]scoredCandidate, 0, len(devices))
	for i := range devices {
		candidates = append(candidates, scoredCandidate{
			device: devices[i],
			score:  ScoreDevice(devices[i], prefs),
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].device.ReleaseYear > candidates[b].device.ReleaseYear
	})

	n := topN
	if len(candidates) < n {
		n = len(candidates)
	}

	results := make([]models.MatchResult, 0, n)
	for _, c := range candidates[:n] {
		results = append(results, project(c.device, prefs))
	}
	return results
}

// project builds the caller-facing MatchResult, with the internal score
// stripped and human-readable reasons attached.
func project(d models.Device, prefs PreferenceAnswer) models.MatchResult {
	r := models.MatchResult{
		DeviceID:     d.ID,
		Name:         d.Name,
		Slug:         d.Slug,
		ImageURL:     d.ImageURL,
		Manufacturer: d.ManufacturerName,
		ReleaseYear:  d.ReleaseYear,
		PriceUSD:     devicePrice(d),
		Reasons:      reasonsFor(d, prefs),
	}
	if d.Category == models.CategoryPCGaming {
		r.Badge = "PC-CLASS"
	}
	return r
}

// reasonsFor assembles short rationale lines from the sub-scores that
// contributed positively. Deterministic string assembly, no generation.
func reasonsFor(d models.Device, prefs PreferenceAnswer) []string {
	var reasons []string
	if formFactorScore(d, prefs.FormFactor) > 0 {
		reasons = append(reasons, "Matches your preferred form factor")
	}
	if tierScore(d, prefs.TargetTier) > 0 {
		reasons = append(reasons, "Handles the era you want to play")
	}
	switch budgetScore(d, prefs.BudgetBand) {
	case budgetWithinBonus:
		reasons = append(reasons, "Inside your budget")
	case budgetCheaperBonus:
		reasons = append(reasons, "Cheaper than your budget")
	}
	return reasons
}
