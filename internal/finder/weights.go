// Package finder scores the device catalog against a user's stated
// preferences and ranks the top matches. All scoring is deterministic and
// rule-based; identical inputs always produce identical output.
package finder

// Profile tokens from the finder quiz's "what best describes you" question.
const (
	ProfileNostalgia     = "nostalgia"
	ProfileCompletionist = "completionist"
	ProfilePerformance   = "performance"
	ProfileOnTheGo       = "onthego"
	ProfileGift          = "gift"
)

// WeightVector biases later comparisons toward what a user said they care
// about. Each dimension starts at 1.0 and is nudged multiplicatively.
type WeightVector struct {
	Power       float64 `json:"power"`
	Portability float64 `json:"portability"`
	Ease        float64 `json:"ease"`
	Value       float64 `json:"value"`
	Library     float64 `json:"library"`
}

// BaseWeights is the neutral vector returned for unknown profile tokens.
var BaseWeights = WeightVector{
	Power:       1.0,
	Portability: 1.0,
	Ease:        1.0,
	Value:       1.0,
	Library:     1.0,
}

// WeightsFor maps a profile token to its weight vector. Pure lookup; an
// unrecognized token returns the unmodified base vector.
//
// The vector is surfaced with finder results but is not yet multiplied into
// the flat point rules in scoring.go; the integration point is deliberately
// kept separate while product decides how far the weights should reach.
func WeightsFor(profile string) WeightVector {
	w := BaseWeights
	switch profile {
	case ProfileNostalgia:
		w.Ease *= 1.15
		w.Power *= 0.95
		w.Library *= 1.05
	case ProfileCompletionist:
		w.Library *= 1.20
		w.Value *= 1.10
		w.Power *= 1.05
	case ProfilePerformance:
		w.Power *= 1.25
		w.Ease *= 0.95
	case ProfileOnTheGo:
		w.Portability *= 1.25
		w.Power *= 0.95
	case ProfileGift:
		w.Ease *= 1.25
		w.Library *= 1.05
		w.Power *= 0.90
	}
	return w
}
