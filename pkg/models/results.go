package models

// MatchResult is a ranked recommendation projection returned to callers.
// The internal total score used for ordering is stripped before results
// leave the ranker; callers only see the order, badges, and reasons.
type MatchResult struct {
	DeviceID     string   `json:"device_id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	ImageURL     string   `json:"image_url,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	ReleaseYear  int      `json:"release_year,omitempty"`
	PriceUSD     *float64 `json:"price_launch_usd,omitempty"`

	Badge   string   `json:"badge,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
}

// Winner tags the outcome of one comparison point.
type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "Tie"
)

// ComparisonPoint is one feature-level entry in a head-to-head verdict.
// AScore and BScore are 0-100 visual magnitudes for rendering bars.
type ComparisonPoint struct {
	Feature string `json:"feature"`
	AValue  string `json:"a_value"`
	BValue  string `json:"b_value"`
	Winner  Winner `json:"winner"`
	AScore  int    `json:"a_score"`
	BScore  int    `json:"b_score"`
}

// ComparisonResult is a structured head-to-head verdict between two devices.
type ComparisonResult struct {
	DeviceA      string            `json:"device_a"`
	DeviceB      string            `json:"device_b"`
	DeviceAImage string            `json:"device_a_image,omitempty"`
	DeviceBImage string            `json:"device_b_image,omitempty"`
	Summary      string            `json:"summary,omitempty"`
	Points       []ComparisonPoint `json:"points"`
}
