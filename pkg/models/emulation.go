package models

// TargetSystem is a closed enumeration of the historical game platforms a
// device can be rated against. Keying profile ratings by this type (instead
// of free-form strings) keeps rating lookups compile-checked.
type TargetSystem string

const (
	// Tier 1: Classic 2D.
	SystemNES          TargetSystem = "nes"
	SystemSNES         TargetSystem = "snes"
	SystemMasterSystem TargetSystem = "master_system"
	SystemGenesis      TargetSystem = "genesis"
	SystemGameBoy      TargetSystem = "gb"
	SystemGameBoyColor TargetSystem = "gbc"
	SystemGBA          TargetSystem = "gba"

	// Tier 2: Early 3D.
	SystemPS1       TargetSystem = "ps1"
	SystemN64       TargetSystem = "n64"
	SystemSaturn    TargetSystem = "saturn"
	SystemNDS       TargetSystem = "nds"
	SystemDreamcast TargetSystem = "dreamcast"

	// Tier 3: Advanced handhelds.
	SystemPSP  TargetSystem = "psp"
	System3DS  TargetSystem = "3ds"
	SystemVita TargetSystem = "vita"

	// Tier 4: Classic home.
	SystemPS2      TargetSystem = "ps2"
	SystemGameCube TargetSystem = "gamecube"
	SystemXbox     TargetSystem = "xbox"

	// Tier 5: Modern & HD.
	SystemWii     TargetSystem = "wii"
	SystemWiiU    TargetSystem = "wii_u"
	SystemPS3     TargetSystem = "ps3"
	SystemXbox360 TargetSystem = "xbox_360"
	SystemSwitch  TargetSystem = "switch"
)

// Rating is an ordinal playability verdict for one target system.
type Rating string

const (
	RatingPerfect    Rating = "Perfect"
	RatingGreat      Rating = "Great"
	RatingPlayable   Rating = "Playable"
	RatingStruggles  Rating = "Struggles"
	RatingUnplayable Rating = "Unplayable"
	RatingNA         Rating = "N/A"
)

// ratingScores maps rating tokens to their ordinal values. Unrecognized
// tokens score 0, the same as N/A, and are never an error.
var ratingScores = map[Rating]int{
	RatingPerfect:    5,
	RatingGreat:      4,
	RatingPlayable:   3,
	RatingStruggles:  2,
	RatingUnplayable: 1,
	RatingNA:         0,
}

// Score returns the ordinal value of a rating: Perfect 5 down to
// Unplayable 1, with N/A and anything unrecognized scoring 0.
func (r Rating) Score() int {
	return ratingScores[r]
}

// Playable reports whether the rating is Playable or better.
func (r Rating) Playable() bool {
	return r.Score() >= ratingScores[RatingPlayable]
}
