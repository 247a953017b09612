package models

// FormFactorIcon maps a FormFactor to its icon identifier.
// Identifiers use Lucide icon names (https://lucide.dev) for
// compatibility with the web frontend. Used as the display fallback
// for devices that have no image of their own.
var FormFactorIcon = map[FormFactor]string{
	FormFactorHorizontal: "gamepad-2",
	FormFactorVertical:   "smartphone",
	FormFactorClamshell:  "laptop",
	FormFactorHybrid:     "tablet",
	FormFactorHome:       "tv",
	FormFactorMicro:      "cpu",
	FormFactorUnknown:    "help-circle",
}

// Icon returns the icon identifier for a FormFactor.
// Returns "help-circle" for unrecognised form factors.
func (f FormFactor) Icon() string {
	if icon, ok := FormFactorIcon[f]; ok {
		return icon
	}
	return FormFactorIcon[FormFactorUnknown]
}
