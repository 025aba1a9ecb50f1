package model

// PackagingType identifies a packaging preset.
type PackagingType string

const (
	PackagingNone    PackagingType = "none"
	PackagingCarton  PackagingType = "carton"
	PackagingPalletA PackagingType = "pallet_a"
	PackagingPalletB PackagingType = "pallet_b"
	PackagingPalletC PackagingType = "pallet_c"
	PackagingPalletD PackagingType = "pallet_d"
	PackagingCustom  PackagingType = "custom"
)

// PackagingProfile supplies default outer dimensions and tare for one packaging unit.
//
// @Description Packaging preset with outer dimensions in millimeters and tare per unit
type PackagingProfile struct {
	Type     PackagingType `json:"type" example:"pallet_d"`
	Name     string        `json:"name" example:"Pallet D (910x1070x610)"`
	LengthMM float64       `json:"length_mm" example:"910"`
	WidthMM  float64       `json:"width_mm" example:"1070"`
	HeightMM float64       `json:"height_mm" example:"610"`
	TareKg   float64       `json:"tare_kg" example:"15"`
	// MultiPiece profiles hold many pieces per unit and scale volume by package count.
	MultiPiece bool `json:"multi_piece" example:"true"`
} // @name PackagingProfile

// HasDimensions reports whether the profile carries preset outer dimensions.
func (p PackagingProfile) HasDimensions() bool {
	return p.LengthMM > 0 && p.WidthMM > 0 && p.HeightMM > 0
}

// DefaultScaling returns the scaling mode implied by the profile. Custom packaging has none
// and the caller must declare it.
func (p PackagingProfile) DefaultScaling() (ScalingMode, bool) {
	switch {
	case p.Type == PackagingCustom:
		return "", false
	case p.MultiPiece:
		return ScalePerPackage, true
	default:
		return ScalePerPiece, true
	}
}

var packagingProfiles = []PackagingProfile{
	{Type: PackagingNone, Name: "No packaging"},
	{Type: PackagingCarton, Name: "Standard carton (600x400x400)", LengthMM: 600, WidthMM: 400, HeightMM: 400, TareKg: 1.5, MultiPiece: true},
	{Type: PackagingPalletA, Name: "Pallet A (1100x1100x1000)", LengthMM: 1100, WidthMM: 1100, HeightMM: 1000, TareKg: 25, MultiPiece: true},
	{Type: PackagingPalletB, Name: "Pallet B (1200x1000x1000)", LengthMM: 1200, WidthMM: 1000, HeightMM: 1000, TareKg: 25, MultiPiece: true},
	{Type: PackagingPalletC, Name: "Pallet C (1200x800x1000)", LengthMM: 1200, WidthMM: 800, HeightMM: 1000, TareKg: 20, MultiPiece: true},
	{Type: PackagingPalletD, Name: "Pallet D (910x1070x610)", LengthMM: 910, WidthMM: 1070, HeightMM: 610, TareKg: 15, MultiPiece: true},
	{Type: PackagingCustom, Name: "Custom packaging"},
}

// PackagingProfiles returns a copy of all presets in display order.
func PackagingProfiles() []PackagingProfile {
	out := make([]PackagingProfile, len(packagingProfiles))
	copy(out, packagingProfiles)
	return out
}

// LookupPackaging returns the preset for t.
func LookupPackaging(t PackagingType) (PackagingProfile, bool) {
	for _, p := range packagingProfiles {
		if p.Type == t {
			return p, true
		}
	}
	return PackagingProfile{}, false
}
