package usecase

import "github.com/roomlens/backend/internal/domain"

// Transformation strength passed to the image provider per intensity tier.
const (
	strengthRefresh   = 0.35
	strengthRedesign  = 0.55
	strengthTransform = 0.80
)

// intensityProfiles maps each recognized intensity to exactly one profile.
// TargetItemCount bounds the final recommendation list length.
var intensityProfiles = map[domain.Intensity]domain.IntensityProfile{
	domain.IntensityRefresh: {
		Label:           "Light Refresh",
		TargetItemCount: 8,
		FocusAreas: []domain.Category{
			domain.CategoryTextiles,
			domain.CategoryDecor,
			domain.CategoryLightingAccent,
		},
	},
	domain.IntensityRedesign: {
		Label:           "Redesign",
		TargetItemCount: 10,
		FocusAreas: []domain.Category{
			domain.CategoryTextiles,
			domain.CategoryDecor,
			domain.CategoryRug,
			domain.CategoryLightingAccent,
			domain.CategoryTableSmall,
			domain.CategoryLightingMajor,
		},
	},
	domain.IntensityTransform: {
		Label:           "Full Transform",
		TargetItemCount: 12,
		FocusAreas: []domain.Category{
			domain.CategorySeatingMajor,
			domain.CategorySeatingAccent,
			domain.CategoryRug,
			domain.CategoryTable,
			domain.CategoryTableSmall,
			domain.CategoryLightingMajor,
			domain.CategoryLightingAccent,
			domain.CategoryDecor,
			domain.CategoryTextiles,
		},
	},
}

// NormalizeIntensity maps unrecognized intensity values onto the redesign
// tier so every caller-supplied value resolves to a known profile.
func NormalizeIntensity(intensity domain.Intensity) domain.Intensity {
	if _, ok := intensityProfiles[intensity]; !ok {
		return domain.IntensityRedesign
	}
	return intensity
}

// ProfileFor returns the intensity profile for the given tier. Unknown
// intensities fall back to the redesign profile; the function is total.
func ProfileFor(intensity domain.Intensity) domain.IntensityProfile {
	return intensityProfiles[NormalizeIntensity(intensity)]
}

// StrengthFor maps an intensity tier to the provider transformation
// strength scalar. Unknown intensities use the redesign strength.
func StrengthFor(intensity domain.Intensity) float64 {
	switch NormalizeIntensity(intensity) {
	case domain.IntensityRefresh:
		return strengthRefresh
	case domain.IntensityTransform:
		return strengthTransform
	default:
		return strengthRedesign
	}
}
