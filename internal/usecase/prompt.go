package usecase

import (
	"fmt"
	"strings"

	"github.com/roomlens/backend/internal/domain"
)

// styleDescriptors expands a style key into the visual vocabulary the
// image provider responds to. Unknown styles fall back to the style key
// itself so the prompt stays usable.
var styleDescriptors = map[string]string{
	"boho":         "bohemian style with layered natural textiles, rattan furniture, macrame accents and warm earth tones",
	"modern":       "modern style with clean lines, neutral palette, matte black metal and uncluttered surfaces",
	"scandinavian": "scandinavian style with light woods, soft whites, cozy wool textures and functional simplicity",
	"industrial":   "industrial style with exposed metal, reclaimed wood, leather seating and Edison bulb lighting",
	"japandi":      "japandi style blending japanese minimalism with scandinavian warmth, low furniture and muted tones",
}

// roomLabels turns room type keys into readable prompt text.
var roomLabels = map[string]string{
	"living_room": "living room",
	"bedroom":     "bedroom",
	"dining_room": "dining room",
	"office":      "home office",
}

// intensityDirectives describe per tier how aggressively the provider
// should alter the photo.
var intensityDirectives = map[domain.Intensity]string{
	domain.IntensityRefresh:   "Make light accent changes only; keep all furniture in place and restyle textiles, decor and small lighting.",
	domain.IntensityRedesign:  "Restyle the room's soft furnishings, rugs and lighting while keeping the major furniture silhouettes recognizable.",
	domain.IntensityTransform: "Fully redecorate the room, replacing furniture, rugs, lighting and decor.",
}

// BuildPrompt assembles the provider text prompt from style, room type and
// intensity. Pure and total: unknown keys degrade to generic wording.
func BuildPrompt(style, roomType string, intensity domain.Intensity) string {
	descriptor, ok := styleDescriptors[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		descriptor = fmt.Sprintf("%s style", strings.TrimSpace(style))
	}

	room, ok := roomLabels[strings.ToLower(strings.TrimSpace(roomType))]
	if !ok {
		room = "room"
	}

	directive := intensityDirectives[NormalizeIntensity(intensity)]

	return fmt.Sprintf(
		"Transform this %s photo into %s. %s Preserve the room's architecture, windows, doors and flooring. Photorealistic interior photography.",
		room, descriptor, directive,
	)
}
