package usecase

import (
	"strings"
	"testing"

	"github.com/roomlens/backend/internal/domain"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		name       string
		intensity  domain.Intensity
		wantTarget int
		wantLabel  string
	}{
		{"refresh", domain.IntensityRefresh, 8, "Light Refresh"},
		{"redesign", domain.IntensityRedesign, 10, "Redesign"},
		{"transform", domain.IntensityTransform, 12, "Full Transform"},
		{"unknown falls back to redesign", domain.Intensity("extreme"), 10, "Redesign"},
		{"empty falls back to redesign", domain.Intensity(""), 10, "Redesign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ProfileFor(tt.intensity)
			if profile.TargetItemCount != tt.wantTarget {
				t.Errorf("TargetItemCount = %d, want %d", profile.TargetItemCount, tt.wantTarget)
			}
			if profile.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", profile.Label, tt.wantLabel)
			}
			if len(profile.FocusAreas) == 0 {
				t.Error("FocusAreas should not be empty")
			}
		})
	}
}

func TestNormalizeIntensity(t *testing.T) {
	if got := NormalizeIntensity(domain.IntensityRefresh); got != domain.IntensityRefresh {
		t.Errorf("NormalizeIntensity(refresh) = %q", got)
	}
	if got := NormalizeIntensity(domain.Intensity("chaotic")); got != domain.IntensityRedesign {
		t.Errorf("NormalizeIntensity(chaotic) = %q, want redesign", got)
	}
}

func TestStrengthFor(t *testing.T) {
	tests := []struct {
		intensity domain.Intensity
		want      float64
	}{
		{domain.IntensityRefresh, 0.35},
		{domain.IntensityRedesign, 0.55},
		{domain.IntensityTransform, 0.80},
		{domain.Intensity("extreme"), 0.55},
	}

	for _, tt := range tests {
		t.Run(string(tt.intensity), func(t *testing.T) {
			if got := StrengthFor(tt.intensity); got != tt.want {
				t.Errorf("StrengthFor(%q) = %v, want %v", tt.intensity, got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Run("known style and room", func(t *testing.T) {
		prompt := BuildPrompt("boho", "living_room", domain.IntensityRedesign)
		if !strings.Contains(prompt, "bohemian") {
			t.Errorf("prompt missing style descriptor: %q", prompt)
		}
		if !strings.Contains(prompt, "living room") {
			t.Errorf("prompt missing room label: %q", prompt)
		}
	})

	t.Run("unknown style degrades gracefully", func(t *testing.T) {
		prompt := BuildPrompt("cyberpunk", "garage", domain.Intensity("extreme"))
		if !strings.Contains(prompt, "cyberpunk style") {
			t.Errorf("prompt should carry the raw style key: %q", prompt)
		}
		if !strings.Contains(prompt, "room") {
			t.Errorf("prompt should fall back to a generic room label: %q", prompt)
		}
	})

	t.Run("intensity changes the directive", func(t *testing.T) {
		refresh := BuildPrompt("boho", "living_room", domain.IntensityRefresh)
		transform := BuildPrompt("boho", "living_room", domain.IntensityTransform)
		if refresh == transform {
			t.Error("refresh and transform prompts should differ")
		}
	})
}
