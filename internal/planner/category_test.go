package planner

import (
	"testing"

	"nanomarketer/internal/types"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name   string
		inputs types.CampaignInputs
		want   ProductCategory
	}{
		{
			name:   "crypto product is finance",
			inputs: types.CampaignInputs{ProductName: "CoinPilot", Description: "A crypto trading signals app"},
			want:   CategoryFinance,
		},
		{
			name:   "marketing course is finance, not education",
			inputs: types.CampaignInputs{ProductName: "Growth Academy", Description: "A marketing course for founders"},
			want:   CategoryFinance,
		},
		{
			name:   "saas product is technology",
			inputs: types.CampaignInputs{ProductName: "FlowDesk", Description: "A SaaS productivity platform"},
			want:   CategoryTechnology,
		},
		{
			name:   "yoga program is wellness",
			inputs: types.CampaignInputs{ProductName: "CalmFlow", Description: "Daily yoga and meditation program"},
			want:   CategoryWellness,
		},
		{
			name:   "ebook is education",
			inputs: types.CampaignInputs{ProductName: "Sourdough Secrets", Description: "An ebook about home baking"},
			want:   CategoryEducation,
		},
		{
			name:   "ai matches as a whole word only",
			inputs: types.CampaignInputs{ProductName: "Sunrise", Description: "A daily gratitude journal"},
			want:   CategoryGeneral,
		},
		{
			name:   "standalone ai is technology",
			inputs: types.CampaignInputs{ProductName: "Scribe", Description: "An AI writing assistant"},
			want:   CategoryTechnology,
		},
		{
			name:   "keyword in vibe counts",
			inputs: types.CampaignInputs{ProductName: "Aura", Description: "Daily planner", BrandVibe: "fitness energy"},
			want:   CategoryWellness,
		},
		{
			name:   "no keyword hit is general",
			inputs: types.CampaignInputs{ProductName: "Sunset Candles", Description: "Hand-poured scented candles"},
			want:   CategoryGeneral,
		},
		{
			name:   "case insensitive",
			inputs: types.CampaignInputs{ProductName: "BITCOIN BLUEPRINT", Description: "..."},
			want:   CategoryFinance,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferCategory(tt.inputs); got != tt.want {
				t.Errorf("InferCategory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpgradeVibe(t *testing.T) {
	tests := []struct {
		name     string
		vibe     string
		category ProductCategory
		want     string
	}{
		{
			name:     "vibe plus category keywords",
			vibe:     "Dark and edgy",
			category: CategoryTechnology,
			want:     "Dark and edgy, Glassmorphism, Isometric 3D, Neon Accents, Dark Mode, Volumetric Lighting, Ultra-Detailed",
		},
		{
			name:     "empty vibe yields keywords only",
			vibe:     "",
			category: CategoryFinance,
			want:     "High-Contrast, Bold Typography, Gold & Black, Luxury, Dynamic Motion, Cinematic Lighting",
		},
		{
			name:     "general keeps vibe untouched",
			vibe:     "Playful pastel",
			category: CategoryGeneral,
			want:     "Playful pastel",
		},
		{
			name:     "general with empty vibe gets baseline",
			vibe:     "",
			category: CategoryGeneral,
			want:     "Modern, professional, high quality",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpgradeVibe(tt.vibe, tt.category); got != tt.want {
				t.Errorf("UpgradeVibe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectFontStyle(t *testing.T) {
	tests := []struct {
		lang     types.Language
		category ProductCategory
		want     string
	}{
		{types.LanguageArabic, CategoryTechnology, "Bold Geometric Arabic Font (Kufic Style)"},
		{types.LanguageArabic, CategoryFinance, "Elegant Arabic Serif or Modern Calligraphy"},
		{types.LanguageArabic, CategoryWellness, "Clean Modern Arabic Sans-Serif (like Cairo/Dubai Font)"},
		{types.LanguageArabic, CategoryGeneral, "Clean Modern Arabic Sans-Serif (like Cairo/Dubai Font)"},
		{types.LanguageEnglish, CategoryFinance, "Elegant Serif"},
		{types.LanguageEnglish, CategoryTechnology, "Bold Modern Sans-Serif"},
		{types.LanguageEnglish, CategoryGeneral, "Bold Modern Sans-Serif"},
	}
	for _, tt := range tests {
		if got := SelectFontStyle(tt.lang, tt.category); got != tt.want {
			t.Errorf("SelectFontStyle(%s, %s) = %q, want %q", tt.lang, tt.category, got, tt.want)
		}
	}
}

func TestGroundingEligible(t *testing.T) {
	if !GroundingEligible(CategoryFinance) {
		t.Error("finance should be grounding-eligible")
	}
	for _, c := range []ProductCategory{CategoryTechnology, CategoryWellness, CategoryEducation, CategoryGeneral} {
		if GroundingEligible(c) {
			t.Errorf("%s should not be grounding-eligible", c)
		}
	}
}
