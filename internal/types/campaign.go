// Package types holds the shared domain types for the campaign planner.
// Kept dependency-free so every layer (catalog, gemini, planner, store, CLI)
// can import it without cycles.
package types

// Language selects the natural language for rendered on-image text.
// Generation prompts themselves are always produced in English; only the
// literal copy written onto the assets follows this setting.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// RTL reports whether the language uses a right-to-left script that
// requires letter-shaping instructions in the prompts.
func (l Language) RTL() bool {
	return l == LanguageArabic
}

// AspectRatio is a fixed output ratio for one asset, e.g. "16:9".
type AspectRatio string

const (
	RatioSquare   AspectRatio = "1:1"
	RatioWide     AspectRatio = "16:9"
	RatioPhoto    AspectRatio = "3:2"
	RatioPortrait AspectRatio = "4:5"
	RatioStory    AspectRatio = "9:16"
	RatioClassic  AspectRatio = "4:3"
	RatioBanner   AspectRatio = "3:1"
)

// AspectRatios lists every ratio an asset can be refined into.
var AspectRatios = []AspectRatio{
	RatioSquare, RatioWide, RatioPhoto, RatioPortrait,
	RatioStory, RatioClassic, RatioBanner,
}

// AssetPhase partitions the 14 templates into creative stages. It is
// purely descriptive and never changes control flow.
type AssetPhase string

const (
	PhaseIdentity AssetPhase = "identity"
	PhaseProduct  AssetPhase = "product"
	PhaseSocial   AssetPhase = "social"
)

// CampaignInputs are the user-supplied product facts for one campaign.
// Immutable once submitted.
type CampaignInputs struct {
	ProductName string   `json:"productName"`
	Description string   `json:"description"`
	Language    Language `json:"language"`
	BrandVibe   string   `json:"brandVibe,omitempty"`
}

// GeneratedAsset is one of the 14 generated prompt records. The id is a
// stable identity within a plan (0-13). Refinement replaces prompt,
// description and aspectRatio only; id, title and phase are invariant.
type GeneratedAsset struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Phase       AssetPhase  `json:"phase"`
	Prompt      string      `json:"prompt"`
	Description string      `json:"description"`
	AspectRatio AspectRatio `json:"aspectRatio"`
}

// PromptPlanResponse is the full plan for one campaign submission:
// 14 assets plus the fixed-format usage guide.
type PromptPlanResponse struct {
	Assets           []GeneratedAsset `json:"assets"`
	ConsistencyGuide string           `json:"consistencyGuide"`
}
