package planner

import (
	"strings"

	"nanomarketer/internal/types"
)

// ProductCategory is the locally inferred product family. It gates the
// brand-vibe upgrade, typography selection, and the grounding clause.
// The remote model still infers the finer-grained audience/problem/
// solution on its own.
type ProductCategory string

const (
	CategoryFinance    ProductCategory = "finance"
	CategoryTechnology ProductCategory = "technology"
	CategoryWellness   ProductCategory = "wellness"
	CategoryEducation  ProductCategory = "education"
	CategoryGeneral    ProductCategory = "general"
)

// categoryKeywords is checked in order; the first family with a keyword
// hit wins. Finance is first so that e.g. a "crypto trading app" gets the
// grounding clause rather than the technology styling alone.
var categoryKeywords = []struct {
	category ProductCategory
	words    []string
}{
	{CategoryFinance, []string{
		"finance", "financial", "money", "invest", "trading", "trader",
		"crypto", "bitcoin", "marketing", "business", "sales", "profit",
		"wealth", "ecommerce", "e-commerce", "dropship",
	}},
	{CategoryTechnology, []string{
		"saas", "software", "app", "tech", "ai", "platform", "api",
		"automation", "developer", "code", "startup", "tool",
	}},
	{CategoryWellness, []string{
		"health", "wellness", "yoga", "fitness", "meditation", "nutrition",
		"mindful", "diet", "sleep", "therapy",
	}},
	{CategoryEducation, []string{
		"course", "education", "learn", "learning", "ebook", "e-book",
		"training", "tutorial", "academy", "bootcamp", "class", "teacher",
	}},
}

// InferCategory matches the campaign inputs against the keyword tables.
// Deterministic: fixed family order, first hit wins, CategoryGeneral when
// nothing matches. Longer keywords match as substrings so stems hit
// ("invest" catches "investing"); keywords of 1-2 letters would false-hit
// inside ordinary words ("ai" inside "daily") and match whole words only.
func InferCategory(inputs types.CampaignInputs) ProductCategory {
	haystack := strings.ToLower(inputs.ProductName + " " + inputs.Description + " " + inputs.BrandVibe)
	padded := " " + haystack + " "
	for _, family := range categoryKeywords {
		for _, word := range family.words {
			if len(word) <= 2 {
				if strings.Contains(padded, " "+word+" ") {
					return family.category
				}
				continue
			}
			if strings.Contains(haystack, word) {
				return family.category
			}
		}
	}
	return CategoryGeneral
}

// styleKeywords is the auto-art-director upgrade: fixed keyword sets
// appended to the user's raw brand vibe per category. Unmatched
// categories keep the vibe unmodified.
var styleKeywords = map[ProductCategory]string{
	CategoryTechnology: "Glassmorphism, Isometric 3D, Neon Accents, Dark Mode, Volumetric Lighting, Ultra-Detailed",
	CategoryWellness:   "Minimalist, Zen, Soft Pastel Tones, Natural Sunlight, Organic Shapes, Biophilic Design",
	CategoryFinance:    "High-Contrast, Bold Typography, Gold & Black, Luxury, Dynamic Motion, Cinematic Lighting",
	CategoryEducation:  "Clean, Trustworthy, Blue & White, Structured Layout, High-Resolution",
}

// UpgradeVibe appends the category's style keyword set to the raw brand
// vibe. An empty vibe yields just the keyword set; a general category
// keeps the vibe as-is.
func UpgradeVibe(vibe string, category ProductCategory) string {
	keywords, ok := styleKeywords[category]
	if !ok {
		if vibe == "" {
			return "Modern, professional, high quality"
		}
		return vibe
	}
	if vibe == "" {
		return keywords
	}
	return vibe + ", " + keywords
}

// Typography tables, keyed by category. Arabic selection follows the
// script's shaping requirements; the default row covers every category
// not listed.
var arabicFonts = map[ProductCategory]string{
	CategoryTechnology: "Bold Geometric Arabic Font (Kufic Style)",
	CategoryFinance:    "Elegant Arabic Serif or Modern Calligraphy",
}

const arabicFontDefault = "Clean Modern Arabic Sans-Serif (like Cairo/Dubai Font)"

var latinFonts = map[ProductCategory]string{
	CategoryFinance: "Elegant Serif",
}

const latinFontDefault = "Bold Modern Sans-Serif"

// SelectFontStyle picks the font-style descriptor for the design-text
// language and inferred category.
func SelectFontStyle(lang types.Language, category ProductCategory) string {
	if lang.RTL() {
		if font, ok := arabicFonts[category]; ok {
			return font
		}
		return arabicFontDefault
	}
	if font, ok := latinFonts[category]; ok {
		return font
	}
	return latinFontDefault
}

// GroundingEligible reports whether the category should pull real current
// market data into data-visualization assets.
func GroundingEligible(category ProductCategory) bool {
	return category == CategoryFinance
}
