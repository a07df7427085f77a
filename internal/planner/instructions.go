package planner

import (
	"fmt"
	"strings"

	"nanomarketer/internal/types"
)

// Fixed clauses shared by plan compilation and single-asset refinement.
const (
	layoutClause = "Instruction: Before generating pixels, create a mental layout map to ensure no text overlaps with visual elements."

	groundingClause = "Grounding: Use Google Search to find realistic 2025 market trends/stats for this industry and populate the graphs with ACCURATE data points (not random numbers)."

	safeZoneClause = "Composition Rule: Keep all critical text and visual elements within the 'Safe Zone' (Center 80%). " +
		"Leave the top 15% and bottom 15% relatively empty to avoid overlapping with Instagram/TikTok UI overlays."

	avoidClause = "Avoid: [Blurry, low resolution, distorted text, extra fingers, bad anatomy, watermark, cartoonish style (unless specified), over-saturated]."

	rtlJoinClause = "Ensure all letters are connected correctly (Right-to-Left) and avoid character separation."

	ltrJoinClause = "Ensure all letters are connected correctly and avoid separation."
)

// consistencyGuide is the fixed-format closing usage guide. The text is
// intentionally Arabic regardless of language settings, matching the
// product's published workflow instructions.
const consistencyGuide = "1. انسخ أمر **تصميم الشعار (رقم 0)** ونفذه في Nano Banana أولاً.\n" +
	"2. احفظ صورة الشعار الناتجة، ثم اضغط علامة (+) وارفعها كصورة مرجعية.\n" +
	"3. الآن نفذ باقي الأوامر (من 1 إلى 13)، وسيتم دمج الشعار وألوانه تلقائياً داخل العلبة والواجهة!"

// spellingClause builds the per-template verification clause naming the
// exact literals to spell-check, with the letter-joining instruction for
// right-to-left scripts.
func spellingClause(literals []string, lang types.Language) string {
	if len(literals) == 0 {
		return ""
	}
	join := ltrJoinClause
	if lang.RTL() {
		join = rtlJoinClause
	}
	return fmt.Sprintf("Critical Text Rule: Verify the spelling of %s explicitly. %s",
		strings.Join(literals, " and "), join)
}

// renderTemplate assembles the final prompt text for one template:
// layout-map clause, aspect ratio, body with local substitutions,
// spelling guard, grounding trigger, safe zone, and the negative
// constraints boilerplate.
func renderTemplate(t AssetTemplate, fontStyle, vibe string, lang types.Language, grounded bool) string {
	var parts []string
	if layoutPlanIDs[t.ID] {
		parts = append(parts, layoutClause)
	}
	parts = append(parts, fmt.Sprintf("Aspect Ratio: %s.", t.AspectRatio))

	body := strings.ReplaceAll(t.Body, "{FONT}", fontStyle)
	body = strings.ReplaceAll(body, "{VIBE}", vibe)
	parts = append(parts, body)

	if clause := spellingClause(t.TextLiterals, lang); clause != "" {
		parts = append(parts, clause)
	}
	if grounded && groundingIDs[t.ID] {
		parts = append(parts, groundingClause)
	}
	if t.SafeZone {
		parts = append(parts, safeZoneClause)
	}
	parts = append(parts, avoidClause)
	return strings.Join(parts, " ")
}

// CompilePlanInstruction deterministically renders the complete
// instruction payload for a full 14-asset plan, plus the response schema
// the remote model is constrained to. Pure function: identical inputs
// always produce byte-identical text.
//
// inputs.Language governs on-image text and typography; appLang governs
// the language of titles and descriptions in the returned plan. Prompts
// themselves are always English for generation quality.
func CompilePlanInstruction(inputs types.CampaignInputs, appLang types.Language) (string, map[string]interface{}) {
	category := InferCategory(inputs)
	vibe := UpgradeVibe(inputs.BrandVibe, category)
	fontStyle := SelectFontStyle(inputs.Language, category)
	grounded := GroundingEligible(category)

	titleLang, exampleTitle := "English", "Logo Design"
	if appLang == types.LanguageArabic {
		titleLang, exampleTitle = "Arabic", "تصميم الشعار"
	}

	var b strings.Builder
	b.WriteString("YOU ARE an expert \"Prompt Engineer\" specializing in the Nano Banana Pro image model.\n")
	b.WriteString("YOUR GOAL is to generate a complete \"14-Asset Marketing Campaign\" for a digital product based on limited input.\n\n")

	b.WriteString("**OUTPUT RULE:** You are a Text-Based Prompt Generator ONLY.\n")
	b.WriteString("- DO NOT generate, render, or attempt to create actual images.\n")
	b.WriteString("- Your sole purpose is to write the text prompts the user will paste into the image model.\n\n")

	b.WriteString("**STEP 1: INTERNAL ANALYSIS & INFERENCE**\n")
	b.WriteString("The user provides a \"Product Name\", a \"Description\", and optionally a \"Brand Vibe\". Analyze this to INTELLIGENTLY INFER:\n")
	b.WriteString("1. **Target Audience:** Who is this product for?\n")
	b.WriteString("2. **The Main Problem (Pain Point):** What issue is the user solving?\n")
	b.WriteString("3. **The Solution (Result):** What is the desired outcome?\n")
	b.WriteString("4. **Visual Metaphor:** A simple visual standing for the result (e.g. growth -> leaf/arrow).\n")
	b.WriteString("5. **Brand Colors:** Derive from the vibe, or pick a fitting professional palette.\n\n")

	b.WriteString("**DESIGN THEME (already selected, use as-is for every prompt below):**\n")
	fmt.Fprintf(&b, "- Product category: %s\n", category)
	fmt.Fprintf(&b, "- Upgraded Brand Vibe: %s\n", vibe)
	fmt.Fprintf(&b, "- Selected Font Style: %s\n\n", fontStyle)

	b.WriteString("**STEP 2: VISUAL COPYWRITING (SMART TEXT EXTRACTION)**\n")
	fmt.Fprintf(&b, "- **Hook A (The Main Benefit):** A short, punchy catchphrase (2-4 words) summarizing the result. MUST be written in the \"Preferred Language for Design Text\" (%s).\n", inputs.Language)
	fmt.Fprintf(&b, "- **Hook B (The Action/Urgency):** A short Call-To-Action (2-3 words). MUST be written in the \"Preferred Language for Design Text\" (%s).\n", inputs.Language)
	b.WriteString("Any text string intended to be written ON the image MUST be in that language; the prompts themselves stay in English.\n\n")

	if inputs.Language.RTL() {
		b.WriteString("**TEXT RENDERING GUARD (ARABIC):**\n")
		b.WriteString("Every on-image text string is Arabic. Follow each template's Critical Text Rule; letters must stay connected Right-to-Left with no character separation.\n\n")
	}

	b.WriteString("**THE ASSET TEMPLATES** (fill the bracketed values with your inferred data and hooks; keep every fixed rule):\n\n")
	for _, t := range Templates {
		fmt.Fprintf(&b, "%d. **%s** (phase: %s): \"%s\"\n\n",
			t.ID, t.Title, t.Phase, renderTemplate(t, fontStyle, vibe, inputs.Language, grounded))
	}

	b.WriteString("**OUTPUT FORMAT:**\n")
	fmt.Fprintf(&b, "- **Titles (`title`)**: MUST be in **%s** (e.g., \"%s\").\n", titleLang, exampleTitle)
	b.WriteString("- **Phases (`phase`)**: MUST be strictly 'identity', 'product', or 'social', matching the template catalog above.\n")
	fmt.Fprintf(&b, "- **Descriptions (`description`)**: MUST be in **%s**.\n", titleLang)
	b.WriteString("- **Prompts (`prompt`)**: MUST be in **English** (for best generation quality).\n")
	b.WriteString("- Return all 14 assets with ids 0 through 13, in order.\n\n")

	b.WriteString("**FOOTER CONTENT:**\n")
	b.WriteString("For the `consistencyGuide` field, strictly output this text:\n")
	fmt.Fprintf(&b, "\"%s\"\n", consistencyGuide)

	return b.String(), PlanResponseSchema()
}

// complexAssetWords marks assets whose composition needs the layout-map
// clause during refinement; matched against the recorded title, not
// re-derived from the product inputs.
var complexAssetWords = []string{"packaging", "dashboard", "bundle", "notification", "roadmap"}

// dataAssetWords marks assets that show data visualizations and may need
// the grounding clause during refinement.
var dataAssetWords = []string{"dashboard", "before"}

func titleMatchesAny(title string, words []string) bool {
	lower := strings.ToLower(title)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// CompileRefineInstruction renders the narrower instruction payload for
// re-deriving a single asset under a new aspect ratio, reapplying the
// typography, spelling-guard, grounding, and layout-planning rules scoped
// to the one asset's nature (judged from its recorded title and phase).
// Returns the single-object response schema alongside.
func CompileRefineInstruction(asset types.GeneratedAsset, inputs types.CampaignInputs, newRatio types.AspectRatio) (string, map[string]interface{}) {
	category := InferCategory(inputs)
	fontStyle := SelectFontStyle(inputs.Language, category)

	var b strings.Builder
	b.WriteString("YOU ARE an expert \"Prompt Engineer\".\n")
	b.WriteString("TASK: Rewrite a specific image generation prompt to match a NEW Aspect Ratio while maintaining the original creative intent, style, and text rendering rules.\n\n")
	fmt.Fprintf(&b, "TARGET ASPECT RATIO: %s\n\n", newRatio)

	b.WriteString("TYPOGRAPHY & SPELLING GUARD:\n")
	fmt.Fprintf(&b, "- On-image text MUST be in the \"Preferred Language for Design Text\" (%s).\n", inputs.Language)
	fmt.Fprintf(&b, "- Font Style: %s.\n", fontStyle)
	if inputs.Language.RTL() {
		fmt.Fprintf(&b, "- Critical Text Rule: Verify the Arabic spelling explicitly. %s\n", rtlJoinClause)
	} else {
		fmt.Fprintf(&b, "- Critical Text Rule: Verify the spelling explicitly. %s\n", ltrJoinClause)
	}
	b.WriteString("\n")

	b.WriteString("INTELLIGENCE LAYERS:\n")
	if titleMatchesAny(asset.Title, complexAssetWords) {
		fmt.Fprintf(&b, "- PREPEND to the prompt: \"%s\"\n", layoutClause)
	}
	if GroundingEligible(category) && titleMatchesAny(asset.Title, dataAssetWords) {
		fmt.Fprintf(&b, "- The prompt MUST include: \"%s\"\n", groundingClause)
	}
	b.WriteString("\n")

	b.WriteString("COMPOSITION RULES:\n")
	if asset.Phase == types.PhaseSocial {
		fmt.Fprintf(&b, "- %s\n", safeZoneClause)
	}
	fmt.Fprintf(&b, "- Always include this parameter at the end: %s\n\n", avoidClause)

	b.WriteString("OUTPUT: Return ONLY the new JSON object for this single asset.\n")

	return b.String(), AssetResponseSchema()
}
