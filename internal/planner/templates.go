package planner

import "nanomarketer/internal/types"

// AssetTemplate is one fixed generation-policy fragment. The catalog is
// read-only; bracketed markers like [Product Name] are filled by the
// remote model, while {FONT} and {VIBE} are substituted locally at
// compile time.
type AssetTemplate struct {
	ID          int
	Title       string
	Phase       types.AssetPhase
	AspectRatio types.AspectRatio

	// Body is the role/task framing of the template.
	Body string

	// TextLiterals names the literal strings rendered on the image that
	// must get the spelling-verification clause. Empty means the template
	// renders no guarded text.
	TextLiterals []string

	// SafeZone marks social assets whose text must stay clear of
	// platform UI overlays.
	SafeZone bool
}

// layoutPlanIDs marks templates that get the "plan layout before
// generating" clause prepended.
var layoutPlanIDs = map[int]bool{1: true, 2: true, 3: true, 10: true, 11: true}

// groundingIDs marks templates eligible for the real-data grounding
// clause when the inferred category warrants it.
var groundingIDs = map[int]bool{2: true, 4: true}

// Templates is the fixed catalog of all 14 assets, ids 0-13.
var Templates = []AssetTemplate{
	{
		ID: 0, Title: "Brand Logo Identity", Phase: types.PhaseIdentity, AspectRatio: types.RatioSquare,
		Body: "Role: Senior Brand Identity Designer. Task: Design a modern, professional vector logo for a brand named '[Product Name]'. " +
			"Style: Minimalist, Flat Vector Art, on a clean White Background. " +
			"Visual Elements: Combine a {FONT} for the text with a simple icon representing '[Visual Metaphor]'. " +
			"Colors: [Brand Colors]. Technical: Scalable vector graphics style, no shading.",
	},
	{
		ID: 1, Title: "3D Packaging (Hero Image)", Phase: types.PhaseProduct, AspectRatio: types.RatioWide,
		Body: "Role: Expert 3D Packaging Designer. Task: Create a premium 3D software box for '[Product Name]'. " +
			"Text Rendering: Write '[Product Name]' prominently in {FONT}, and the subtitle '[Hook A]' below it. " +
			"Style: {VIBE}. Colors: [Brand Colors].",
		TextLiterals: []string{"'[Product Name]'", "'[Hook A]'"},
	},
	{
		ID: 2, Title: "Dashboard Mockup", Phase: types.PhaseProduct, AspectRatio: types.RatioWide,
		Body: "Role: UI/UX Designer. Task: High-fidelity laptop screen mockup showing the dashboard. " +
			"Text Rendering: Dashboard header says '[Hook A]' in {FONT}. " +
			"Style: {VIBE}. Logic: Use realistic data visualization.",
		TextLiterals: []string{"'[Hook A]'"},
	},
	{
		ID: 3, Title: "Bundle Stack", Phase: types.PhaseProduct, AspectRatio: types.RatioWide,
		Body: "Role: Product Photographer. Task: A 'Bundle Stack' image showing multiple devices (Laptop, Tablet, Phone) " +
			"displaying '[Product Name]' content simultaneously. " +
			"Visual Unity: All screens show the same [Brand Colors] identity. Style: {VIBE}.",
	},
	{
		ID: 4, Title: "Before & After Infographic", Phase: types.PhaseProduct, AspectRatio: types.RatioPhoto,
		Body: "Role: Infographic Illustrator. Task: Split-screen comparison. " +
			"Left Side (Before): A stressed character dealing with '[Problem]' in dull colors. " +
			"Right Side (After): A happy character achieving '[Solution]' using the product, with bright [Brand Colors]. " +
			"Connection: A glowing arrow labeled 'The Solution' (Translated).",
	},
	{
		ID: 5, Title: "Customer Review Card", Phase: types.PhaseProduct, AspectRatio: types.RatioSquare,
		Body: "Task: Design a premium 3D Glass Customer Review Card. Content: 5 Gold Stars. " +
			"Text Rendering: Write a short rave review about '[Product Name]' in {FONT}. " +
			"Style: Frosted glass effect with [Brand Colors] glow. Vibe: Trustworthy and high-end.",
		TextLiterals: []string{"the review text"},
	},
	{
		ID: 6, Title: "Lifestyle Context Ad", Phase: types.PhaseProduct, AspectRatio: types.RatioPortrait,
		Body: "Task: Lifestyle Photography. Scene: A modern, productive workspace. " +
			"Subject: A computer screen displaying the '[Product Name]' interface clearly. " +
			"Atmosphere: Warm, professional, inviting. Lighting: Natural sunlight.",
	},
	{
		ID: 7, Title: "Carousel Cover", Phase: types.PhaseSocial, AspectRatio: types.RatioPortrait,
		Body: "Role: Social Media Designer. Task: Instagram Carousel Cover. " +
			"Text Rendering: Main Headline '[Hook A]' in the center using {FONT}. " +
			"Style: {VIBE} with a 3D icon representing the topic.",
		TextLiterals: []string{"'[Hook A]'"},
		SafeZone:     true,
	},
	{
		ID: 8, Title: "Flash Sale Poster", Phase: types.PhaseSocial, AspectRatio: types.RatioSquare,
		Body: "Task: Flash Sale Design. Text Rendering: Huge '50% OFF' and a CTA Button saying '[Hook B]' in {FONT}. " +
			"Background: Dynamic shapes in [Brand Colors]. Vibe: Urgent, Limited Time Offer.",
		TextLiterals: []string{"'50% OFF'", "'[Hook B]'"},
	},
	{
		ID: 9, Title: "Viral Quote Card", Phase: types.PhaseSocial, AspectRatio: types.RatioPortrait,
		Body: "Task: Aesthetic Quote Card. Scene: Cinematic background related to [Target Audience]. " +
			"Text Rendering: An inspiring quote about overcoming '[Problem]' in elegant {FONT} (White). " +
			"Overlay: Dark glass filter.",
		TextLiterals: []string{"the quote"},
		SafeZone:     true,
	},
	{
		ID: 10, Title: "Notification POV", Phase: types.PhaseSocial, AspectRatio: types.RatioStory,
		Body: "Task: First-person view (POV) of a hand holding a smartphone. " +
			"Screen Content: A realistic lock screen notification from '[Product Name]'. " +
			"Text Rendering: Notification says '[Hook A]' in {FONT}. " +
			"Background: Blurred luxury or freedom lifestyle background.",
		TextLiterals: []string{"'[Hook A]'"},
		SafeZone:     true,
	},
	{
		ID: 11, Title: "Success Roadmap", Phase: types.PhaseProduct, AspectRatio: types.RatioWide,
		Body: "Role: Infographic Designer. Task: Create a simplified 3-Step Success Roadmap visualization. " +
			"Steps: 1. [Start Point], 2. [The Process], 3. [The Result]. " +
			"Text Rendering: Label the 3 steps clearly in {FONT}. " +
			"Style: Clean layout with connecting arrows and icons. Colors: [Brand Colors].",
		TextLiterals: []string{"the step labels"},
	},
	{
		ID: 12, Title: "Completion Certificate", Phase: types.PhaseProduct, AspectRatio: types.RatioClassic,
		Body: "Role: Certification Designer. Task: Design a premium Certificate of Completion mockup. " +
			"Text Rendering: Write the title 'CERTIFICATE' (or equivalent in [Preferred Language]) in elegant Gold Typography. " +
			"Subtitle: '[Product Name]'. Visuals: Gold seal, guilloche patterns, high-quality paper texture. Style: {VIBE}.",
		TextLiterals: []string{"'CERTIFICATE'", "'[Product Name]'"},
	},
	{
		ID: 13, Title: "Email Header Banner", Phase: types.PhaseSocial, AspectRatio: types.RatioBanner,
		Body: "Role: Digital Marketing Designer. Task: Create a sleek Email Header Banner. " +
			"Subject: Welcome visual for '[Product Name]'. Composition: Minimalist, focusing on the Logo and a 'Welcome' text. " +
			"Text Rendering: Write 'Welcome' (or equivalent in [Preferred Language]) in {FONT}. " +
			"Background: Abstract {VIBE} pattern. Colors: [Brand Colors].",
		TextLiterals: []string{"'Welcome'"},
	},
}

// TemplateByID returns the catalog entry for an asset id, or false when
// the id is outside 0-13.
func TemplateByID(id int) (AssetTemplate, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return AssetTemplate{}, false
}
