// Package catalog is the static model registry: the probing priority list,
// the user-facing supported-model list, and the fallback table. Purely
// data; no operations beyond lookup.
package catalog

// GlobalFallback is the most broadly available identifier. It terminates
// every fallback sequence and ends the priority list, so probing always
// reaches it whenever the credential works for any supported model.
const GlobalFallback = "gemini-1.5-flash"

// PriorityModels is the probe order: newest/best first, most broadly
// supported last. The list must end with GlobalFallback so probing
// terminates with a usable result whenever the credential works for any
// supported model.
var PriorityModels = []string{
	"gemini-2.0-flash",     // newest stable
	"gemini-2.0-flash-exp", // experimental
	"gemini-1.5-pro",       // high intelligence fallback
	"gemini-2.5-flash",     // future/beta
	"gemini-3-pro-preview", // future/private
	GlobalFallback,         // reliable last resort
}

// ModelInfo describes one selectable model for display purposes.
type ModelInfo struct {
	ID   string
	Name string
}

// SupportedModels is the selection list shown to users, sorted for display.
var SupportedModels = []ModelInfo{
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash (New Standard)"},
	{ID: "gemini-2.0-flash-exp", Name: "Gemini 2.0 Flash (Experimental)"},
	{ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash (Most Stable)"},
	{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro (High Intelligence)"},
	{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash (Preview)"},
	{ID: "gemini-3-pro-preview", Name: "Gemini 3 Pro (Private)"},
}

// fallbackTable maps a preferred model to its ordered substitutes. Absence
// of an entry means no declared substitutes beyond GlobalFallback.
var fallbackTable = map[string][]string{
	"gemini-2.5-flash":     {"gemini-2.0-flash", "gemini-1.5-flash"},
	"gemini-2.0-flash-exp": {"gemini-2.0-flash", "gemini-1.5-flash"},
	"gemini-3-pro-preview": {"gemini-2.0-flash", "gemini-1.5-pro"},
}

// Fallbacks returns the declared substitutes for a model, or nil.
func Fallbacks(model string) []string {
	return fallbackTable[model]
}

// Candidates builds the full try-order for one invocation: the preferred
// model, its declared substitutes, then the global fallback, deduplicated
// while preserving first occurrence.
func Candidates(preferred string) []string {
	ordered := make([]string, 0, len(fallbackTable[preferred])+2)
	ordered = append(ordered, preferred)
	ordered = append(ordered, fallbackTable[preferred]...)
	ordered = append(ordered, GlobalFallback)

	seen := make(map[string]bool, len(ordered))
	out := ordered[:0]
	for _, m := range ordered {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// IsSupported reports whether the identifier appears in the display list.
func IsSupported(model string) bool {
	for _, m := range SupportedModels {
		if m.ID == model {
			return true
		}
	}
	return false
}
