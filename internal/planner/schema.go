package planner

import "nanomarketer/internal/types"

// assetProperties is the shared shape of one generated asset in both
// response schemas.
func assetProperties() map[string]interface{} {
	return map[string]interface{}{
		"id":    map[string]interface{}{"type": "integer"},
		"title": map[string]interface{}{"type": "string"},
		"phase": map[string]interface{}{
			"type": "string",
			"enum": []string{
				string(types.PhaseIdentity),
				string(types.PhaseProduct),
				string(types.PhaseSocial),
			},
		},
		"prompt":      map[string]interface{}{"type": "string"},
		"description": map[string]interface{}{"type": "string"},
	}
}

// PlanResponseSchema is the contract for a full plan: an array of exactly
// the asset shape plus the consistency guide string. Enforced at the
// remote boundary via responseSchema.
func PlanResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"assets": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":       "object",
					"properties": assetProperties(),
					"required":   []string{"id", "title", "phase", "prompt", "description"},
				},
			},
			"consistencyGuide": map[string]interface{}{"type": "string"},
		},
		"required": []string{"assets", "consistencyGuide"},
	}
}

// AssetResponseSchema is the single-object contract used by refinement.
// Only prompt and description are required; id/title/phase are preserved
// from the existing asset regardless of what the model returns.
func AssetResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": assetProperties(),
		"required":   []string{"prompt", "description"},
	}
}
