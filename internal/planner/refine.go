package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"nanomarketer/internal/gemini"
	"nanomarketer/internal/logging"
	"nanomarketer/internal/types"
)

// assetPayload mirrors the single-asset response schema. Only prompt and
// description are honored; identity fields come from the existing asset.
type assetPayload struct {
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

// RegenerateAsset re-derives one asset's prompt under a new aspect ratio,
// preserving creative intent. The returned record equals the existing
// asset except for prompt, description, and aspectRatio; id, title, and
// phase are invariant under refinement by contract.
func (p *Planner) RegenerateAsset(ctx context.Context, asset types.GeneratedAsset, inputs types.CampaignInputs, newRatio types.AspectRatio, preferredModel string) (types.GeneratedAsset, error) {
	instruction, schema := CompileRefineInstruction(asset, inputs, newRatio)
	logging.PlannerDebug("RegenerateAsset: id=%d title=%q ratio=%s->%s model=%s",
		asset.ID, asset.Title, asset.AspectRatio, newRatio, preferredModel)

	user := fmt.Sprintf(
		"Original Prompt: %s\nAsset Title: %s\nProduct Name: %s\nPreferred Language for Design Text: %s\n\n"+
			"REQUIRED CHANGE: Change the Aspect Ratio to %s.\n"+
			"If the composition needs to change (e.g. from Square to Widescreen), adjust the scene description accordingly.\n"+
			"Keep the rest of the style/vibe consistent.\n",
		asset.Prompt, asset.Title, inputs.ProductName, inputs.Language, newRatio)

	text, err := gemini.InvokeWithFallback(ctx, p.caller, preferredModel, gemini.Call{
		System: instruction,
		User:   user,
		Schema: schema,
	})
	if err != nil {
		logging.PlannerError("RegenerateAsset failed: id=%d: %v", asset.ID, err)
		return types.GeneratedAsset{}, fmt.Errorf("regenerate asset %d: %w", asset.ID, err)
	}

	var payload assetPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return types.GeneratedAsset{}, fmt.Errorf("regenerate asset %d: %w: %v", asset.ID, ErrMalformedResponse, err)
	}

	refined := asset
	refined.Prompt = payload.Prompt
	refined.Description = payload.Description
	refined.AspectRatio = newRatio

	logging.Planner("RegenerateAsset: id=%d refined to %s", asset.ID, newRatio)
	return refined, nil
}
