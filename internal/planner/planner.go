// Package planner turns campaign inputs into a structured 14-asset
// prompt plan by compiling the generation policy into a single
// instruction payload and driving the remote model through the fallback
// executor.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"nanomarketer/internal/gemini"
	"nanomarketer/internal/logging"
	"nanomarketer/internal/types"
)

// ErrMalformedResponse means the remote model returned text that does not
// parse as the schema-shaped structure. The model violated its contract;
// this is surfaced as-is, never retried automatically.
var ErrMalformedResponse = errors.New("model response does not match the expected schema")

// Planner orchestrates plan generation and single-asset refinement
// against a remote model. It holds no state across calls beyond the
// caller it was built with; concurrent invocations are independent.
type Planner struct {
	caller gemini.ModelCaller
}

// New creates a Planner on top of a model caller (normally the Gemini
// client carrying the credential).
func New(caller gemini.ModelCaller) *Planner {
	return &Planner{caller: caller}
}

// userMessage builds the minimal user payload: only the raw input fields.
func userMessage(inputs types.CampaignInputs) string {
	vibe := inputs.BrandVibe
	if vibe == "" {
		vibe = "Not specified, infer based on description"
	}
	return fmt.Sprintf(
		"Product Name: %s\nProduct Description: %s\nPreferred Language for Design Text: %s\nBrand Vibe/Colors: %s\n",
		inputs.ProductName, inputs.Description, inputs.Language, vibe)
}

// planPayload mirrors the plan response schema.
type planPayload struct {
	Assets []struct {
		ID          int              `json:"id"`
		Title       string           `json:"title"`
		Phase       types.AssetPhase `json:"phase"`
		Prompt      string           `json:"prompt"`
		Description string           `json:"description"`
	} `json:"assets"`
	ConsistencyGuide string `json:"consistencyGuide"`
}

// GeneratePlan compiles the full instruction payload and requests the
// 14-asset plan, starting at preferredModel and falling back per the
// registry. The returned assets are kept in the model's order; each
// asset's aspect ratio is stamped from the template catalog (the schema
// deliberately does not carry it).
func (p *Planner) GeneratePlan(ctx context.Context, inputs types.CampaignInputs, appLang types.Language, preferredModel string) (*types.PromptPlanResponse, error) {
	instruction, schema := CompilePlanInstruction(inputs, appLang)
	logging.PlannerDebug("GeneratePlan: product=%q lang=%s model=%s instruction_len=%d",
		inputs.ProductName, appLang, preferredModel, len(instruction))

	text, err := gemini.InvokeWithFallback(ctx, p.caller, preferredModel, gemini.Call{
		System: instruction,
		User:   userMessage(inputs),
		Schema: schema,
	})
	if err != nil {
		logging.PlannerError("GeneratePlan failed: %v", err)
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		logging.PlannerError("GeneratePlan: unparseable response: %v", err)
		return nil, fmt.Errorf("generate plan: %w: %v", ErrMalformedResponse, err)
	}

	plan := &types.PromptPlanResponse{
		Assets:           make([]types.GeneratedAsset, 0, len(payload.Assets)),
		ConsistencyGuide: payload.ConsistencyGuide,
	}
	for _, a := range payload.Assets {
		asset := types.GeneratedAsset{
			ID:          a.ID,
			Title:       a.Title,
			Phase:       a.Phase,
			Prompt:      a.Prompt,
			Description: a.Description,
		}
		if t, ok := TemplateByID(a.ID); ok {
			asset.AspectRatio = t.AspectRatio
		}
		plan.Assets = append(plan.Assets, asset)
	}

	logging.Planner("GeneratePlan: received %d assets, guide_len=%d",
		len(plan.Assets), len(strings.TrimSpace(plan.ConsistencyGuide)))
	return plan, nil
}
