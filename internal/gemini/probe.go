package gemini

import (
	"context"

	"nanomarketer/internal/catalog"
	"nanomarketer/internal/logging"
)

// probePrompt is the smallest payload that exercises generation.
const probePrompt = "Test"

// DetectBestModel walks the priority list issuing a minimal generation
// call per candidate and returns the first identifier that works. Any
// probe failure means "try next"; the goal is purely existence of access.
// Exhaustion returns ErrNoWorkingModel.
//
// Probing is strictly sequential: each outcome decides whether the next
// candidate is attempted at all. The result is not persisted here; the
// caller owns the credential/model pairing.
func DetectBestModel(ctx context.Context, caller ModelCaller) (string, error) {
	for _, model := range catalog.PriorityModels {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if _, err := caller.GenerateContent(ctx, model, Call{User: probePrompt}); err != nil {
			logging.ProbeDebug("model %s failed probe: %v", model, err)
			continue
		}
		logging.Probe("auto-detect success: %s", model)
		return model, nil
	}
	return "", ErrNoWorkingModel
}
