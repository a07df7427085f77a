package gemini

import (
	"context"
	"fmt"

	"nanomarketer/internal/catalog"
	"nanomarketer/internal/logging"
)

// InvokeWithFallback tries the preferred model, then its declared
// substitutes, then the global fallback, strictly in sequence. Only
// capability-class failures move on to the next candidate; anything else
// (auth, quota, timeout) aborts immediately because a different model
// cannot fix it. Exhaustion returns ErrNoCapableModel wrapping the last
// capability failure.
func InvokeWithFallback(ctx context.Context, caller ModelCaller, preferred string, call Call) (string, error) {
	var lastErr error

	for _, model := range catalog.Candidates(preferred) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		logging.APIDebug("[Fallback] attempting model: %s", model)
		text, err := caller.GenerateContent(ctx, model, call)
		if err == nil {
			return text, nil
		}

		if Classify(err) == FailureCapability {
			logging.API("[Fallback] model %s unavailable, trying next: %v", model, err)
			lastErr = err
			continue
		}
		return "", err
	}

	return "", fmt.Errorf("%w: %w", ErrNoCapableModel, lastErr)
}
