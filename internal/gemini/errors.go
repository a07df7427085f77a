package gemini

import (
	"errors"
	"strings"
)

// ErrNoWorkingModel means probing exhausted the full priority list. The
// credential may lack Generative Language API entitlement entirely.
var ErrNoWorkingModel = errors.New("could not find any working model for this API key; ensure the key has the Generative Language API enabled")

// ErrNoCapableModel means generation-time fallback exhausted every
// candidate with capability-class failures.
var ErrNoCapableModel = errors.New("no capable model available for this API key")

// ErrEmptyResponse means the remote call succeeded but returned no text.
var ErrEmptyResponse = errors.New("no response text generated")

// FailureClass partitions remote-call failures for fallback control flow.
type FailureClass int

const (
	// FailureCapability: the requested model is unavailable or the
	// argument naming it was rejected. Recoverable by switching models.
	FailureCapability FailureClass = iota
	// FailureFatal: auth, quota, timeout, or anything else. Never
	// recoverable by switching models.
	FailureFatal
)

// Classify maps a remote-call error onto a FailureClass. The API reports
// model availability only through message text, so this is substring
// matching on purpose; keeping every match here contains the fragility.
func Classify(err error) FailureClass {
	if err == nil {
		return FailureFatal
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "404") ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "400") {
		return FailureCapability
	}
	return FailureFatal
}
