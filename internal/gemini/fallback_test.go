package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanomarketer/internal/catalog"
)

// scriptedCaller returns a scripted result per model and records the
// attempt order.
type scriptedCaller struct {
	results map[string]scriptedResult
	calls   []string
}

type scriptedResult struct {
	text string
	err  error
}

func (s *scriptedCaller) GenerateContent(ctx context.Context, model string, call Call) (string, error) {
	s.calls = append(s.calls, model)
	r, ok := s.results[model]
	if !ok {
		return "", fmt.Errorf("API request failed with status 404: unknown model %s", model)
	}
	return r.text, r.err
}

func TestInvokeWithFallbackPreferredSucceeds(t *testing.T) {
	caller := &scriptedCaller{results: map[string]scriptedResult{
		"gemini-2.0-flash": {text: "ok"},
	}}

	text, err := InvokeWithFallback(context.Background(), caller, "gemini-2.0-flash", Call{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, []string{"gemini-2.0-flash"}, caller.calls)
}

func TestInvokeWithFallbackCapabilityFailureMovesOn(t *testing.T) {
	caller := &scriptedCaller{results: map[string]scriptedResult{
		"gemini-2.5-flash": {err: errors.New("API request failed with status 404: not found")},
		"gemini-2.0-flash": {text: "from substitute"},
	}}

	text, err := InvokeWithFallback(context.Background(), caller, "gemini-2.5-flash", Call{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "from substitute", text)
	// Preferred first, then its first declared substitute.
	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-2.0-flash"}, caller.calls)
}

func TestInvokeWithFallbackTryOrder(t *testing.T) {
	notFound := errors.New("API error: not found")
	caller := &scriptedCaller{results: map[string]scriptedResult{
		"gemini-3-pro-preview": {err: notFound},
		"gemini-2.0-flash":     {err: notFound},
		"gemini-1.5-pro":       {err: notFound},
		"gemini-1.5-flash":     {text: "last resort"},
	}}

	text, err := InvokeWithFallback(context.Background(), caller, "gemini-3-pro-preview", Call{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "last resort", text)
	assert.Equal(t,
		[]string{"gemini-3-pro-preview", "gemini-2.0-flash", "gemini-1.5-pro", "gemini-1.5-flash"},
		caller.calls)
}

func TestInvokeWithFallbackFatalAbortsImmediately(t *testing.T) {
	authErr := errors.New("API request failed with status 403: permission denied")
	caller := &scriptedCaller{results: map[string]scriptedResult{
		"gemini-2.5-flash": {err: authErr},
	}}

	_, err := InvokeWithFallback(context.Background(), caller, "gemini-2.5-flash", Call{User: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, authErr)
	assert.NotErrorIs(t, err, ErrNoCapableModel)
	// A fatal failure never reaches the substitutes.
	assert.Equal(t, []string{"gemini-2.5-flash"}, caller.calls)
}

func TestInvokeWithFallbackExhaustion(t *testing.T) {
	notFound := errors.New("API request failed with status 404: gone")
	caller := &scriptedCaller{results: map[string]scriptedResult{}}
	for _, m := range catalog.Candidates("gemini-2.5-flash") {
		caller.results[m] = scriptedResult{err: notFound}
	}

	_, err := InvokeWithFallback(context.Background(), caller, "gemini-2.5-flash", Call{User: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCapableModel)
	assert.ErrorIs(t, err, notFound)
	assert.Len(t, caller.calls, 3)
}

func TestInvokeWithFallbackHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	caller := &scriptedCaller{results: map[string]scriptedResult{
		"gemini-2.0-flash": {text: "never reached"},
	}}
	_, err := InvokeWithFallback(ctx, caller, "gemini-2.0-flash", Call{User: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, caller.calls)
}
