package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanomarketer/internal/catalog"
)

func TestDetectBestModelFirstWorks(t *testing.T) {
	caller := &scriptedCaller{results: map[string]scriptedResult{
		"gemini-2.0-flash": {text: "pong"},
	}}

	model, err := DetectBestModel(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", model)
	assert.Equal(t, []string{"gemini-2.0-flash"}, caller.calls)
}

func TestDetectBestModelSkipsFailures(t *testing.T) {
	fail := errors.New("API request failed with status 404: not found")
	caller := &scriptedCaller{results: map[string]scriptedResult{
		"gemini-2.0-flash":     {err: fail},
		"gemini-2.0-flash-exp": {err: fail},
		"gemini-1.5-pro":       {text: "pong"},
	}}

	model, err := DetectBestModel(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", model)
	// Strictly sequential: exactly the first three priority entries.
	assert.Equal(t, catalog.PriorityModels[:3], caller.calls)
}

func TestDetectBestModelAnyFailureMeansNext(t *testing.T) {
	// Probing treats every failure the same, fatal or not.
	caller := &scriptedCaller{results: map[string]scriptedResult{
		"gemini-2.0-flash":     {err: errors.New("API request failed with status 403: permission denied")},
		"gemini-2.0-flash-exp": {text: "pong"},
	}}

	model, err := DetectBestModel(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash-exp", model)
}

func TestDetectBestModelExhaustion(t *testing.T) {
	fail := errors.New("API request failed with status 403: permission denied")
	caller := &scriptedCaller{results: map[string]scriptedResult{}}
	for _, m := range catalog.PriorityModels {
		caller.results[m] = scriptedResult{err: fail}
	}

	_, err := DetectBestModel(context.Background(), caller)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoWorkingModel)
	assert.Len(t, caller.calls, len(catalog.PriorityModels))
}

func TestDetectBestModelHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	caller := &scriptedCaller{results: map[string]scriptedResult{}}
	_, err := DetectBestModel(ctx, caller)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, caller.calls)
}
