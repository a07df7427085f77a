package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanomarketer/internal/types"
)

func TestRegenerateAssetKeepsIdentityFields(t *testing.T) {
	caller := &cannedCaller{reply: `{"prompt":"new widescreen-to-portrait prompt","description":"new description"}`}
	p := New(caller)

	original := types.GeneratedAsset{
		ID:          5,
		Title:       "Customer Review Card",
		Phase:       types.PhaseProduct,
		Prompt:      "old square prompt",
		Description: "old description",
		AspectRatio: types.RatioSquare,
	}
	inputs := types.CampaignInputs{
		ProductName: "WealthPath",
		Description: "An investing course",
		Language:    types.LanguageArabic,
	}

	refined, err := p.RegenerateAsset(context.Background(), original, inputs, types.RatioPortrait, "gemini-2.0-flash")
	require.NoError(t, err)

	// Only prompt, description, and ratio change.
	assert.Equal(t, original.ID, refined.ID)
	assert.Equal(t, original.Title, refined.Title)
	assert.Equal(t, original.Phase, refined.Phase)
	assert.Equal(t, "new widescreen-to-portrait prompt", refined.Prompt)
	assert.Equal(t, "new description", refined.Description)
	assert.Equal(t, types.RatioPortrait, refined.AspectRatio)

	// The original record is untouched.
	assert.Equal(t, "old square prompt", original.Prompt)
	assert.Equal(t, types.RatioSquare, original.AspectRatio)
}

func TestRegenerateAssetUserMessageCarriesChange(t *testing.T) {
	caller := &cannedCaller{reply: `{"prompt":"p","description":"d"}`}
	p := New(caller)

	asset := types.GeneratedAsset{ID: 1, Title: "3D Packaging (Hero Image)", Phase: types.PhaseProduct, Prompt: "hero box"}
	inputs := types.CampaignInputs{ProductName: "WealthPath", Language: types.LanguageArabic}

	_, err := p.RegenerateAsset(context.Background(), asset, inputs, types.RatioStory, "gemini-2.0-flash")
	require.NoError(t, err)
	require.Len(t, caller.calls, 1)

	call := caller.calls[0]
	assert.Contains(t, call.User, "Original Prompt: hero box")
	assert.Contains(t, call.User, "REQUIRED CHANGE: Change the Aspect Ratio to 9:16.")
	assert.Contains(t, call.System, "TARGET ASPECT RATIO: 9:16")
	assert.NotNil(t, call.Schema)
}

func TestRegenerateAssetMalformedResponse(t *testing.T) {
	caller := &cannedCaller{reply: "not json"}
	p := New(caller)

	asset := types.GeneratedAsset{ID: 0, Title: "Brand Logo Identity", Phase: types.PhaseIdentity}
	inputs := types.CampaignInputs{ProductName: "X", Language: types.LanguageEnglish}

	_, err := p.RegenerateAsset(context.Background(), asset, inputs, types.RatioWide, "gemini-2.0-flash")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
