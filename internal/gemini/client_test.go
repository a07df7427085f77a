package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClientWithConfig(Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	})
}

func textResponse(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
					"role":  "model",
				},
				"finishReason": "STOP",
			},
		},
		"usageMetadata": map[string]int{"totalTokenCount": 42},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestGenerateContentSuccess(t *testing.T) {
	var gotPath string
	var gotBody Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, textResponse("hello world"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	text, err := c.GenerateContent(context.Background(), "gemini-2.0-flash", Call{
		System: "be terse",
		User:   "say hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)

	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "say hello", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "be terse", gotBody.SystemInstruction.Parts[0].Text)
	// No schema requested, so no structured-output fields.
	assert.Empty(t, gotBody.GenerationConfig.ResponseMimeType)
}

func TestGenerateContentSchemaForcesJSONMime(t *testing.T) {
	var gotBody Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, textResponse(`{"ok":true}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	schema := map[string]interface{}{"type": "object"}
	_, err := c.GenerateContent(context.Background(), "gemini-2.0-flash", Call{User: "x", Schema: schema})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
	assert.Equal(t, "object", gotBody.GenerationConfig.ResponseSchema["type"])
}

func TestGenerateContentNon200CarriesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":404,"message":"model not found","status":"NOT_FOUND"}}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.GenerateContent(context.Background(), "gemini-3-pro-preview", Call{User: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "model not found")
	assert.Equal(t, FailureCapability, Classify(err))
}

func TestGenerateContentAPIErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":403,"message":"permission denied","status":"PERMISSION_DENIED"}}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.GenerateContent(context.Background(), "gemini-2.0-flash", Call{User: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, FailureFatal, Classify(err))
}

func TestGenerateContentEmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates":[]}`},
		{"no parts", `{"candidates":[{"content":{"parts":[],"role":"model"}}]}`},
		{"blank text", textResponse("   ")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			c := newTestClient(server.URL)
			_, err := c.GenerateContent(context.Background(), "gemini-2.0-flash", Call{User: "x"})
			assert.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestGenerateContentMultipartConcatenation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"foo"},{"text":"bar"}],"role":"model"}}]}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	text, err := c.GenerateContent(context.Background(), "gemini-2.0-flash", Call{User: "x"})
	require.NoError(t, err)
	assert.Equal(t, "foobar", text)
}

func TestGenerateContentRetriesRateLimit(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, textResponse("recovered"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	text, err := c.GenerateContent(context.Background(), "gemini-2.0-flash", Call{User: "x"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, hits)
}

func TestGenerateContentValidation(t *testing.T) {
	c := NewClient("")
	_, err := c.GenerateContent(context.Background(), "gemini-2.0-flash", Call{User: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")

	c = NewClient("key")
	_, err = c.GenerateContent(context.Background(), "  ", Call{User: "x"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "model"))
}
