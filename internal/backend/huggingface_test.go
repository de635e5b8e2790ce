package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareerGuide/internal/session"
)

func TestHuggingFaceInvoke(t *testing.T) {
	var gotReq HuggingFaceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/microsoft/DialoGPT-large", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`[{"generated_text":" You could start by listing your interests. "}]`))
	}))
	defer srv.Close()

	adapter := NewHuggingFace(srv.Client())
	adapter.baseURL = srv.URL

	answer, err := adapter.Invoke(context.Background(), testHistory(), "hf-key")
	require.NoError(t, err)
	assert.Equal(t, "You could start by listing your interests.", answer)

	// The prompt wraps only the latest user turn, not the whole history.
	assert.Contains(t, gotReq.Inputs, "Student: how do I choose a major?")
	assert.NotContains(t, gotReq.Inputs, session.Greeting)
	assert.Equal(t, true, gotReq.Options["wait_for_model"])
}

func TestHuggingFaceStripsEchoedPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req HuggingFaceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		out := []HuggingFaceOutput{{GeneratedText: req.Inputs + " Try a career aptitude test."}}
		body, _ := json.Marshal(out)
		w.Write(body)
	}))
	defer srv.Close()

	adapter := NewHuggingFace(srv.Client())
	adapter.baseURL = srv.URL

	answer, err := adapter.Invoke(context.Background(), testHistory(), "hf-key")
	require.NoError(t, err)
	assert.Equal(t, "Try a career aptitude test.", answer)
}

func TestHuggingFaceEmptyOutputs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	adapter := NewHuggingFace(srv.Client())
	adapter.baseURL = srv.URL

	_, err := adapter.Invoke(context.Background(), testHistory(), "hf-key")
	assert.Error(t, err)
}

func TestHuggingFaceNoUserTurn(t *testing.T) {
	adapter := NewHuggingFace(http.DefaultClient)

	history := []session.Message{{Role: session.RoleAssistant, Content: session.Greeting}}
	_, err := adapter.Invoke(context.Background(), history, "hf-key")
	assert.Error(t, err)
}
