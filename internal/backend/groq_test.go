package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroqInvoke(t *testing.T) {
	var gotReq OpenAIRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(openAIReply("A thoughtful counsellor answer.")))
	}))
	defer srv.Close()

	adapter := NewGroq(srv.Client())
	adapter.baseURL = srv.URL

	answer, err := adapter.Invoke(context.Background(), testHistory(), "groq-key")
	require.NoError(t, err)
	assert.Equal(t, "A thoughtful counsellor answer.", answer)
	assert.Equal(t, "llama2-70b-4096", gotReq.Model)
	assert.Equal(t, 0.8, gotReq.TopP)
	assert.Equal(t, 0.7, gotReq.Temperature)
}

func TestGroqServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	adapter := NewGroq(srv.Client())
	adapter.baseURL = srv.URL

	_, err := adapter.Invoke(context.Background(), testHistory(), "groq-key")
	assert.Error(t, err)
}

func TestGroqEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(openAIReply("   ")))
	}))
	defer srv.Close()

	adapter := NewGroq(srv.Client())
	adapter.baseURL = srv.URL

	_, err := adapter.Invoke(context.Background(), testHistory(), "groq-key")
	assert.Error(t, err)
}
