package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func modelReply(t *testing.T, potential, actions string) string {
	t.Helper()
	verdict, err := json.Marshal(map[string]string{"potential": potential, "actions": actions})
	assert.NoError(t, err)

	resp := generateResponse{
		Candidates: []candidate{
			{Content: content{Parts: []part{{Text: string(verdict)}}}},
		},
	}
	body, err := json.Marshal(resp)
	assert.NoError(t, err)
	return string(body)
}

func TestClassify_DecodesStructuredVerdict(t *testing.T) {
	var captured generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		json.NewDecoder(r.Body).Decode(&captured)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(modelReply(t, "High", "Call tomorrow.")))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.SetBaseURL(server.URL)

	out, err := client.Classify(context.Background(), ClassifyInput{
		System: "You judge leads.",
		Prompt: "Notes: very keen",
	})

	assert.NoError(t, err)
	assert.Equal(t, "High", out.Potential)
	assert.Equal(t, "Call tomorrow.", out.Actions)

	assert.Equal(t, "Notes: very keen", captured.Contents[0].Parts[0].Text)
	assert.Equal(t, "You judge leads.", captured.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
}

func TestClassify_RetriesOn429(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(modelReply(t, "Low", "Park it.")))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.SetBaseURL(server.URL)

	out, err := client.Classify(context.Background(), ClassifyInput{Prompt: "x"})

	assert.NoError(t, err)
	assert.Equal(t, "Low", out.Potential)
	assert.Equal(t, 2, attempts)
}

func TestClassify_DoesNotRetryServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.SetBaseURL(server.URL)

	_, err := client.Classify(context.Background(), ClassifyInput{Prompt: "x"})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestClassify_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.SetBaseURL(server.URL)

	_, err := client.Classify(context.Background(), ClassifyInput{Prompt: "x"})

	assert.ErrorContains(t, err, "no candidates")
}

func TestClassify_MissingAPIKey(t *testing.T) {
	client := NewClient("", "")

	_, err := client.Classify(context.Background(), ClassifyInput{Prompt: "x"})

	assert.ErrorContains(t, err, "api key")
}
