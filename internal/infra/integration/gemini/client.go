package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.0-flash"

	maxRetries = 3
)

// responseSchema pins the output shape: any reply must be a JSON object
// with potential High|Low and a free-text actions string.
var responseSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"potential": map[string]interface{}{
			"type": "string",
			"enum": []string{"High", "Low"},
		},
		"actions": map[string]interface{}{
			"type": "string",
		},
	},
	"required": []string{"potential", "actions"},
}

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// SetBaseURL overrides the endpoint (tests, proxies).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// Classify sends one prompt and decodes the structured verdict.
// Single request/response, no streaming; only 429 is retried.
func (c *Client) Classify(ctx context.Context, input ClassifyInput) (*ClassifyOutput, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}

	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: input.Prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:      0.2,
			MaxOutputTokens:  1024,
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}
	if input.System != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: input.System}}}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("gemini request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read gemini response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limit exceeded (429)")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("gemini request failed (status %d): %s", resp.StatusCode, string(body))
		}

		var genResp generateResponse
		if err := json.Unmarshal(body, &genResp); err != nil {
			return nil, fmt.Errorf("failed to decode gemini response: %w", err)
		}
		if genResp.Error != nil {
			return nil, fmt.Errorf("gemini API error: %s", genResp.Error.Message)
		}
		if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("gemini returned no candidates")
		}

		var text strings.Builder
		for _, p := range genResp.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}

		var out ClassifyOutput
		if err := json.Unmarshal([]byte(strings.TrimSpace(text.String())), &out); err != nil {
			return nil, fmt.Errorf("gemini reply is not valid JSON: %w", err)
		}

		return &out, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
