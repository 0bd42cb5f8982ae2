package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/utils"
)

var (
	errMissingAPIKey = errors.New("gemini api key not configured")
	jsonPattern      = regexp.MustCompile(`(?s)[\[{].*[\]}]`)
)

type (
	part struct {
		Text       string      `json:"text,omitempty"`
		InlineData *inlineData `json:"inline_data,omitempty"`
	}

	inlineData struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"`
	}

	content struct {
		Role  string `json:"role,omitempty"`
		Parts []part `json:"parts"`
	}

	generateRequest struct {
		SystemInstruction *content       `json:"systemInstruction,omitempty"`
		Contents          []content      `json:"contents"`
		GenerationConfig  map[string]any `json:"generationConfig,omitempty"`
	}

	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}

	client struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

func newClient(cfg utils.Config) *client {
	return &client{
		apiKey:     cfg.GeminiAPIKey,
		model:      cfg.GeminiModel,
		baseURL:    strings.TrimRight(cfg.GeminiBaseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// generate performs a single generateContent call and returns the text of
// the first candidate.
func (c *client) generate(ctx context.Context, body generateRequest) (string, error) {
	if c.apiKey == "" {
		return "", errMissingAPIKey
	}

	requestJSON, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: %s - %s", domain.ErrUpstreamFailure, resp.Status, string(bodyBytes))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", domain.ErrUpstreamFailure)
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// generateJSON decodes the candidate text into out, tolerating markdown
// fences around the payload.
func (c *client) generateJSON(ctx context.Context, body generateRequest, out any) error {
	text, err := c.generate(ctx, body)
	if err != nil {
		return err
	}

	text = cleanJSON(text)
	if text == "" {
		return fmt.Errorf("%w: empty response", domain.ErrUpstreamFailure)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamFailure, err)
	}
	return nil
}

func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	if m := jsonPattern.FindString(text); m != "" {
		text = m
	}
	return strings.TrimSpace(text)
}

func jsonConfig(schema map[string]any) map[string]any {
	return map[string]any{
		"responseMimeType": "application/json",
		"responseSchema":   schema,
	}
}
