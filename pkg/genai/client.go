package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultFastModel = "gemini-3-flash-preview"
	defaultDeepModel = "gemini-3-pro-preview"
)

// Client is a thin REST client for the Gemini generateContent API.
type Client struct {
	apiKey    string
	baseURL   string
	fastModel string
	deepModel string
	http      *http.Client
}

type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

func WithModels(fast, deep string) Option {
	return func(c *Client) {
		if fast != "" {
			c.fastModel = fast
		}
		if deep != "" {
			c.deepModel = deep
		}
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		fastModel: defaultFastModel,
		deepModel: defaultDeepModel,
		http:      &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) generate(ctx context.Context, model string, payload *generateRequest) (string, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var genRes generateResponse
	if err := json.Unmarshal(resBody, &genRes); err != nil {
		return "", err
	}
	if len(genRes.Candidates) == 0 || genRes.Candidates[0].Content == nil || len(genRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", model)
	}

	return genRes.Candidates[0].Content.Parts[0].Text, nil
}

// generateJSON runs a schema-constrained generation and unmarshals the
// result into out. Markdown fences around the JSON body are stripped
// since some models still emit them despite the mime type.
func (c *Client) generateJSON(ctx context.Context, model string, payload *generateRequest, out interface{}) error {
	text, err := c.generate(ctx, model, payload)
	if err != nil {
		return err
	}

	raw := bytes.TrimSpace([]byte(text))
	raw = bytes.TrimPrefix(raw, []byte("```json"))
	raw = bytes.TrimPrefix(raw, []byte("```"))
	raw = bytes.TrimSuffix(raw, []byte("```"))
	raw = bytes.TrimSpace(raw)

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse error: %w | raw: %s", err, string(raw))
	}
	return nil
}

// generateImage extracts the first inline image part and returns it as
// a base64 data URI.
func (c *Client) generateImage(ctx context.Context, model string, payload *generateRequest) (string, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var genRes generateResponse
	if err := json.Unmarshal(resBody, &genRes); err != nil {
		return "", err
	}
	for _, cand := range genRes.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data), nil
			}
		}
	}
	return "", fmt.Errorf("no image returned from model %s", model)
}

func userContent(text string) []*Content {
	return []*Content{{
		Parts: []*Part{{Text: text}},
		Role:  RoleUser,
	}}
}
