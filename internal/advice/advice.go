// Package advice fetches short relationship advice from a generative-text
// API. The call is fire-and-forget from the engines' perspective: it reads
// and writes no household state, and a failure surfaces as a fallback
// message, never a crash.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// Fallback is shown when the service is unavailable.
const Fallback = "Désolé, je ne peux pas donner de conseil pour le moment."

const systemPrompt = "Tu es un coach expert en relations amoureuses. Ton ton est sophistiqué, chaleureux et encourageant."

// Config holds advisory service configuration.
type Config struct {
	APIKey string
	Model  string
}

// Service calls the generative-text API.
type Service struct {
	cfg     Config
	client  *http.Client
	baseURL string
}

// NewService creates an advice service. Without an API key the service is
// unconfigured and every request returns the fallback.
func NewService(cfg Config) *Service {
	if cfg.Model == "" {
		cfg.Model = "gemini-flash-latest"
	}
	return &Service{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
	}
}

// Configured reports whether an API key is present.
func (s *Service) Configured() bool {
	return s.cfg.APIKey != ""
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Get requests advice on a topic. Transient server errors are retried once
// with a short backoff; any final failure is returned to the caller, who is
// expected to substitute Fallback for display.
func (s *Service) Get(ctx context.Context, topic string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("advice service not configured")
	}

	prompt := fmt.Sprintf(
		"En tant qu'expert en relations de couple, donne un conseil court (3-4 phrases) sur le sujet suivant : %s. Sois bienveillant et constructif.",
		topic,
	)

	var text string
	backoff := retry.WithMaxRetries(1, retry.NewConstant(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		text, err = s.generate(ctx, prompt)
		return err
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.cfg.Model, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", retry.RetryableError(fmt.Errorf("advice API request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return "", retry.RetryableError(fmt.Errorf("advice API returned status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advice API returned status %d", resp.StatusCode)
	}

	var apiResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode advice response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("advice API returned no candidates")
	}
	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}
