package gemini

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/medai-pro/medai-server-go/internal/config"
	"github.com/medai-pro/medai-server-go/internal/llm"
	"github.com/medai-pro/medai-server-go/internal/metrics"
)

var (
	// ErrNotInitialized is returned when no model handle survived startup.
	ErrNotInitialized = errors.New("gemini model not initialized")
	// ErrEmptyResponse is returned when the completion call produced no text.
	ErrEmptyResponse = errors.New("gemini returned empty response")
)

// Client holds the Gemini connection and the model chosen at startup.
// The active model is written exactly once, before the server accepts
// requests, and is read-only afterwards.
type Client struct {
	cfg         *config.Config
	metrics     *metrics.Store
	logger      *slog.Logger
	client      *genai.Client
	activeModel string
	configured  bool
}

// NewClient configures the API client and runs the candidate fallback loop.
// A missing key or an exhausted candidate list is not fatal: the client is
// returned unready and the static endpoints keep serving.
func NewClient(ctx context.Context, cfg *config.Config, metricsStore *metrics.Store, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		cfg:     cfg,
		metrics: metricsStore,
		logger:  logger,
	}

	if !cfg.Gemini.Configured() {
		logger.Error("gemini_api_key_missing")
		return c, nil
	}
	c.configured = true

	timeout := time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
	apiClient, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		logger.Error("gemini_client_init_failed", "err", truncate(err.Error(), 100))
		return c, nil
	}
	c.client = apiClient

	for _, candidate := range cfg.Gemini.CandidateModels {
		logger.Info("model_candidate_try", "model", candidate)
		if _, err := apiClient.Models.Get(ctx, candidate, nil); err != nil {
			logger.Warn("model_candidate_unavailable", "model", candidate, "err", truncate(err.Error(), 100))
			continue
		}
		c.activeModel = candidate
		logger.Info("model_fallback_selected", "model", candidate)
		break
	}

	if c.activeModel == "" {
		logger.Error("model_fallback_exhausted")
	}
	return c, nil
}

// Configured reports whether an API key was present at startup.
func (c *Client) Configured() bool {
	return c.configured
}

// Ready reports whether a model handle is available.
func (c *Client) Ready() bool {
	return c.client != nil && c.activeModel != ""
}

// ActiveModel returns the identifier chosen by the fallback loop.
func (c *Client) ActiveModel() string {
	return c.activeModel
}

// Generate performs one blocking completion round trip for the prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Ready() {
		return "", ErrNotInitialized
	}

	start := time.Now()
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	response, err := c.client.Models.GenerateContent(ctx, c.activeModel, contents, c.generateConfig())
	if err != nil {
		c.metrics.RecordError(time.Since(start))
		return "", err
	}

	text := response.Text()
	if strings.TrimSpace(text) == "" {
		c.metrics.RecordError(time.Since(start))
		return "", ErrEmptyResponse
	}

	c.metrics.RecordSuccess(time.Since(start), extractUsage(response))
	return text, nil
}

func (c *Client) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.cfg.Gemini.Temperature)),
		MaxOutputTokens: int32(c.cfg.Gemini.MaxOutputTokens),
	}
}

func extractUsage(response *genai.GenerateContentResponse) llm.Usage {
	if response == nil || response.UsageMetadata == nil {
		return llm.Usage{}
	}
	usage := response.UsageMetadata
	return llm.Usage{
		InputTokens:  int(usage.PromptTokenCount),
		OutputTokens: int(usage.CandidatesTokenCount),
		TotalTokens:  int(usage.TotalTokenCount),
	}
}

func truncate(value string, n int) string {
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[:n])
}
