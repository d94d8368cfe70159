// Package gemini provides a GenerationClient implementation using Google's
// Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mhpenta/toybox"
	cache "github.com/patrickmn/go-cache"
	"google.golang.org/genai"
)

// DefaultEnhanceCacheTTL is how long an enhanced prompt is remembered.
// Re-generating with an unchanged prompt reuses the cached rewrite instead
// of paying a second round-trip.
const DefaultEnhanceCacheTTL = 30 * time.Minute

// Client implements toybox.GenerationClient against the Gemini API.
// It is stateless beyond its configuration and the enhancement cache.
type Client struct {
	client       *genai.Client
	imageModel   string
	textModel    string
	enhanceCache *cache.Cache
	logger       *slog.Logger
}

var _ toybox.GenerationClient = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithModels overrides the image and text model names. Empty values keep
// the defaults.
func WithModels(imageModel, textModel string) Option {
	return func(c *Client) {
		if imageModel != "" {
			c.imageModel = imageModel
		}
		if textModel != "" {
			c.textModel = textModel
		}
	}
}

// WithEnhanceCacheTTL overrides how long enhanced prompts are cached.
func WithEnhanceCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.enhanceCache = cache.New(ttl, ttl)
	}
}

// WithLogger sets a structured logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client. The API key is injected here, never read at call
// time; a missing key is reported as toybox.ErrMissingAPIKey before any
// network attempt.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, toybox.ErrMissingAPIKey
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:       genaiClient,
		imageModel:   DefaultImageModel,
		textModel:    DefaultTextModel,
		enhanceCache: cache.New(DefaultEnhanceCacheTTL, DefaultEnhanceCacheTTL),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GenerateImage produces a stylized image from a prompt and an optional
// input image. Failures propagate as *toybox.ServiceError carrying the
// remote message.
func (c *Client) GenerateImage(ctx context.Context, prompt string, image *toybox.InputImage, ratio toybox.AspectRatio) (*toybox.GenerationResult, error) {
	parts := make([]*genai.Part, 0, 2)
	if image != nil {
		if err := toybox.ValidateImagePayload(*image); err != nil {
			return nil, err
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				Data:     image.Data,
				MIMEType: image.MIMEType,
			},
		})
	}
	parts = append(parts, &genai.Part{Text: buildGenerationPrompt(prompt, image != nil)})

	contents := []*genai.Content{
		{Parts: parts},
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: ratio.String(),
		},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.imageModel, contents, genConfig)
	if err != nil {
		return nil, wrapServiceError(err)
	}

	return parseGenerationResponse(result), nil
}

// EnhancePrompt rewrites a prompt for better generation results. On any
// failure or empty response the original prompt comes back with Degraded
// set; enhancement never blocks generation.
func (c *Client) EnhancePrompt(ctx context.Context, prompt string) toybox.EnhanceResult {
	if cached, ok := c.enhanceCache.Get(prompt); ok {
		if enhanced, ok := cached.(string); ok {
			return toybox.EnhanceResult{Prompt: enhanced}
		}
	}

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: buildEnhancementPrompt(prompt)}}},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.textModel, contents, nil)
	if err != nil {
		c.logger.Warn("prompt enhancement failed",
			"model", c.textModel,
			"error", err.Error(),
		)
		return toybox.EnhanceResult{Prompt: prompt, Degraded: true}
	}

	enhanced := strings.TrimSpace(responseText(result))
	if enhanced == "" {
		return toybox.EnhanceResult{Prompt: prompt, Degraded: true}
	}

	c.enhanceCache.Set(prompt, enhanced, cache.DefaultExpiration)
	return toybox.EnhanceResult{Prompt: enhanced}
}

// Brainstorm suggests three concept ideas from the given context text
// and/or image. An empty response degrades to a fixed example list; a hard
// failure degrades to a fixed failure message. Neither surfaces as an error.
func (c *Client) Brainstorm(ctx context.Context, contextText string, image *toybox.InputImage) toybox.BrainstormResult {
	hasContext := strings.TrimSpace(contextText) != ""

	parts := make([]*genai.Part, 0, 2)
	if image != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				Data:     image.Data,
				MIMEType: image.MIMEType,
			},
		})
	}
	parts = append(parts, &genai.Part{Text: buildBrainstormPrompt(contextText, hasContext, image != nil)})

	contents := []*genai.Content{
		{Parts: parts},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.textModel, contents, nil)
	if err != nil {
		c.logger.Warn("brainstorm failed",
			"model", c.textModel,
			"error", err.Error(),
		)
		return toybox.BrainstormResult{Ideas: brainstormFailureMessage, Degraded: true}
	}

	ideas := strings.TrimSpace(responseText(result))
	if ideas == "" {
		return toybox.BrainstormResult{Ideas: brainstormFallbackIdeas, Degraded: true}
	}
	return toybox.BrainstormResult{Ideas: ideas}
}

// parseGenerationResponse converts a Gemini response to our result type.
// The first inline image payload becomes the data URL; text parts are
// concatenated.
func parseGenerationResponse(result *genai.GenerateContentResponse) *toybox.GenerationResult {
	genResult := &toybox.GenerationResult{}
	if result == nil {
		return genResult
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 && genResult.ImageURL == "" {
				genResult.ImageURL = toybox.EncodeDataURL(part.InlineData.Data, "image/png")
			}
			if part.Text != "" {
				genResult.Text += part.Text
			}
		}
	}
	return genResult
}

// responseText collects the text parts of a response.
func responseText(result *genai.GenerateContentResponse) string {
	if result == nil {
		return ""
	}

	var sb strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}

// wrapServiceError wraps a provider failure in a ServiceError, pulling the
// remote message out of the API error when the SDK supplies one.
func wrapServiceError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &toybox.ServiceError{Message: apiErr.Message, Err: err}
	}
	return &toybox.ServiceError{Message: err.Error(), Err: err}
}
