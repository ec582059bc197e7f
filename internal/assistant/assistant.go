// Package assistant answers personal-finance questions with Gemini.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"financogram/internal/currency"
	apperrors "financogram/internal/errors"
	"financogram/internal/logger"
	"financogram/internal/portfolio"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"

	systemInstruction = "You are a financial assistant helping users."
	maxMessageLength  = 4000
)

// Generator is the subset of the genai Models service the assistant uses.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Assistant generates chat replies.
type Assistant struct {
	models Generator
	model  string
	log    *zap.SugaredLogger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithModel sets the Gemini model name.
func WithModel(model string) Option {
	return func(a *Assistant) {
		if model != "" {
			a.model = model
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(a *Assistant) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an Assistant backed by the Gemini API. baseURL overrides the
// API endpoint when non-empty.
func New(ctx context.Context, apiKey, baseURL string, opts ...Option) (*Assistant, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return NewWithGenerator(client.Models, opts...), nil
}

// NewWithGenerator creates an Assistant on top of an existing Generator.
func NewWithGenerator(g Generator, opts ...Option) *Assistant {
	a := &Assistant{models: g, model: DefaultModel}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.Get()
	}
	return a
}

// Reply answers message. When holdings is non-nil, a summary of the user's
// portfolio is added to the system instruction.
func (a *Assistant) Reply(ctx context.Context, message string, holdings *portfolio.Summary) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperrors.NewFieldError("message", "must not be empty")
	}
	if len(message) > maxMessageLength {
		return "", apperrors.NewFieldError("message", fmt.Sprintf("must be at most %d characters", maxMessageLength))
	}

	instruction := systemInstruction
	if holdings != nil && len(holdings.Holdings) > 0 {
		instruction += "\n\n" + PortfolioContext(holdings)
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		Temperature:       genai.Ptr(float32(0.4)),
	}

	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(message), config)
	if err != nil {
		a.log.Errorw("Gemini request failed", "model", a.model, "error", err)
		return "", apperrors.Wrap(apperrors.ErrAssistantFailure, err)
	}

	var reply string
	if resp != nil {
		reply = strings.TrimSpace(resp.Text())
	}
	if reply == "" {
		return "", apperrors.Wrap(apperrors.ErrAssistantFailure, errors.New("empty response"))
	}
	return reply, nil
}

// PortfolioContext describes a portfolio in a few lines of plain text.
func PortfolioContext(s *portfolio.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The user holds %d mutual fund investments. Invested %s, now worth %s (%s%%).",
		len(s.Holdings),
		currency.INR(s.Totals.TotalInvested),
		currency.INR(s.Totals.TotalCurrent),
		s.Totals.TotalReturnPercent.StringFixed(2))
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "\n- %s: %d holding(s), invested %s, average return %s%%",
			c.Category, c.Holdings, currency.INR(c.Invested), c.AverageReturnPercent.StringFixed(2))
	}
	if s.StaleCount > 0 {
		fmt.Fprintf(&b, "\nLive prices were unavailable for %d holding(s); those are valued at cost.", s.StaleCount)
	}
	return b.String()
}
