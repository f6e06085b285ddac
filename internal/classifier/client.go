// Package classifier wraps the hosted generative-language model used to
// label complaints and to power the support chatbot. The model is an
// untrusted collaborator: callers must coerce its replies into the closed
// label sets before persisting anything.
package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/campusdesk/complaint-api/pkg/config"
)

// TextGenerator produces one free-text completion for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CallObserver receives the outcome of each outbound model call.
type CallObserver interface {
	ObserveClassifierCall(outcome string, duration time.Duration)
}

// Gemini implements TextGenerator on the Gemini API.
type Gemini struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	logger   *zap.Logger
	observer CallObserver
}

// SetObserver attaches a metrics observer. Must be called before serving.
func (g *Gemini) SetObserver(observer CallObserver) {
	g.observer = observer
}

// NewGemini builds a Gemini-backed generator from config.
func NewGemini(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &Gemini{client: client, model: model, timeout: cfg.Timeout, logger: logger}, nil
}

// Generate sends the prompt and returns the trimmed reply. The call blocks
// for at most the configured timeout.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if g.observer != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		g.observer.ObserveClassifierCall(outcome, time.Since(start))
	}
	if err != nil {
		g.logger.Warn("gemini call failed", zap.String("model", g.model), zap.Error(err))
		return "", fmt.Errorf("generate content: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	g.logger.Debug("gemini call completed",
		zap.String("model", g.model),
		zap.Duration("latency", time.Since(start)),
		zap.Int("reply_len", len(reply)),
	)
	return reply, nil
}
