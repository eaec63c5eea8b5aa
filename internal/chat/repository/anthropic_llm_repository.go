package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock-intel/internal/chat/config"
	"stock-intel/pkg/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"
)

type anthropicLLMRepository struct {
	client         anthropic.Client
	logger         *logger.Logger
	timeout        time.Duration
	maxTokens      int64
	requestLimiter *rate.Limiter
}

// NewAnthropicLLMRepository creates an LLMRepository backed by the Anthropic Messages API.
func NewAnthropicLLMRepository(cfg *config.Config, log *logger.Logger) LLMRepository {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.BaseURL))
	}

	maxTokens := int64(cfg.LLM.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	return &anthropicLLMRepository{
		client:         anthropic.NewClient(opts...),
		logger:         log,
		timeout:        cfg.LLM.Timeout,
		maxTokens:      maxTokens,
		requestLimiter: newRequestLimiter(cfg.LLM.MaxRequestPerMinute),
	}
}

func (r *anthropicLLMRepository) Complete(ctx context.Context, model, systemPrompt, message string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Debug("Sending Anthropic request", logger.StringField("model", model))

	resp, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: r.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		sb.WriteString(block.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}
	return sb.String(), nil
}
