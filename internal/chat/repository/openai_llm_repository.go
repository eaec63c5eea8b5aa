package repository

import (
	"context"
	"fmt"
	"time"

	"stock-intel/internal/chat/config"
	"stock-intel/pkg/logger"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"
)

// openAILLMRepository talks to any OpenAI-compatible chat completion API (OpenAI, DeepSeek).
type openAILLMRepository struct {
	client         openai.Client
	logger         *logger.Logger
	timeout        time.Duration
	maxTokens      int
	requestLimiter *rate.Limiter
}

// NewOpenAILLMRepository creates an LLMRepository for an OpenAI-compatible endpoint.
// An empty base URL targets api.openai.com.
func NewOpenAILLMRepository(cfg *config.Config, log *logger.Logger) LLMRepository {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.BaseURL))
	}

	return &openAILLMRepository{
		client:         openai.NewClient(opts...),
		logger:         log,
		timeout:        cfg.LLM.Timeout,
		maxTokens:      cfg.LLM.MaxTokens,
		requestLimiter: newRequestLimiter(cfg.LLM.MaxRequestPerMinute),
	}
}

func (r *openAILLMRepository) Complete(ctx context.Context, model, systemPrompt, message string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(message),
		},
	}
	if r.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(r.maxTokens))
	}

	r.logger.Debug("Sending chat completion request", logger.StringField("model", model))

	resp, err := r.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
