package repository

import (
	"context"
	"fmt"
	"time"

	"stock-intel/internal/chat/config"
	"stock-intel/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiLLMRepository is an LLMRepository backed by the Google Gemini API.
type geminiLLMRepository struct {
	genAiClient    *genai.Client
	logger         *logger.Logger
	timeout        time.Duration
	maxTokens      int
	requestLimiter *rate.Limiter
}

// NewGeminiLLMRepository creates a new instance of geminiLLMRepository.
func NewGeminiLLMRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) LLMRepository {
	return &geminiLLMRepository{
		genAiClient:    genAiClient,
		logger:         log,
		timeout:        cfg.LLM.Timeout,
		maxTokens:      cfg.LLM.MaxTokens,
		requestLimiter: newRequestLimiter(cfg.LLM.MaxRequestPerMinute),
	}
}

func (r *geminiLLMRepository) Complete(ctx context.Context, model, systemPrompt, message string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	if r.maxTokens > 0 {
		genCfg.MaxOutputTokens = int32(r.maxTokens)
	}

	r.logger.Debug("Sending Gemini request", logger.StringField("model", model))

	resp, err := r.genAiClient.Models.GenerateContent(ctx, model, genai.Text(message), genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no content found in Gemini response")
	}
	return text, nil
}
