package service

import (
	"context"
	"fmt"

	"stock-intel/internal/chat/repository"
	"stock-intel/pkg/logger"
)

const noMarketAnalysisAnswer = "No market analysis available at the moment."

// ChatService composes the answer for a chat message.
type ChatService interface {
	Answer(ctx context.Context, message string) (string, error)
}

// NewChatService creates a new ChatService.
func NewChatService(intents IntentService, posts repository.PostRepository, assistant Assistant, logger *logger.Logger) ChatService {
	return &chatService{
		intents:   intents,
		posts:     posts,
		assistant: assistant,
		logger:    logger,
	}
}

type chatService struct {
	intents   IntentService
	posts     repository.PostRepository
	assistant Assistant
	logger    *logger.Logger
}

// Answer routes the message by intent. Missing data yields a user-facing message, not an error.
func (s *chatService) Answer(ctx context.Context, message string) (string, error) {
	intent, err := s.intents.Resolve(ctx, message)
	if err != nil {
		return "", err
	}

	switch intent.Kind {
	case IntentMarket:
		return s.marketAnswer(ctx)
	case IntentSymbol:
		return s.symbolAnswer(ctx, intent.Symbol)
	default:
		answer, err := s.assistant.Reply(ctx, message)
		if err != nil {
			s.logger.Error("Assistant reply failed", logger.ErrorField(err))
			return "", fmt.Errorf("%w: %w", ErrProviderFailure, err)
		}
		return answer, nil
	}
}

func (s *chatService) marketAnswer(ctx context.Context) (string, error) {
	post, err := s.posts.FindLatestMarket(ctx)
	if err != nil {
		s.logger.Error("Failed to get market post", logger.ErrorField(err))
		return "", fmt.Errorf("failed to get market post: %w", err)
	}
	if post == nil {
		return noMarketAnalysisAnswer, nil
	}
	return fmt.Sprintf("Market Analysis: %s", post.Content), nil
}

func (s *chatService) symbolAnswer(ctx context.Context, symbol string) (string, error) {
	post, err := s.posts.FindLatestBySymbol(ctx, symbol)
	if err != nil {
		s.logger.Error("Failed to get stock post", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return "", fmt.Errorf("failed to get post for %s: %w", symbol, err)
	}
	if post == nil {
		return fmt.Sprintf("No information found for symbol %s.", symbol), nil
	}
	return fmt.Sprintf("Information about %s: %s", symbol, post.Content), nil
}
