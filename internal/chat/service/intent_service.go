package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stock-intel/internal/chat/repository"
	"stock-intel/pkg/common"
	"stock-intel/pkg/logger"
)

// ErrProviderFailure marks a failed call to the language model provider.
var ErrProviderFailure = errors.New("language model provider failure")

// IntentKind is the classified purpose of a chat message.
type IntentKind int

const (
	IntentSymbol IntentKind = iota
	IntentMarket
	IntentOther
)

// Intent is the interpreted classifier output. Symbol is set only for IntentSymbol.
type Intent struct {
	Kind   IntentKind
	Symbol string
}

// IntentClassifier maps raw message text to a single token: a symbol, "MARKET" or "OTHER".
type IntentClassifier interface {
	Classify(ctx context.Context, message string) (string, error)
}

// Assistant answers free-form questions that are not about a stored analysis.
type Assistant interface {
	Reply(ctx context.Context, message string) (string, error)
}

// NewLLMIntentClassifier creates an IntentClassifier that prompts the given model.
func NewLLMIntentClassifier(llm repository.LLMRepository, model string) IntentClassifier {
	return &llmIntentClassifier{llm: llm, model: model}
}

type llmIntentClassifier struct {
	llm   repository.LLMRepository
	model string
}

func (c *llmIntentClassifier) Classify(ctx context.Context, message string) (string, error) {
	return c.llm.Complete(ctx, c.model, intentSystemPrompt, message)
}

// NewLLMAssistant creates an Assistant backed by the given model.
func NewLLMAssistant(llm repository.LLMRepository, model string) Assistant {
	return &llmAssistant{llm: llm, model: model}
}

type llmAssistant struct {
	llm   repository.LLMRepository
	model string
}

func (a *llmAssistant) Reply(ctx context.Context, message string) (string, error) {
	return a.llm.Complete(ctx, a.model, assistantSystemPrompt, message)
}

// IntentService resolves a chat message into an Intent.
type IntentService interface {
	Resolve(ctx context.Context, message string) (Intent, error)
}

// NewIntentService creates a new IntentService.
func NewIntentService(classifier IntentClassifier, logger *logger.Logger) IntentService {
	return &intentService{
		classifier: classifier,
		logger:     logger,
	}
}

type intentService struct {
	classifier IntentClassifier
	logger     *logger.Logger
}

// Resolve classifies the message. The returned symbol is not checked against the stock table.
func (s *intentService) Resolve(ctx context.Context, message string) (Intent, error) {
	raw, err := s.classifier.Classify(ctx, message)
	if err != nil {
		s.logger.Error("Intent classification failed", logger.ErrorField(err))
		return Intent{}, fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}

	intent := ParseIntent(raw)
	s.logger.Debug("Resolved intent", logger.StringField("raw", raw), logger.IntField("kind", int(intent.Kind)))
	return intent, nil
}

// ParseIntent interprets the classifier output. Blank output is treated as OTHER.
func ParseIntent(raw string) Intent {
	token := strings.TrimSpace(raw)
	switch token {
	case common.IntentMarket:
		return Intent{Kind: IntentMarket}
	case common.IntentOther, "":
		return Intent{Kind: IntentOther}
	default:
		return Intent{Kind: IntentSymbol, Symbol: token}
	}
}
