package service

import (
	"context"
	"fmt"

	"stock-intel/internal/entity"
)

type fakeClassifier struct {
	out string
	err error
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (string, error) {
	return f.out, f.err
}

type fakeAssistant struct {
	answer   string
	err      error
	messages []string
}

func (f *fakeAssistant) Reply(_ context.Context, message string) (string, error) {
	f.messages = append(f.messages, message)
	return f.answer, f.err
}

type fakeStockRepository struct {
	ids map[string]uint
}

func (f *fakeStockRepository) FindIDBySymbol(_ context.Context, symbol string) (uint, error) {
	id, ok := f.ids[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: symbol %s", entity.ErrStockNotFound, symbol)
	}
	return id, nil
}

type fakePostRepository struct {
	bySymbol map[string]*entity.Post
	market   *entity.Post
	err      error
	created  []*entity.Post
}

func (f *fakePostRepository) CreateStockPost(_ context.Context, post *entity.Post) error {
	if f.err != nil {
		return f.err
	}
	post.ID = uint(len(f.created) + 1)
	post.Level = entity.PostLevelSymbol
	f.created = append(f.created, post)
	return nil
}

func (f *fakePostRepository) CreateMarketPost(_ context.Context, post *entity.Post) error {
	if f.err != nil {
		return f.err
	}
	post.ID = uint(len(f.created) + 1)
	post.Level = entity.PostLevelMarket
	f.created = append(f.created, post)
	return nil
}

func (f *fakePostRepository) FindLatestBySymbol(_ context.Context, symbol string) (*entity.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySymbol[symbol], nil
}

func (f *fakePostRepository) FindLatestMarket(_ context.Context) (*entity.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.market, nil
}

type llmCall struct {
	model        string
	systemPrompt string
	message      string
}

type fakeLLMRepository struct {
	out   string
	err   error
	calls []llmCall
}

func (f *fakeLLMRepository) Complete(_ context.Context, model, systemPrompt, message string) (string, error) {
	f.calls = append(f.calls, llmCall{model: model, systemPrompt: systemPrompt, message: message})
	return f.out, f.err
}
