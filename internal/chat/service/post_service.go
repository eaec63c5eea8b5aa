package service

import (
	"context"
	"time"

	"stock-intel/internal/chat/dto"
	"stock-intel/internal/chat/repository"
	"stock-intel/internal/entity"
	"stock-intel/pkg/common"
	"stock-intel/pkg/logger"
	"stock-intel/pkg/utils"
)

// PostService persists analyst output.
type PostService interface {
	SaveStockPost(ctx context.Context, req *dto.CreateStockPostRequest) (*dto.PostResponse, error)
	SaveMarketPost(ctx context.Context, req *dto.CreateMarketPostRequest) (*dto.PostResponse, error)
}

// NewPostService creates a new PostService.
func NewPostService(stocks repository.StockRepository, posts repository.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		stocks: stocks,
		posts:  posts,
		logger: logger,
		now:    time.Now,
	}
}

type postService struct {
	stocks repository.StockRepository
	posts  repository.PostRepository
	logger *logger.Logger
	now    func() time.Time
}

// SaveStockPost stores a SYMBOL post stamped with the current trading session.
// An unknown symbol returns an error wrapping entity.ErrStockNotFound and nothing is written.
func (s *postService) SaveStockPost(ctx context.Context, req *dto.CreateStockPostRequest) (*dto.PostResponse, error) {
	stockID, err := s.stocks.FindIDBySymbol(ctx, req.Symbol)
	if err != nil {
		s.logger.Warn("Stock lookup failed", logger.ErrorField(err), logger.StringField("symbol", req.Symbol))
		return nil, err
	}

	session := utils.TradingSession(s.now())
	post := &entity.Post{
		Title:     req.Title,
		Content:   req.Content,
		StockID:   &stockID,
		Sentiment: req.Sentiment,
		Topic:     req.Topic,
		Session:   &session,
	}
	if err := s.posts.CreateStockPost(ctx, post); err != nil {
		s.logger.Error("Failed to save stock post", logger.ErrorField(err), logger.StringField("symbol", req.Symbol))
		return nil, err
	}

	s.logger.Info("Stock post saved",
		logger.Field("post_id", post.ID),
		logger.StringField("symbol", req.Symbol),
		logger.IntField("session", session),
	)

	resp := mapToPostResponse(post)
	resp.Symbol = req.Symbol
	return resp, nil
}

// SaveMarketPost stores a MARKET post. Market posts have no session and no stock.
func (s *postService) SaveMarketPost(ctx context.Context, req *dto.CreateMarketPostRequest) (*dto.PostResponse, error) {
	post := &entity.Post{
		Title:     req.Title,
		Content:   req.Content,
		Sentiment: req.Sentiment,
		Topic:     common.TopicMarket,
	}
	if err := s.posts.CreateMarketPost(ctx, post); err != nil {
		s.logger.Error("Failed to save market post", logger.ErrorField(err))
		return nil, err
	}

	s.logger.Info("Market post saved", logger.Field("post_id", post.ID))
	return mapToPostResponse(post), nil
}

func mapToPostResponse(post *entity.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		StockID:   post.StockID,
		Sentiment: post.Sentiment,
		Topic:     post.Topic,
		Session:   post.Session,
		Level:     string(post.Level),
		CreatedAt: post.CreatedAt,
	}
}
