package repository

import (
	"context"
	"errors"
	"fmt"

	"stock-intel/internal/entity"

	"gorm.io/gorm"
)

// PostRepository defines the append-only access to the post table.
type PostRepository interface {
	CreateStockPost(ctx context.Context, post *entity.Post) error
	CreateMarketPost(ctx context.Context, post *entity.Post) error
	FindLatestBySymbol(ctx context.Context, symbol string) (*entity.Post, error)
	FindLatestMarket(ctx context.Context) (*entity.Post, error)
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db *gorm.DB, stocks StockRepository) PostRepository {
	return &postRepository{
		db:     db,
		stocks: stocks,
	}
}

type postRepository struct {
	db     *gorm.DB
	stocks StockRepository
}

// CreateStockPost inserts a SYMBOL level post. Duplicates for the same stock accumulate.
func (r *postRepository) CreateStockPost(ctx context.Context, post *entity.Post) error {
	if post.StockID == nil {
		return fmt.Errorf("stock post requires a stock id")
	}
	post.Level = entity.PostLevelSymbol
	return r.db.WithContext(ctx).Create(post).Error
}

// CreateMarketPost inserts a MARKET level post without stock reference or session.
func (r *postRepository) CreateMarketPost(ctx context.Context, post *entity.Post) error {
	post.Level = entity.PostLevelMarket
	post.StockID = nil
	post.Session = nil
	return r.db.WithContext(ctx).Create(post).Error
}

// FindLatestBySymbol returns the newest SYMBOL post for the stock, or nil when the stock or post does not exist.
func (r *postRepository) FindLatestBySymbol(ctx context.Context, symbol string) (*entity.Post, error) {
	stockID, err := r.stocks.FindIDBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, entity.ErrStockNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var post entity.Post
	result := r.db.WithContext(ctx).
		Where("stock_id = ? AND level = ?", stockID, entity.PostLevelSymbol).
		Order("created_at DESC, post_id DESC").
		Take(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

// FindLatestMarket returns the newest MARKET post, or nil when none exists.
func (r *postRepository) FindLatestMarket(ctx context.Context) (*entity.Post, error) {
	var post entity.Post
	result := r.db.WithContext(ctx).
		Where("level = ?", entity.PostLevelMarket).
		Order("created_at DESC, post_id DESC").
		Take(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}
