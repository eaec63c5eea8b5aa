package repository

import (
	"context"
	"errors"
	"fmt"

	"stock-intel/internal/entity"

	"gorm.io/gorm"
)

// StockRepository reads the externally owned stock table.
type StockRepository interface {
	FindIDBySymbol(ctx context.Context, symbol string) (uint, error)
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new StockRepository.
func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

// FindIDBySymbol returns the stock_id for an exact symbol match or an error wrapping entity.ErrStockNotFound.
func (r *stockRepository) FindIDBySymbol(ctx context.Context, symbol string) (uint, error) {
	var stock entity.Stock
	err := r.db.WithContext(ctx).Select("stock_id").Where("symbol = ?", symbol).Take(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: symbol %s", entity.ErrStockNotFound, symbol)
		}
		return 0, fmt.Errorf("failed to find stock %s: %w", symbol, err)
	}
	return stock.ID, nil
}
