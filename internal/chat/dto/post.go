package dto

import "time"

// CreateStockPostRequest carries analyst output for a single stock.
type CreateStockPostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Symbol    string `json:"symbol" validate:"required,max=20"`
	Sentiment string `json:"sentiment" validate:"max=50"`
	Topic     string `json:"topic" validate:"max=100"`
}

// CreateMarketPostRequest carries analyst output for the whole market.
type CreateMarketPostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Sentiment string `json:"sentiment" validate:"max=50"`
}

// PostResponse is the stored post as returned by the API.
type PostResponse struct {
	ID        uint      `json:"post_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Symbol    string    `json:"symbol,omitempty"`
	StockID   *uint     `json:"stock_id,omitempty"`
	Sentiment string    `json:"sentiment"`
	Topic     string    `json:"topic"`
	Session   *int      `json:"session,omitempty"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}
