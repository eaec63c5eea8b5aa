package entity

import "errors"

// ErrStockNotFound is returned when no stock row matches a symbol.
var ErrStockNotFound = errors.New("stock not found")

// Stock is owned by the ingestion pipeline; this service only reads it.
type Stock struct {
	ID     uint   `gorm:"column:stock_id;primaryKey"`
	Symbol string `gorm:"column:symbol;uniqueIndex;not null"`
}

// TableName specifies the table name for the Stock model.
func (Stock) TableName() string {
	return "stock"
}
