package entity

import "time"

// PostLevel scopes a post to a single stock or to the whole market.
type PostLevel string

const (
	PostLevelSymbol PostLevel = "SYMBOL"
	PostLevelMarket PostLevel = "MARKET"
)

// Post is an analysis record. Rows are append-only.
type Post struct {
	ID        uint      `gorm:"column:post_id;primaryKey" json:"post_id"`
	Title     string    `gorm:"column:title;type:text" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	StockID   *uint     `gorm:"column:stock_id" json:"stock_id,omitempty"`
	Sentiment string    `gorm:"column:sentiment;type:varchar(50)" json:"sentiment"`
	Topic     string    `gorm:"column:topic;type:varchar(100)" json:"topic"`
	Session   *int      `gorm:"column:session" json:"session,omitempty"`
	Level     PostLevel `gorm:"column:level;type:varchar(10);not null" json:"level"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Post model.
func (Post) TableName() string {
	return "post"
}
