package repository

import (
	"context"
	"testing"
	"time"

	"stock-intel/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var postColumns = []string{"post_id", "title", "content", "stock_id", "sentiment", "topic", "session", "level", "created_at"}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

type fakeStockRepository struct {
	ids   map[string]uint
	calls []string
}

func (f *fakeStockRepository) FindIDBySymbol(_ context.Context, symbol string) (uint, error) {
	f.calls = append(f.calls, symbol)
	id, ok := f.ids[symbol]
	if !ok {
		return 0, entity.ErrStockNotFound
	}
	return id, nil
}

func TestStockRepository_FindIDBySymbol(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStockRepository(db)

	mock.ExpectQuery(`SELECT "stock_id" FROM "stock" WHERE symbol = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"stock_id"}).AddRow(42))

	id, err := repo.FindIDBySymbol(context.Background(), "VCB")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_FindIDBySymbol_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStockRepository(db)

	mock.ExpectQuery(`SELECT "stock_id" FROM "stock" WHERE symbol = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"stock_id"}))

	_, err := repo.FindIDBySymbol(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, entity.ErrStockNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CreateStockPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, &fakeStockRepository{})

	mock.ExpectQuery(`INSERT INTO "post"`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(7))

	stockID := uint(42)
	session := 2
	post := &entity.Post{
		Title:     "VCB outlook",
		Content:   "Strong deposits",
		StockID:   &stockID,
		Sentiment: "positive",
		Topic:     "BANKING",
		Session:   &session,
		Level:     entity.PostLevelMarket,
	}

	require.NoError(t, repo.CreateStockPost(context.Background(), post))
	assert.Equal(t, uint(7), post.ID)
	assert.Equal(t, entity.PostLevelSymbol, post.Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CreateStockPost_RequiresStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, &fakeStockRepository{})

	err := repo.CreateStockPost(context.Background(), &entity.Post{Title: "orphan"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CreateMarketPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, &fakeStockRepository{})

	mock.ExpectQuery(`INSERT INTO "post"`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(9))

	stockID := uint(1)
	session := 1
	post := &entity.Post{Title: "Market wrap", Content: "Mixed", Sentiment: "neutral", StockID: &stockID, Session: &session}

	require.NoError(t, repo.CreateMarketPost(context.Background(), post))
	assert.Equal(t, uint(9), post.ID)
	assert.Equal(t, entity.PostLevelMarket, post.Level)
	assert.Nil(t, post.StockID)
	assert.Nil(t, post.Session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FindLatestBySymbol(t *testing.T) {
	db, mock := newMockDB(t)
	stocks := &fakeStockRepository{ids: map[string]uint{"VCB": 42}}
	repo := NewPostRepository(db, stocks)

	created := time.Date(2025, time.June, 12, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "post" WHERE stock_id = \$1 AND level = \$2 ORDER BY created_at DESC, post_id DESC`).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(3, "VCB outlook", "Strong deposits", 42, "positive", "BANKING", 1, "SYMBOL", created))

	post, err := repo.FindLatestBySymbol(context.Background(), "VCB")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Strong deposits", post.Content)
	assert.Equal(t, entity.PostLevelSymbol, post.Level)
	assert.Equal(t, []string{"VCB"}, stocks.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FindLatestBySymbol_UnknownStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, &fakeStockRepository{ids: map[string]uint{}})

	post, err := repo.FindLatestBySymbol(context.Background(), "ZZZ")
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FindLatestBySymbol_NoPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, &fakeStockRepository{ids: map[string]uint{"FPT": 5}})

	mock.ExpectQuery(`SELECT \* FROM "post" WHERE stock_id = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns))

	post, err := repo.FindLatestBySymbol(context.Background(), "FPT")
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FindLatestMarket(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, &fakeStockRepository{})

	created := time.Date(2025, time.June, 12, 16, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "post" WHERE level = \$1 ORDER BY created_at DESC, post_id DESC`).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(11, "Market wrap", "VN-Index up 1%", nil, "positive", "MARKET", nil, "MARKET", created))

	post, err := repo.FindLatestMarket(context.Background())
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "VN-Index up 1%", post.Content)
	assert.Nil(t, post.StockID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FindLatestMarket_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, &fakeStockRepository{})

	mock.ExpectQuery(`SELECT \* FROM "post" WHERE level = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns))

	post, err := repo.FindLatestMarket(context.Background())
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}
