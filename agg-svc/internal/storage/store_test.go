package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodcart/agg-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func sampleEvent() domain.OrderEvent {
	return domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      "o-1",
		RestaurantID: 10,
		Items: []domain.OrderItem{
			{ID: 10000, Name: "Masala Dosa", Price: 120, Quantity: 2},
			{ID: 10001, Name: "Filter Coffee", Price: 40, Quantity: 1},
		},
		TotalAmount: 334,
		Timestamp:   time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC),
	}
}

func TestUpdateSales(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)
	ctx := context.Background()

	require.NoError(t, store.UpdateSales(ctx, sampleEvent()))
	require.NoError(t, store.UpdateSales(ctx, sampleEvent()))

	itemsKey := DailyItemsKey("2024-05-01", 10)
	score, err := mr.ZScore(itemsKey, "10000")
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)
	assert.Equal(t, dailyRetention, mr.TTL(itemsKey))

	revenue, err := mr.ZScore(DailyRevenueKey("2024-05-01"), "10")
	require.NoError(t, err)
	assert.Equal(t, 668.0, revenue)

	salesKey := RestaurantSalesKey(10)
	assert.Equal(t, "2", mr.HGet(salesKey, "orders"))
	assert.Equal(t, "668", mr.HGet(salesKey, "revenue"))
	assert.Equal(t, "Filter Coffee", mr.HGet(itemNamesKey, "10001"))
}

func TestUpdateSales_ZeroTimestampUsesClock(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)
	store.now = func() time.Time { return time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC) }

	event := sampleEvent()
	event.Timestamp = time.Time{}
	require.NoError(t, store.UpdateSales(context.Background(), event))

	assert.True(t, mr.Exists(DailyItemsKey("2024-06-02", 10)))
}

func TestMarkProcessed(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)
	ctx := context.Background()

	first, err := store.MarkProcessed(ctx, "o-1")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = store.MarkProcessed(ctx, "o-1")
	require.NoError(t, err)
	assert.False(t, first)

	mr.FastForward(processedRetention + time.Minute)
	first, err = store.MarkProcessed(ctx, "o-1")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestReleaseProcessed(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)
	ctx := context.Background()

	_, err := store.MarkProcessed(ctx, "o-1")
	require.NoError(t, err)
	require.NoError(t, store.ReleaseProcessed(ctx, "o-1"))
	assert.False(t, mr.Exists("sales:processed:o-1"))

	first, err := store.MarkProcessed(ctx, "o-1")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestRecordOrder(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	_, rdb := setupRedis(t)
	store := NewStore(mockDB, rdb)
	event := sampleEvent()

	mock.ExpectExec("INSERT INTO restaurant_sales").
		WithArgs(10, 334, event.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO restaurant_sales").
		WillReturnError(errors.New("connection lost"))

	require.NoError(t, store.RecordOrder(context.Background(), event))
	assert.Error(t, store.RecordOrder(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordOrder_WithoutDatabase(t *testing.T) {
	_, rdb := setupRedis(t)
	store := NewStore(nil, rdb)

	assert.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, store.RecordOrder(context.Background(), sampleEvent()))
}

func TestEnsureSchema(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS restaurant_sales").WillReturnResult(sqlmock.NewResult(0, 0))

	_, rdb := setupRedis(t)
	require.NoError(t, NewStore(mockDB, rdb).EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
