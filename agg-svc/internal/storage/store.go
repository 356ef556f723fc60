package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"foodcart/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	dailyRetention     = 7 * 24 * time.Hour
	processedRetention = 24 * time.Hour
	dateLayout         = "2006-01-02"

	itemNamesKey = "sales:items"
)

func DailyItemsKey(date string, restaurantID int) string {
	return fmt.Sprintf("sales:daily:%s:%d", date, restaurantID)
}

func DailyRevenueKey(date string) string {
	return "sales:revenue:" + date
}

func RestaurantSalesKey(restaurantID int) string {
	return fmt.Sprintf("restaurant:%d:sales", restaurantID)
}

// Store keeps sales counters in Redis and, when a database is configured,
// running per-restaurant totals in Postgres.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS restaurant_sales (
			restaurant_id INTEGER PRIMARY KEY,
			order_count INTEGER NOT NULL DEFAULT 0,
			revenue BIGINT NOT NULL DEFAULT 0,
			last_order_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// MarkProcessed records the order id and reports whether this is the first
// time it was seen.
func (s *Store) MarkProcessed(ctx context.Context, orderID string) (bool, error) {
	return s.rdb.SetNX(ctx, processedKey(orderID), 1, processedRetention).Result()
}

// ReleaseProcessed forgets the order id so a redelivery is counted.
func (s *Store) ReleaseProcessed(ctx context.Context, orderID string) error {
	return s.rdb.Del(ctx, processedKey(orderID)).Err()
}

func processedKey(orderID string) string {
	return "sales:processed:" + orderID
}

func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO restaurant_sales (restaurant_id, order_count, revenue, last_order_at)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (restaurant_id) DO UPDATE
		SET order_count = restaurant_sales.order_count + 1,
			revenue = restaurant_sales.revenue + EXCLUDED.revenue,
			last_order_at = GREATEST(restaurant_sales.last_order_at, EXCLUDED.last_order_at)`,
		event.RestaurantID, event.TotalAmount, s.placedAt(event))
	return err
}

func (s *Store) UpdateSales(ctx context.Context, event domain.OrderEvent) error {
	placed := s.placedAt(event)
	date := placed.Format(dateLayout)
	itemsKey := DailyItemsKey(date, event.RestaurantID)
	revenueKey := DailyRevenueKey(date)
	restaurant := strconv.Itoa(event.RestaurantID)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range event.Items {
			id := strconv.Itoa(item.ID)
			pipe.ZIncrBy(ctx, itemsKey, float64(item.Quantity), id)
			if item.Name != "" {
				pipe.HSet(ctx, itemNamesKey, id, item.Name)
			}
		}
		pipe.Expire(ctx, itemsKey, dailyRetention)

		pipe.ZIncrBy(ctx, revenueKey, float64(event.TotalAmount), restaurant)
		pipe.Expire(ctx, revenueKey, dailyRetention)

		salesKey := RestaurantSalesKey(event.RestaurantID)
		pipe.HIncrBy(ctx, salesKey, "orders", 1)
		pipe.HIncrBy(ctx, salesKey, "revenue", int64(event.TotalAmount))
		pipe.HSet(ctx, salesKey, "last_order_at", placed.Unix())
		return nil
	})
	return err
}

func (s *Store) placedAt(event domain.OrderEvent) time.Time {
	if event.Timestamp.IsZero() {
		return s.now().UTC()
	}
	return event.Timestamp.UTC()
}
