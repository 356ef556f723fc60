package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"foodcart/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Keys written by agg-svc.
const itemNamesKey = "sales:items"

func dailyItemsKey(date string, restaurantID int) string {
	return fmt.Sprintf("sales:daily:%s:%d", date, restaurantID)
}

func dailyRevenueKey(date string) string {
	return "sales:revenue:" + date
}

func restaurantSalesKey(restaurantID int) string {
	return fmt.Sprintf("restaurant:%d:sales", restaurantID)
}

type SalesReader struct {
	rdb *redis.Client
}

func NewSalesReader(rdb *redis.Client) *SalesReader {
	return &SalesReader{rdb: rdb}
}

func (r *SalesReader) TopItems(ctx context.Context, date string, restaurantID, limit int) ([]domain.ItemSales, error) {
	members, err := r.rdb.ZRevRangeWithScores(ctx, dailyItemsKey(date, restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.ItemSales, 0, len(members))
	if len(members) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.Member.(string))
	}
	names, err := r.rdb.HMGet(ctx, itemNamesKey, ids...).Result()
	if err != nil {
		return nil, err
	}

	for i, member := range members {
		id, err := strconv.Atoi(ids[i])
		if err != nil {
			continue
		}
		name, _ := names[i].(string)
		items = append(items, domain.ItemSales{
			ItemID:   id,
			Name:     name,
			Quantity: int(member.Score),
		})
	}
	return items, nil
}

// RestaurantTotals returns zero totals for a restaurant with no orders yet.
func (r *SalesReader) RestaurantTotals(ctx context.Context, restaurantID int) (domain.RestaurantTotals, error) {
	totals := domain.RestaurantTotals{RestaurantID: restaurantID}
	fields, err := r.rdb.HGetAll(ctx, restaurantSalesKey(restaurantID)).Result()
	if err != nil {
		return totals, err
	}

	totals.Orders, _ = strconv.Atoi(fields["orders"])
	totals.Revenue, _ = strconv.Atoi(fields["revenue"])
	if unix, err := strconv.ParseInt(fields["last_order_at"], 10, 64); err == nil {
		last := time.Unix(unix, 0).UTC()
		totals.LastOrderAt = &last
	}
	return totals, nil
}

func (r *SalesReader) TopRestaurants(ctx context.Context, date string, limit int) ([]domain.RestaurantRevenue, error) {
	members, err := r.rdb.ZRevRangeWithScores(ctx, dailyRevenueKey(date), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.RestaurantRevenue, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		top = append(top, domain.RestaurantRevenue{RestaurantID: id, Revenue: int(member.Score)})
	}
	return top, nil
}
