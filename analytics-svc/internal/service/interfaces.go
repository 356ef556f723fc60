package service

import (
	"context"

	"foodcart/analytics-svc/internal/domain"
	"foodcart/analytics-svc/internal/storage"
)

type SalesReader interface {
	TopItems(ctx context.Context, date string, restaurantID, limit int) ([]domain.ItemSales, error)
	RestaurantTotals(ctx context.Context, restaurantID int) (domain.RestaurantTotals, error)
	TopRestaurants(ctx context.Context, date string, limit int) ([]domain.RestaurantRevenue, error)
}

type ReportServiceInterface interface {
	RestaurantReport(ctx context.Context, restaurantID int, date string, limit int) (domain.SalesReport, error)
	TopRestaurants(ctx context.Context, date string, limit int) ([]domain.RestaurantRevenue, error)
}

var (
	_ SalesReader            = (*storage.SalesReader)(nil)
	_ ReportServiceInterface = (*ReportService)(nil)
)
