package service

import (
	"context"

	"foodcart/catalog-svc/internal/browse"
	"foodcart/catalog-svc/internal/domain"
)

type RestaurantRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type CatalogCache interface {
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, bool, error)
	SetRestaurants(ctx context.Context, restaurants []domain.Restaurant) error
}

// FallbackSource produces the local catalog used when no store answers.
type FallbackSource interface {
	Restaurants() []domain.Restaurant
	MenuItems(restaurantID int) []domain.MenuItem
}

type CatalogServiceInterface interface {
	FetchRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	FetchMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	Browse(ctx context.Context, q browse.Query) (browse.Result, error)
	Cuisines(ctx context.Context) ([]string, error)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
