package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"foodcart/catalog-svc/internal/browse"
	"foodcart/catalog-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

var (
	ErrCatalogUnavailable = errors.New("catalog store unavailable")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// CatalogService reads the catalog from the remote store when one is wired
// and from the fallback generator otherwise. In lenient mode store failures
// are logged and answered from the fallback; in strict mode they surface as
// ErrCatalogUnavailable.
type CatalogService struct {
	repository RestaurantRepository
	cache      CatalogCache
	fallback   FallbackSource
	strict     bool
	log        logrus.FieldLogger

	fallbackOnce        sync.Once
	fallbackRestaurants []domain.Restaurant
}

// NewCatalogService accepts nil repository and cache. Without a repository
// every read is served from the fallback regardless of mode.
func NewCatalogService(repository RestaurantRepository, cache CatalogCache, fallback FallbackSource, strict bool, log logrus.FieldLogger) *CatalogService {
	return &CatalogService{
		repository: repository,
		cache:      cache,
		fallback:   fallback,
		strict:     strict,
		log:        log,
	}
}

func (s *CatalogService) FetchRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	if s.repository == nil {
		return s.generatedRestaurants(), nil
	}

	if s.cache != nil {
		cached, ok, err := s.cache.GetRestaurants(ctx)
		if err != nil {
			s.log.WithError(err).Warn("catalog cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	restaurants, err := s.repository.ListRestaurants(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if s.strict {
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		s.log.WithError(err).Warn("restaurant fetch failed, serving generated catalog")
		return s.generatedRestaurants(), nil
	}
	if len(restaurants) == 0 {
		s.log.Info("restaurant store is empty, serving generated catalog")
		return s.generatedRestaurants(), nil
	}

	if s.cache != nil {
		if err := s.cache.SetRestaurants(ctx, restaurants); err != nil {
			s.log.WithError(err).Warn("catalog cache write failed")
		}
	}
	return restaurants, nil
}

func (s *CatalogService) FetchMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	if s.repository == nil {
		return s.fallback.MenuItems(restaurantID), nil
	}

	items, err := s.repository.ListMenuItems(ctx, restaurantID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if s.strict {
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		s.log.WithError(err).WithField("restaurant_id", restaurantID).Warn("menu fetch failed, serving generated menu")
		return s.fallback.MenuItems(restaurantID), nil
	}
	if len(items) == 0 {
		return s.fallback.MenuItems(restaurantID), nil
	}
	return items, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	restaurants, err := s.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		if restaurants[i].ID == id {
			rest := restaurants[i]
			return &rest, nil
		}
	}
	return nil, ErrRestaurantNotFound
}

func (s *CatalogService) Browse(ctx context.Context, q browse.Query) (browse.Result, error) {
	restaurants, err := s.FetchRestaurants(ctx)
	if err != nil {
		return browse.Result{}, err
	}
	return browse.Run(restaurants, q), nil
}

func (s *CatalogService) Cuisines(ctx context.Context) ([]string, error) {
	restaurants, err := s.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return browse.Cuisines(restaurants), nil
}

func (s *CatalogService) generatedRestaurants() []domain.Restaurant {
	s.fallbackOnce.Do(func() {
		s.fallbackRestaurants = s.fallback.Restaurants()
	})
	return s.fallbackRestaurants
}
