package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodcart/analytics-svc/internal/domain"
)

const (
	dateLayout   = "2006-01-02"
	defaultLimit = 10
	maxLimit     = 50
)

var ErrInvalidQuery = errors.New("invalid report query")

type ReportService struct {
	reader SalesReader
	now    func() time.Time
}

func NewReportService(reader SalesReader) *ReportService {
	return &ReportService{reader: reader, now: time.Now}
}

// WithClock replaces the time source used for the default report date.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

func (s *ReportService) RestaurantReport(ctx context.Context, restaurantID int, date string, limit int) (domain.SalesReport, error) {
	date, limit, err := s.normalize(date, limit)
	if err != nil {
		return domain.SalesReport{}, err
	}

	totals, err := s.reader.RestaurantTotals(ctx, restaurantID)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("restaurant totals: %w", err)
	}
	items, err := s.reader.TopItems(ctx, date, restaurantID, limit)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("top items: %w", err)
	}

	return domain.SalesReport{Date: date, Totals: totals, TopItems: items}, nil
}

func (s *ReportService) TopRestaurants(ctx context.Context, date string, limit int) ([]domain.RestaurantRevenue, error) {
	date, limit, err := s.normalize(date, limit)
	if err != nil {
		return nil, err
	}
	return s.reader.TopRestaurants(ctx, date, limit)
}

// normalize defaults the date to today (UTC) and clamps the limit.
func (s *ReportService) normalize(date string, limit int) (string, int, error) {
	if date == "" {
		date = s.now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return "", 0, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidQuery)
	}

	switch {
	case limit < 0:
		return "", 0, fmt.Errorf("%w: limit must be positive", ErrInvalidQuery)
	case limit == 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	return date, limit, nil
}
