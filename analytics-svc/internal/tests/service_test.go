package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodcart/analytics-svc/internal/domain"
	"foodcart/analytics-svc/internal/mocks"
	"foodcart/analytics-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC) }

func TestReportService_RestaurantReport(t *testing.T) {
	tests := []struct {
		name       string
		date       string
		limit      int
		setupMocks func(*mocks.SalesReader)
		wantDate   string
		wantErr    error
	}{
		{
			name:  "defaults to today and ten items",
			limit: 0,
			setupMocks: func(reader *mocks.SalesReader) {
				reader.On("RestaurantTotals", mock.Anything, 10).Return(domain.RestaurantTotals{RestaurantID: 10, Orders: 2}, nil).Once()
				reader.On("TopItems", mock.Anything, "2024-05-01", 10, 10).Return([]domain.ItemSales{{ItemID: 1, Quantity: 3}}, nil).Once()
			},
			wantDate: "2024-05-01",
		},
		{
			name:  "explicit date and clamped limit",
			date:  "2024-04-30",
			limit: 500,
			setupMocks: func(reader *mocks.SalesReader) {
				reader.On("RestaurantTotals", mock.Anything, 10).Return(domain.RestaurantTotals{RestaurantID: 10}, nil).Once()
				reader.On("TopItems", mock.Anything, "2024-04-30", 10, 50).Return([]domain.ItemSales{}, nil).Once()
			},
			wantDate: "2024-04-30",
		},
		{
			name:       "bad date",
			date:       "01/05/2024",
			setupMocks: func(reader *mocks.SalesReader) {},
			wantErr:    service.ErrInvalidQuery,
		},
		{
			name:       "negative limit",
			limit:      -1,
			setupMocks: func(reader *mocks.SalesReader) {},
			wantErr:    service.ErrInvalidQuery,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			reader := mocks.NewSalesReader(t)
			testCase.setupMocks(reader)
			svc := service.NewReportService(reader).WithClock(fixedNow)

			report, err := svc.RestaurantReport(context.Background(), 10, testCase.date, testCase.limit)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantDate, report.Date)
			assert.Equal(t, 10, report.Totals.RestaurantID)
		})
	}
}

func TestReportService_ReaderFailure(t *testing.T) {
	reader := mocks.NewSalesReader(t)
	reader.On("RestaurantTotals", mock.Anything, 3).Return(domain.RestaurantTotals{}, errors.New("redis: connection refused")).Once()

	_, err := service.NewReportService(reader).WithClock(fixedNow).RestaurantReport(context.Background(), 3, "", 0)
	assert.ErrorContains(t, err, "restaurant totals")
}

func TestReportService_TopRestaurants(t *testing.T) {
	reader := mocks.NewSalesReader(t)
	reader.On("TopRestaurants", mock.Anything, "2024-05-01", 5).
		Return([]domain.RestaurantRevenue{{RestaurantID: 4, Revenue: 1250}}, nil).Once()

	top, err := service.NewReportService(reader).WithClock(fixedNow).TopRestaurants(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}
