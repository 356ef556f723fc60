package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodcart/order-svc/internal/domain"
	"foodcart/order-svc/internal/mocks"
	"foodcart/order-svc/internal/service"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrder(restaurantID int) *domain.Order {
	return &domain.Order{
		UserID:       "user-1",
		RestaurantID: restaurantID,
		Items:        []domain.OrderItem{{ID: 1000, Name: "Paneer Tikka", Price: 180, Quantity: 2}},
		TotalAmount:  418,
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("insert or update on table violates constraint")

	tests := []struct {
		name             string
		strict           bool
		restaurantID     int
		prepareMocks     func(*mocks.OrderRepository, *mocks.QRGenerator, *mocks.OrderPublisher)
		wantErr          error
		wantDemo         bool
		wantRestaurantID int
	}{
		{
			name:         "success_known_restaurant",
			restaurantID: 5,
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				repo.On("RestaurantExists", ctx, 5).Return(true, nil).Once()
				repo.On("InsertOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				qr.On("Generate", mock.AnythingOfType("string")).Return([]byte("png"), nil).Once()
				repo.On("SaveQRCode", ctx, mock.AnythingOfType("string"), []byte("png")).Return(nil).Once()
				pub.On("PublishOrder", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderPlaced && e.RestaurantID == 5 && e.TotalAmount == 418
				})).Return(nil).Once()
			},
			wantRestaurantID: 5,
		},
		{
			name:         "unknown_restaurant_is_repaired",
			restaurantID: 999,
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				repo.On("RestaurantExists", ctx, 999).Return(false, nil).Once()
				repo.On("AnyRestaurantID", ctx).Return(3, true, nil).Once()
				repo.On("InsertOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool { return o.RestaurantID == 3 })).Return(nil).Once()
				qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
				repo.On("SaveQRCode", ctx, mock.Anything, mock.Anything).Return(nil).Once()
				pub.On("PublishOrder", ctx, mock.Anything).Return(nil).Once()
			},
			wantRestaurantID: 3,
		},
		{
			name:         "unknown_restaurant_and_empty_store_is_demo",
			restaurantID: 999,
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				repo.On("RestaurantExists", ctx, 999).Return(false, nil).Once()
				repo.On("AnyRestaurantID", ctx).Return(0, false, nil).Once()
			},
			wantDemo:         true,
			wantRestaurantID: 999,
		},
		{
			name:         "unknown_restaurant_strict",
			strict:       true,
			restaurantID: 999,
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				repo.On("RestaurantExists", ctx, 999).Return(false, nil).Once()
			},
			wantErr: service.ErrUnknownRestaurant,
		},
		{
			name:         "insert_failure_lenient_is_demo",
			restaurantID: 5,
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				repo.On("RestaurantExists", ctx, 5).Return(true, nil).Once()
				repo.On("InsertOrder", ctx, mock.Anything).Return(storeErr).Once()
			},
			wantDemo:         true,
			wantRestaurantID: 5,
		},
		{
			name:         "insert_failure_strict",
			strict:       true,
			restaurantID: 5,
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				repo.On("RestaurantExists", ctx, 5).Return(true, nil).Once()
				repo.On("InsertOrder", ctx, mock.Anything).Return(storeErr).Once()
			},
			wantErr: service.ErrSubmitFailed,
		},
		{
			name:         "lookup_failure_strict",
			strict:       true,
			restaurantID: 5,
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				repo.On("RestaurantExists", ctx, 5).Return(false, errors.New("connection reset")).Once()
			},
			wantErr: service.ErrSubmitFailed,
		},
		{
			name:         "publish_failure_still_succeeds",
			restaurantID: 5,
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator, pub *mocks.OrderPublisher) {
				repo.On("RestaurantExists", ctx, 5).Return(true, nil).Once()
				repo.On("InsertOrder", ctx, mock.Anything).Return(nil).Once()
				qr.On("Generate", mock.Anything).Return(nil, errors.New("qr too large")).Once()
				pub.On("PublishOrder", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantRestaurantID: 5,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			qr := mocks.NewQRGenerator(t)
			pub := mocks.NewOrderPublisher(t)
			testCase.prepareMocks(repo, qr, pub)

			logger, _ := logtest.NewNullLogger()
			svc := service.NewOrderService(repo, qr, pub, testCase.strict, logger)

			result, err := svc.Create(ctx, newOrder(testCase.restaurantID))
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.False(t, result.Success)
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, testCase.wantDemo, result.Demo)
			require.NotNil(t, result.Order)
			assert.Equal(t, testCase.wantRestaurantID, result.Order.RestaurantID)
		})
	}
}

func TestOrderService_CreateAppliesDefaults(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	placed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := service.NewOrderService(nil, nil, nil, true, logger).WithClock(func() time.Time { return placed })

	result, err := svc.Create(context.Background(), newOrder(1))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Demo, "orders without a store are demo orders")
	assert.NotEmpty(t, result.Order.ID)
	assert.Equal(t, domain.PaymentCard, result.Order.PaymentMethod)
	assert.Equal(t, domain.PaymentPending, result.Order.PaymentStatus)
	assert.Equal(t, "confirmed", result.Order.Status)
	assert.Equal(t, placed, result.Order.CreatedAt)
}

func TestOrderService_CreateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := mocks.NewOrderRepository(t)
	repo.On("RestaurantExists", ctx, 5).Return(false, context.Canceled).Once()

	logger, _ := logtest.NewNullLogger()
	svc := service.NewOrderService(repo, nil, nil, false, logger)

	_, err := svc.Create(ctx, newOrder(5))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrderService_Tracking(t *testing.T) {
	placed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", mock.Anything, "abc").Return(&domain.Order{ID: "abc", CreatedAt: placed}, nil).Once()
	repo.On("GetOrder", mock.Anything, "missing").Return(nil, domain.ErrOrderNotFound).Once()

	logger, _ := logtest.NewNullLogger()
	svc := service.NewOrderService(repo, nil, nil, false, logger).
		WithClock(func() time.Time { return placed.Add(70 * time.Second) })

	progress, err := svc.Tracking(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "ready", progress.Status)
	assert.Equal(t, 25, progress.EstimatedMinutes)

	_, err = svc.Tracking(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_GetQRCode(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(*mocks.OrderRepository, *mocks.QRGenerator)
		want         []byte
		wantErr      error
	}{
		{
			name: "stored_code",
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator) {
				repo.On("GetQRCode", mock.Anything, "o-1").Return([]byte("stored"), nil).Once()
			},
			want: []byte("stored"),
		},
		{
			name: "regenerates_missing_code",
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator) {
				repo.On("GetQRCode", mock.Anything, "o-1").Return(nil, nil).Once()
				qr.On("Generate", "o-1").Return([]byte("fresh"), nil).Once()
				repo.On("SaveQRCode", mock.Anything, "o-1", []byte("fresh")).Return(errors.New("read only")).Once()
			},
			want: []byte("fresh"),
		},
		{
			name: "unknown_order",
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator) {
				repo.On("GetQRCode", mock.Anything, "o-1").Return(nil, domain.ErrOrderNotFound).Once()
			},
			wantErr: domain.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			qr := mocks.NewQRGenerator(t)
			testCase.prepareMocks(repo, qr)

			logger, _ := logtest.NewNullLogger()
			svc := service.NewOrderService(repo, qr, nil, false, logger)

			got, err := svc.GetQRCode(context.Background(), "o-1")
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestTrackingQRGenerator(t *testing.T) {
	png, err := service.TrackingQRGenerator{BaseURL: "http://localhost:8080/"}.Generate("o-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestPublishers_FanOut(t *testing.T) {
	ctx := context.Background()
	event := domain.OrderEvent{Type: domain.EventOrderPlaced, OrderID: "o-1"}

	kafka := mocks.NewOrderPublisher(t)
	rabbit := mocks.NewOrderPublisher(t)
	kafka.On("PublishOrder", ctx, event).Return(errors.New("leader not available")).Once()
	rabbit.On("PublishOrder", ctx, event).Return(nil).Once()

	err := service.Publishers{kafka, rabbit}.PublishOrder(ctx, event)
	assert.ErrorContains(t, err, "leader not available")

	assert.NoError(t, service.Publishers{}.PublishOrder(ctx, event))
}
