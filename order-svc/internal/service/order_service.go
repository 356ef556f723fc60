package service

import (
	"context"
	"fmt"
	"time"

	"foodcart/order-svc/internal/domain"
	"foodcart/order-svc/internal/tracking"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const statusConfirmed = "confirmed"

// OrderService writes orders to the order store. With no repository wired
// every order is reported as a demo success. In lenient mode store failures
// are logged and also reported as demo successes; strict mode returns them.
type OrderService struct {
	repository OrderRepository
	qr         QRGenerator
	publisher  OrderPublisher
	strict     bool
	log        logrus.FieldLogger
	now        func() time.Time
}

func NewOrderService(repository OrderRepository, qr QRGenerator, publisher OrderPublisher, strict bool, log logrus.FieldLogger) *OrderService {
	return &OrderService{
		repository: repository,
		qr:         qr,
		publisher:  publisher,
		strict:     strict,
		log:        log,
		now:        time.Now,
	}
}

// WithClock replaces the time source used for new orders and tracking.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func (s *OrderService) Create(ctx context.Context, order *domain.Order) (domain.SubmitResult, error) {
	s.applyDefaults(order)
	log := s.log.WithFields(logrus.Fields{"order_id": order.ID, "restaurant_id": order.RestaurantID})

	if s.repository == nil {
		return demoResult(order), nil
	}

	exists, err := s.repository.RestaurantExists(ctx, order.RestaurantID)
	if err != nil {
		return s.writeFailed(ctx, log, order, "restaurant lookup", err)
	}
	if !exists {
		if s.strict {
			return domain.SubmitResult{}, fmt.Errorf("%w: %d", ErrUnknownRestaurant, order.RestaurantID)
		}
		substitute, ok, err := s.repository.AnyRestaurantID(ctx)
		if err != nil {
			return s.writeFailed(ctx, log, order, "restaurant lookup", err)
		}
		if !ok {
			log.Warn("no restaurants stored, reporting demo order")
			return demoResult(order), nil
		}
		log.WithField("substitute_restaurant_id", substitute).Warn("unknown restaurant, substituting")
		order.RestaurantID = substitute
	}

	if err := s.repository.InsertOrder(ctx, order); err != nil {
		return s.writeFailed(ctx, log, order, "order insert", err)
	}

	s.attachQRCode(ctx, log, order)
	s.publish(ctx, log, order)

	log.Info("order stored")
	return domain.SubmitResult{Success: true, Order: order}, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	if s.repository == nil {
		return nil, domain.ErrOrderNotFound
	}
	return s.repository.GetOrder(ctx, orderID)
}

func (s *OrderService) Tracking(ctx context.Context, orderID string) (tracking.Progress, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return tracking.Progress{}, err
	}
	return tracking.At(order.CreatedAt, s.now()), nil
}

// GetQRCode returns the stored code, regenerating and caching it when the
// order was stored without one.
func (s *OrderService) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	if s.repository == nil {
		return nil, domain.ErrOrderNotFound
	}

	qr, err := s.repository.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) > 0 {
		return qr, nil
	}

	qr, err = s.qr.Generate(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.repository.SaveQRCode(ctx, orderID, qr); err != nil {
		s.log.WithError(err).WithField("order_id", orderID).Warn("failed to cache regenerated QR code")
	}
	return qr, nil
}

func (s *OrderService) applyDefaults(order *domain.Order) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentCard
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = domain.PaymentPending
	}
	if order.Status == "" {
		order.Status = statusConfirmed
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now().UTC()
	}
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
}

func (s *OrderService) writeFailed(ctx context.Context, log logrus.FieldLogger, order *domain.Order, op string, err error) (domain.SubmitResult, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.SubmitResult{}, ctxErr
	}
	if s.strict {
		return domain.SubmitResult{}, fmt.Errorf("%w: %s: %v", ErrSubmitFailed, op, err)
	}
	log.WithError(err).Warnf("%s failed, reporting demo order", op)
	return demoResult(order), nil
}

func (s *OrderService) attachQRCode(ctx context.Context, log logrus.FieldLogger, order *domain.Order) {
	if s.qr == nil {
		return
	}
	qr, err := s.qr.Generate(order.ID)
	if err != nil {
		log.WithError(err).Warn("failed to generate QR code")
		return
	}
	if err := s.repository.SaveQRCode(ctx, order.ID, qr); err != nil {
		log.WithError(err).Warn("failed to store QR code")
	}
}

func (s *OrderService) publish(ctx context.Context, log logrus.FieldLogger, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Items:        order.Items,
		TotalAmount:  order.TotalAmount,
		Timestamp:    order.CreatedAt,
	}
	if err := s.publisher.PublishOrder(ctx, event); err != nil {
		log.WithError(err).Warn("failed to publish order event")
	}
}

func demoResult(order *domain.Order) domain.SubmitResult {
	return domain.SubmitResult{Success: true, Demo: true, Order: order}
}
