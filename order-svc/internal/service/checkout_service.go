package service

import (
	"context"
	"strings"
	"time"

	"foodcart/order-svc/internal/cart"
	"foodcart/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

const guestUserID = "guest"

type CheckoutRequest struct {
	CartID          string `json:"cartId"`
	UserID          string `json:"userId"`
	PaymentMethod   string `json:"paymentMethod"`
	DeliveryAddress string `json:"deliveryAddress"`
}

type Receipt struct {
	domain.SubmitResult
	Bill cart.Bill `json:"bill"`
}

// CheckoutService turns a cart into an order. The cart is cleared only when
// the order service reports success, demo or not.
type CheckoutService struct {
	carts  *CartService
	orders OrderServiceInterface
	delay  time.Duration
	log    logrus.FieldLogger
}

func NewCheckoutService(carts *CartService, orders OrderServiceInterface, delay time.Duration, log logrus.FieldLogger) *CheckoutService {
	return &CheckoutService{
		carts:  carts,
		orders: orders,
		delay:  delay,
		log:    log,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*Receipt, error) {
	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if method == "" {
		method = domain.PaymentCard
	}
	if !domain.ValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}

	var receipt *Receipt
	_, err := s.carts.update(ctx, req.CartID, func(state cart.State) (cart.State, error) {
		if state.IsEmpty() {
			return state, ErrEmptyCart
		}
		if restaurants := state.RestaurantIDs(); len(restaurants) > 1 {
			s.log.WithFields(logrus.Fields{
				"cart_id":     req.CartID,
				"restaurants": restaurants,
			}).Warn("checking out a cart spanning several restaurants, ordering from the first")
		}

		bill := cart.Price(state)
		if err := s.wait(ctx); err != nil {
			return state, err
		}

		order := buildOrder(req, method, state, bill)
		result, err := s.orders.Create(ctx, order)
		if err != nil {
			return state, err
		}

		receipt = &Receipt{SubmitResult: result, Bill: bill}
		return state.Clear(), nil
	})
	if err != nil && receipt != nil {
		// The order is already placed; a retry would submit it twice.
		s.log.WithError(err).WithField("cart_id", req.CartID).Warn("order placed but cart could not be cleared")
		return receipt, nil
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *CheckoutService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildOrder(req CheckoutRequest, method string, state cart.State, bill cart.Bill) *domain.Order {
	items := make([]domain.OrderItem, 0, len(state.Items))
	for _, line := range state.Items {
		items = append(items, domain.OrderItem{
			ID:       line.ID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = guestUserID
	}
	address := strings.TrimSpace(req.DeliveryAddress)
	if address == "" {
		address = domain.DefaultDeliveryAddress
	}

	return &domain.Order{
		UserID:          userID,
		RestaurantID:    state.Items[0].RestaurantID,
		Items:           items,
		TotalAmount:     bill.Total,
		DeliveryAddress: address,
		PaymentMethod:   method,
		PaymentStatus:   domain.PaymentCompleted,
	}
}
