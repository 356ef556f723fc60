package service

import (
	"context"

	"foodcart/order-svc/internal/cart"
	"foodcart/order-svc/internal/domain"
	"foodcart/order-svc/internal/storage"
	"foodcart/order-svc/internal/tracking"
)

type CartStore interface {
	Load(ctx context.Context, cartID string) (cart.State, error)
	Save(ctx context.Context, cartID string, state cart.State) error
	Delete(ctx context.Context, cartID string) error
}

type OrderRepository interface {
	RestaurantExists(ctx context.Context, restaurantID int) (bool, error)
	AnyRestaurantID(ctx context.Context) (int, bool, error)
	InsertOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	SaveQRCode(ctx context.Context, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
}

type InquiryRepository interface {
	InsertContactMessage(ctx context.Context, msg domain.ContactMessage) error
	InsertJobApplication(ctx context.Context, app domain.JobApplication) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type CartServiceInterface interface {
	Create(ctx context.Context) (string, cart.State, error)
	Get(ctx context.Context, cartID string) (cart.State, error)
	AddItem(ctx context.Context, cartID string, item domain.CartItem) (cart.State, error)
	RemoveItem(ctx context.Context, cartID string, itemID int) (cart.State, error)
	UpdateQuantity(ctx context.Context, cartID string, itemID, quantity int) (cart.State, error)
	Clear(ctx context.Context, cartID string) (cart.State, error)
	Delete(ctx context.Context, cartID string) error
	Summary(ctx context.Context, cartID string) (cart.Bill, error)
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*Receipt, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) (domain.SubmitResult, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	Tracking(ctx context.Context, orderID string) (tracking.Progress, error)
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
}

type InquiryServiceInterface interface {
	SubmitContact(ctx context.Context, msg domain.ContactMessage) (domain.SubmitResult, error)
	SubmitJobApplication(ctx context.Context, app domain.JobApplication) (domain.SubmitResult, error)
}

var (
	_ CartServiceInterface     = (*CartService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
	_ InquiryServiceInterface  = (*InquiryService)(nil)

	_ CartStore         = (*storage.RedisCartStore)(nil)
	_ CartStore         = (*storage.MemoryCartStore)(nil)
	_ OrderRepository   = (*storage.PostgresRepository)(nil)
	_ InquiryRepository = (*storage.PostgresRepository)(nil)
	_ OrderPublisher    = (*storage.KafkaPublisher)(nil)
	_ OrderPublisher    = (*storage.RabbitPublisher)(nil)
)
