package domain

import "time"

// CartItem is a menu item snapshot plus the quantity held in a cart and the
// restaurant it was ordered from.
type CartItem struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          int     `json:"price"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	IsVeg          bool    `json:"isVeg"`
	Rating         float64 `json:"rating"`
	Bestseller     bool    `json:"bestseller"`
	Quantity       int     `json:"quantity"`
	RestaurantID   int     `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
}

type OrderItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

const (
	PaymentCard = "card"
	PaymentUPI  = "upi"
	PaymentCOD  = "cod"

	PaymentPending   = "pending"
	PaymentCompleted = "completed"

	DefaultDeliveryAddress = "Default delivery address"
)

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCard, PaymentUPI, PaymentCOD:
		return true
	}
	return false
}

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	RestaurantID    int         `json:"restaurantId"`
	Items           []OrderItem `json:"items"`
	TotalAmount     int         `json:"totalAmount"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentStatus   string      `json:"paymentStatus"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// SubmitResult is what every write reports back. Demo is set when the write
// was not persisted and success is reported anyway.
type SubmitResult struct {
	Success bool   `json:"success"`
	Demo    bool   `json:"demo,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type JobApplication struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Experience  string `json:"experience"`
	CoverLetter string `json:"coverLetter"`
}

const EventOrderPlaced = "order_placed"

// OrderEvent is published to the broker after an order is stored.
type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	Items        []OrderItem `json:"items"`
	TotalAmount  int         `json:"total_amount"`
	Timestamp    time.Time   `json:"timestamp"`
}
