package domain

import "time"

const EventOrderPlaced = "order_placed"

type OrderItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderEvent is the message order-svc publishes after storing an order.
type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	Items        []OrderItem `json:"items"`
	TotalAmount  int         `json:"total_amount"`
	Timestamp    time.Time   `json:"timestamp"`
}
