package cart

import "math"

const (
	DeliveryFee = 40
	GSTRate     = 0.05
)

type Bill struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"deliveryFee"`
	GST         int `json:"gst"`
	Total       int `json:"total"`
}

// Price bills the cart. The delivery fee applies only to a non-empty cart.
func Price(s State) Bill {
	bill := Bill{Subtotal: s.TotalAmount}
	if !s.IsEmpty() {
		bill.DeliveryFee = DeliveryFee
	}
	bill.GST = int(math.Round(float64(bill.Subtotal) * GSTRate))
	bill.Total = bill.Subtotal + bill.DeliveryFee + bill.GST
	return bill
}
