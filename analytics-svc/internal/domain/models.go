package domain

import "time"

type ItemSales struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type RestaurantTotals struct {
	RestaurantID int        `json:"restaurant_id"`
	Orders       int        `json:"orders"`
	Revenue      int        `json:"revenue"`
	LastOrderAt  *time.Time `json:"last_order_at,omitempty"`
}

type RestaurantRevenue struct {
	RestaurantID int `json:"restaurant_id"`
	Revenue      int `json:"revenue"`
}

// SalesReport combines a restaurant's running totals with its best sellers
// for one day.
type SalesReport struct {
	Date     string           `json:"date"`
	Totals   RestaurantTotals `json:"totals"`
	TopItems []ItemSales      `json:"top_items"`
}
