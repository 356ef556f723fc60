// Package cart holds the cart state machine. State is a value: every
// transition returns a new State whose totals are recomputed from its items,
// so TotalItems and TotalAmount always agree with the line items.
package cart

import (
	"math"

	"foodcart/order-svc/internal/domain"
)

type State struct {
	Items       []domain.CartItem `json:"items"`
	TotalItems  int               `json:"totalItems"`
	TotalAmount int               `json:"totalAmount"`
}

func Empty() State {
	return State{Items: []domain.CartItem{}}
}

// Add increments the line for item.ID or appends a new line with quantity 1.
// The incoming Quantity is ignored.
func (s State) Add(item domain.CartItem) State {
	items := s.copyItems()
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			return fromItems(items)
		}
	}
	item.Quantity = 1
	return fromItems(append(items, item))
}

// Remove drops the line for itemID. Unknown ids leave the state unchanged.
func (s State) Remove(itemID int) State {
	if s.indexOf(itemID) < 0 {
		return s
	}
	items := make([]domain.CartItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	return fromItems(items)
}

// UpdateQuantity sets the line quantity. A quantity of zero or less removes
// the line entirely.
func (s State) UpdateQuantity(itemID, quantity int) State {
	index := s.indexOf(itemID)
	if index < 0 {
		return s
	}
	if quantity <= 0 {
		return s.Remove(itemID)
	}
	items := s.copyItems()
	items[index].Quantity = quantity
	return fromItems(items)
}

func (s State) Clear() State {
	return Empty()
}

func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// RestaurantIDs lists the distinct restaurants in insertion order.
func (s State) RestaurantIDs() []int {
	ids := []int{}
	seen := map[int]bool{}
	for _, item := range s.Items {
		if !seen[item.RestaurantID] {
			seen[item.RestaurantID] = true
			ids = append(ids, item.RestaurantID)
		}
	}
	return ids
}

func (s State) indexOf(itemID int) int {
	for i, item := range s.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

func (s State) copyItems() []domain.CartItem {
	items := make([]domain.CartItem, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)
	return items
}

func fromItems(items []domain.CartItem) State {
	state := State{Items: items}
	var amount float64
	for _, item := range items {
		state.TotalItems += item.Quantity
		amount += float64(item.Price) * float64(item.Quantity)
	}
	state.TotalAmount = int(math.Round(amount))
	return state
}
