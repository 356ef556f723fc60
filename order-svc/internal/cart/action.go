package cart

import (
	"fmt"

	"foodcart/order-svc/internal/domain"
)

type ActionType string

const (
	ActionAdd            ActionType = "ADD_TO_CART"
	ActionRemove         ActionType = "REMOVE_FROM_CART"
	ActionUpdateQuantity ActionType = "UPDATE_QUANTITY"
	ActionClear          ActionType = "CLEAR_CART"
)

type Action struct {
	Type     ActionType
	Item     domain.CartItem
	ItemID   int
	Quantity int
}

// Reduce applies one action. Unknown action types return the state unchanged
// with an error.
func Reduce(s State, a Action) (State, error) {
	switch a.Type {
	case ActionAdd:
		return s.Add(a.Item), nil
	case ActionRemove:
		return s.Remove(a.ItemID), nil
	case ActionUpdateQuantity:
		return s.UpdateQuantity(a.ItemID, a.Quantity), nil
	case ActionClear:
		return s.Clear(), nil
	default:
		return s, fmt.Errorf("unknown cart action %q", a.Type)
	}
}
