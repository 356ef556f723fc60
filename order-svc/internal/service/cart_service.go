package service

import (
	"context"

	"foodcart/order-svc/internal/cart"
	"foodcart/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CartService is the cart store handed to handlers. Every mutation of one
// cart session runs under that session's lock as load, reduce, save.
type CartService struct {
	store CartStore
	log   logrus.FieldLogger
	locks sessionLocks
}

func NewCartService(store CartStore, log logrus.FieldLogger) *CartService {
	return &CartService{store: store, log: log}
}

func (s *CartService) Create(ctx context.Context) (string, cart.State, error) {
	cartID := uuid.NewString()
	state := cart.Empty()
	if err := s.store.Save(ctx, cartID, state); err != nil {
		return "", cart.State{}, err
	}
	return cartID, state, nil
}

func (s *CartService) Get(ctx context.Context, cartID string) (cart.State, error) {
	return s.store.Load(ctx, cartID)
}

func (s *CartService) AddItem(ctx context.Context, cartID string, item domain.CartItem) (cart.State, error) {
	return s.update(ctx, cartID, func(state cart.State) (cart.State, error) {
		if ids := state.RestaurantIDs(); len(ids) > 0 && ids[0] != item.RestaurantID {
			s.log.WithFields(logrus.Fields{
				"cart_id":            cartID,
				"restaurant_id":      item.RestaurantID,
				"cart_restaurant_id": ids[0],
			}).Warn("cart now holds items from more than one restaurant")
		}
		return cart.Reduce(state, cart.Action{Type: cart.ActionAdd, Item: item})
	})
}

func (s *CartService) RemoveItem(ctx context.Context, cartID string, itemID int) (cart.State, error) {
	return s.dispatch(ctx, cartID, cart.Action{Type: cart.ActionRemove, ItemID: itemID})
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartID string, itemID, quantity int) (cart.State, error) {
	return s.dispatch(ctx, cartID, cart.Action{Type: cart.ActionUpdateQuantity, ItemID: itemID, Quantity: quantity})
}

func (s *CartService) Clear(ctx context.Context, cartID string) (cart.State, error) {
	return s.dispatch(ctx, cartID, cart.Action{Type: cart.ActionClear})
}

func (s *CartService) Delete(ctx context.Context, cartID string) error {
	unlock := s.lock(cartID)
	defer unlock()

	if _, err := s.store.Load(ctx, cartID); err != nil {
		return err
	}
	return s.store.Delete(ctx, cartID)
}

func (s *CartService) Summary(ctx context.Context, cartID string) (cart.Bill, error) {
	state, err := s.store.Load(ctx, cartID)
	if err != nil {
		return cart.Bill{}, err
	}
	return cart.Price(state), nil
}

func (s *CartService) dispatch(ctx context.Context, cartID string, action cart.Action) (cart.State, error) {
	return s.update(ctx, cartID, func(state cart.State) (cart.State, error) {
		return cart.Reduce(state, action)
	})
}

// update loads the cart, applies fn and saves the result. When fn fails the
// stored cart is left untouched and the loaded state is returned.
func (s *CartService) update(ctx context.Context, cartID string, fn func(cart.State) (cart.State, error)) (cart.State, error) {
	unlock := s.lock(cartID)
	defer unlock()

	state, err := s.store.Load(ctx, cartID)
	if err != nil {
		return cart.State{}, err
	}

	next, err := fn(state)
	if err != nil {
		return state, err
	}

	if err := s.store.Save(ctx, cartID, next); err != nil {
		return state, err
	}
	return next, nil
}

func (s *CartService) lock(cartID string) func() {
	return s.locks.acquire(cartID)
}
