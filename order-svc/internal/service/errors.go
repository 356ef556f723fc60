package service

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("payment method must be card, upi or cod")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnknownRestaurant    = errors.New("unknown restaurant")
	ErrSubmitFailed         = errors.New("order store rejected the write")
)
