package service

import (
	"context"
	"errors"

	"foodcart/order-svc/internal/domain"
)

// Publishers fans one event out to every configured broker. All brokers are
// tried; their errors are joined.
type Publishers []OrderPublisher

func (p Publishers) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	var errs []error
	for _, publisher := range p {
		if err := publisher.PublishOrder(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
