package service

import (
	"context"

	"foodcart/agg-svc/internal/domain"
	"foodcart/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	MarkProcessed(ctx context.Context, orderID string) (bool, error)
	ReleaseProcessed(ctx context.Context, orderID string) error
	RecordOrder(ctx context.Context, event domain.OrderEvent) error
	UpdateSales(ctx context.Context, event domain.OrderEvent) error
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Handle(ctx context.Context, payload []byte) error
	ProcessOrder(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
