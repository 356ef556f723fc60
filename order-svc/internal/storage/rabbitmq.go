package storage

import (
	"context"
	"encoding/json"

	"foodcart/order-svc/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ChannelPublisher is the part of *amqp.Channel the publisher needs.
type ChannelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitPublisher struct {
	Channel ChannelPublisher
	Queue   string
}

func NewRabbitPublisher(ch ChannelPublisher, queue string) *RabbitPublisher {
	return &RabbitPublisher{Channel: ch, Queue: queue}
}

func (p *RabbitPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.OrderID,
		Timestamp:    event.Timestamp,
		Body:         body,
	})
}
