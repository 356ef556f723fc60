package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"foodcart/agg-svc/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

var ErrMalformedEvent = errors.New("malformed order event")

// Consumer folds order events into the sales counters. Every message is
// acknowledged after one attempt; failures are logged and dropped.
type Consumer struct {
	Store StoreInterface
	Log   logrus.FieldLogger
}

func NewConsumer(store StoreInterface, log logrus.FieldLogger) *Consumer {
	return &Consumer{
		Store: store,
		Log:   log,
	}
}

// ConsumeKafka reads until ctx is cancelled or the reader fails.
func (c *Consumer) ConsumeKafka(ctx context.Context, reader MessageReader) error {
	c.Log.Info("consuming order events from kafka")
	for {
		message, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		if err := c.Handle(ctx, message.Value); err != nil {
			c.Log.WithError(err).WithField("offset", message.Offset).Error("failed to process order event")
		}
		if err := reader.CommitMessages(ctx, message); err != nil && ctx.Err() == nil {
			c.Log.WithError(err).Warn("failed to commit offset")
		}
	}
}

// ConsumeRabbit drains deliveries until ctx is cancelled or the channel closes.
func (c *Consumer) ConsumeRabbit(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	c.Log.Info("consuming order events from rabbitmq")
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			if err := c.Handle(ctx, d.Body); err != nil {
				c.Log.WithError(err).WithField("message_id", d.MessageId).Error("failed to process order event")
			}
			if err := d.Ack(false); err != nil {
				c.Log.WithError(err).Warn("failed to ack delivery")
			}
		}
	}
}

func (c *Consumer) Handle(ctx context.Context, payload []byte) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return c.ProcessOrder(ctx, event)
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) error {
	if event.Type != domain.EventOrderPlaced {
		return nil
	}
	if event.OrderID == "" {
		return fmt.Errorf("%w: missing order id", ErrMalformedEvent)
	}

	log := c.Log.WithFields(logrus.Fields{
		"order_id":      event.OrderID,
		"restaurant_id": event.RestaurantID,
	})

	first, err := c.Store.MarkProcessed(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}
	if !first {
		log.Debug("duplicate order event skipped")
		return nil
	}

	if err := c.Store.RecordOrder(ctx, event); err != nil {
		c.release(ctx, log, event.OrderID)
		return fmt.Errorf("record order: %w", err)
	}
	if err := c.Store.UpdateSales(ctx, event); err != nil {
		c.release(ctx, log, event.OrderID)
		return fmt.Errorf("update sales: %w", err)
	}

	log.WithField("total_amount", event.TotalAmount).Info("order event processed")
	return nil
}

// release drops the processed marker after a failed write, so the order is
// not skipped as a duplicate when it is delivered again.
func (c *Consumer) release(ctx context.Context, log logrus.FieldLogger, orderID string) {
	if err := c.Store.ReleaseProcessed(context.WithoutCancel(ctx), orderID); err != nil {
		log.WithError(err).Warn("failed to release processed marker")
	}
}
