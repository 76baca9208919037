// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"scratchcard-server/commons"
)

func ConfigFromEnv() RabbitMQConfig {
	return RabbitMQConfig{
		AMQPURL:  commons.GetEnv("RABBITMQ_AMQP_URL"),
		Exchange: commons.GetEnv("RABBITMQ_EXCHANGE", DefaultExchange),
	}
}

// NewPublisher connects to RabbitMQ, or returns a NoopPublisher when no AMQP URL is
// configured.
func NewPublisher(c RabbitMQConfig) (Publisher, error) {
	if c.AMQPURL == "" {
		commons.Logger.Warn("RABBITMQ_AMQP_URL is not set, events will not be published")
		return NoopPublisher{}, nil
	}
	client, err := NewClient(c)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func NewClient(c RabbitMQConfig) (*Client, error) {
	if c.Exchange == "" {
		c.Exchange = DefaultExchange
	}

	conn, err := amqp.Dial(c.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("channel: %w", err)
	}
	if err := ch.ExchangeDeclare(c.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("exchange declare %s: %w", c.Exchange, err)
	}

	commons.Logger.Infof("RabbitMQ publisher ready on exchange %s", c.Exchange)
	return &Client{Exchange: c.Exchange, AMQPConn: conn, AMQPChannel: ch}, nil
}

// NewEvent stamps an envelope with a fresh id and the current time.
func NewEvent(eventType, reference string, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Reference:  reference,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

func (c *Client) Publish(ctx context.Context, routingKey string, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.ID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	commons.Logger.Debugf("Publishing %s event %s to %s", routingKey, event.ID, c.Exchange)
	err = c.AMQPChannel.PublishWithContext(ctx, c.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.AMQPChannel != nil {
		_ = c.AMQPChannel.Close()
	}
	if c.AMQPConn != nil {
		return c.AMQPConn.Close()
	}
	return nil
}

func (NoopPublisher) Publish(_ context.Context, routingKey string, event Event) error {
	commons.Logger.Debugf("Dropping %s event %s, publisher disabled", routingKey, event.ID)
	return nil
}

func (NoopPublisher) Close() error { return nil }
