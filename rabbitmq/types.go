// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	"context"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "scratchcard.events"

	OrderPlaced         = "order.placed"
	RedemptionSubmitted = "redemption.submitted"
)

type RabbitMQConfig struct {
	AMQPURL  string
	Exchange string
}

// Publisher sends platform events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event Event) error
	Close() error
}

// Event is the JSON envelope of every message on the exchange.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Reference  string    `json:"reference"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

type Client struct {
	Exchange    string
	AMQPConn    *amqp.Connection
	AMQPChannel *amqp.Channel
	mu          sync.Mutex
}

type NoopPublisher struct{}

// OrderPlacedData is the Data of an order.placed event.
type OrderPlacedData struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Operator      string `json:"operator"`
	TotalQuantity int    `json:"total_quantity"`
	TotalAmount   int64  `json:"total_amount"`
}

// RedemptionSubmittedData is the Data of a redemption.submitted event.
type RedemptionSubmittedData struct {
	SerialNumber string `json:"serial_number"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Operator     string `json:"operator"`
	BankName     string `json:"bank_name"`
}
