// Package events publishes domain events about completed transfers to RabbitMQ.
package events

import (
	"context"
	"demo-bank-api/logger"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const RoutingKeyTransferCompleted = "transfer.completed"

// TransferEvent is published once a transfer has been committed.
type TransferEvent struct {
	TransactionID uuid.UUID       `json:"transactionId"`
	FromAccount   string          `json:"fromAccount"`
	ToAccount     string          `json:"toAccount"`
	Amount        decimal.Decimal `json:"amount"`
	NewBalance    decimal.Decimal `json:"newBalance"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Publisher is implemented by types that can publish transfer events.
type Publisher interface {
	PublishTransferCompleted(ctx context.Context, event TransferEvent) error
	Close()
}

// channel is the subset of *amqp091.Channel the producer needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// EventProducer publishes JSON messages to a durable topic exchange.
type EventProducer struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
}

func validateAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// NewEventProducer dials RabbitMQ and declares the exchange.
func NewEventProducer(amqpURL, exchange string) (*EventProducer, error) {
	cleanURL, err := validateAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	p := &EventProducer{conn: conn, channel: ch, exchange: exchange}
	if err := p.declare(); err != nil {
		p.Close()
		return nil, err
	}

	logger.Log.WithField("exchange", exchange).Info("RabbitMQ event producer ready")
	return p, nil
}

func (p *EventProducer) declare() error {
	if err := p.channel.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", p.exchange, err)
	}
	return nil
}

func (p *EventProducer) publish(ctx context.Context, routingKey string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         payload,
	})
}

func (p *EventProducer) PublishTransferCompleted(ctx context.Context, event TransferEvent) error {
	logger.Log.WithFields(logrus.Fields{
		"exchange":       p.exchange,
		"routing_key":    RoutingKeyTransferCompleted,
		"transaction_id": event.TransactionID,
	}).Info("Publishing transfer event")
	return p.publish(ctx, RoutingKeyTransferCompleted, event)
}

// Close closes the channel and then the connection.
func (p *EventProducer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// NoopPublisher drops every event. It is used when RabbitMQ is not configured or unreachable.
type NoopPublisher struct{}

func (NoopPublisher) PublishTransferCompleted(ctx context.Context, event TransferEvent) error {
	logger.Log.WithField("transaction_id", event.TransactionID).Debug("Event publishing disabled, transfer event dropped")
	return nil
}

func (NoopPublisher) Close() {}
