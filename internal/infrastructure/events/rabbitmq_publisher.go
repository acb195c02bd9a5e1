package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQPublisher fans out order lifecycle events over a fanout exchange.
// Checkout treats publishing as best-effort, so consumers being down never
// blocks an order.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

var _ interfaces.IOrderEventPublisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Printf("[events][rabbitmq] publisher ready exchange=%s", exchange)
	return &RabbitMQPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

type orderCreatedEvent struct {
	Event        string    `json:"event"`
	OrderID      string    `json:"order_id"`
	ServiceID    string    `json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	BasePrice    float64   `json:"base_price"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	OwnerEmail   string    `json:"owner_email"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *RabbitMQPublisher) PublishOrderCreated(ctx context.Context, o entities.Order) error {
	body, err := json.Marshal(orderCreatedEvent{
		Event:        "order.created",
		OrderID:      o.ID,
		ServiceID:    o.ServiceID,
		ServiceTitle: o.ServiceTitle,
		BasePrice:    o.BasePrice,
		Currency:     o.Currency,
		Status:       string(o.Status),
		OwnerEmail:   o.OwnerEmail,
		CreatedAt:    o.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		"",
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  "application/json",
			Body:         body,
		},
	)
	if err != nil {
		log.Printf("[events][rabbitmq] publish failed order_id=%s err=%v", o.ID, err)
		return err
	}

	log.Printf("[events][rabbitmq] published order.created order_id=%s", o.ID)
	return nil
}

func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
