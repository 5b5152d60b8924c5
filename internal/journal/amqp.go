package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/metinatakli/cinema-kiosk/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const ticketQueue = "kiosk.tickets"

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends tickets as persistent messages to a durable queue.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel open failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		ticketQueue, // name
		true,        // durable
		false,       // autoDelete
		false,       // exclusive
		false,       // noWait
		nil,         // args
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare failed: %w", err)
	}

	return &AMQPPublisher{
		conn:    conn,
		channel: ch,
		queue:   ticketQueue,
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, ticket domain.Ticket) error {
	body, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    ticket.ID,
		Body:         body,
	}

	// default exchange, routed by queue name
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg)
	if err != nil {
		return fmt.Errorf("rabbitmq publish failed: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}

	return err
}
