package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// dialTimeout bounds the TCP connect so an unreachable broker cannot hold
// a request past its publish deadline.
const dialTimeout = 3 * time.Second

// Publisher sends reservation events to a durable RabbitMQ queue.  Each
// publish opens its own connection so a broker outage never leaves the
// HTTP server holding a dead channel.
type Publisher struct {
	url   string
	queue string
	log   zerolog.Logger
}

// NewPublisher returns a Publisher for the broker at url.
func NewPublisher(url, queueName string, logger zerolog.Logger) *Publisher {
	return &Publisher{url: url, queue: queueName, log: logger.With().Str("component", "publisher").Logger()}
}

// Publish delivers ev as a persistent JSON message.  Failures are returned
// to the caller, which decides how to report them.
func (p *Publisher) Publish(ctx context.Context, ev ReservationEvent) error {
	if err := p.publish(ctx, ev); err != nil {
		return err
	}
	p.log.Debug().Str("event_type", ev.Type).Uint64("reservation_id", ev.ReservationID).Msg("event published")
	return nil
}

func (p *Publisher) publish(ctx context.Context, ev ReservationEvent) error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(dialTimeout),
	})
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.EventID,
		Type:         ev.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		msg,
	); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
