// Package service publishes domain events to RabbitMQ. Publish errors
// are logged and returned so callers can ignore them: losing an event
// must never fail the transition that produced it.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/skalette/reservations/internal/queue"
)

// Publisher sends reservation events to the broker. The zero-cost
// dial-per-publish approach follows from the volume involved: a
// restaurant confirms bookings a handful of times per service.
type Publisher struct {
	url string
	log zerolog.Logger
}

// NewPublisher resolves the broker URL from the environment.
func NewPublisher(log zerolog.Logger) *Publisher {
	return &Publisher{
		url: queue.BrokerURL(),
		log: log.With().Str("component", "publisher").Logger(),
	}
}

// PublishReservationConfirmed publishes the event to the durable
// reservation.confirmed queue. Messages are marked persistent so they
// survive broker restarts.
func (p *Publisher) PublishReservationConfirmed(ctx context.Context, event queue.ReservationConfirmedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn().Err(err).Msg("rabbitmq dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn().Err(err).Msg("rabbitmq channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so publisher and consumer can start in any order.
	if _, err := ch.QueueDeclare(queue.ConfirmedQueueName, true, false, false, false, nil); err != nil {
		p.log.Warn().Err(err).Msg("rabbitmq queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Msg("marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                       // default exchange
		queue.ConfirmedQueueName, // routing key = queue name
		false,                    // mandatory
		false,                    // immediate
		pub,
	); err != nil {
		p.log.Warn().Err(err).Msg("rabbitmq publish failed")
		return err
	}
	return nil
}
