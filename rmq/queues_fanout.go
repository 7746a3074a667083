package rmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// declareFanoutExchange uses an AMQP client to declare an fanout exchange for a simple
// message queueing scheme in which any number of producers can send messages to a named
// exchange, and any number of consumers can receive messages by binding their own
// temporary queue to that exchange
func declareFanoutExchange(ch *amqp.Channel, exchange string) error {
	durable := true
	autoDelete := false
	internal := false
	noWait := false
	return ch.ExchangeDeclare(exchange, "fanout", durable, autoDelete, internal, noWait, nil)
}

// fanoutProducer is an rmq.Producer implementation that publishes to the configured
// fanout exchange
type fanoutProducer struct {
	conn     *amqp.Connection
	exchange string
}

func (p *fanoutProducer) Send(ctx context.Context, data interface{}) error {
	msg, err := newPublishing(data, false)
	if err != nil {
		return err
	}

	// Prepare a channel to send our message
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}
	defer ch.Close()

	// Publish to the fanout exchange, which will ensure that a copy of the message is
	// sent to all consumers which have bound their transient queues to that exchange
	mandatory := false
	immediate := false
	return ch.PublishWithContext(ctx, p.exchange, "", mandatory, immediate, msg)
}

func (d *QueueDeclaration) newFanoutProducer(conn *amqp.Connection, ch *amqp.Channel) (Producer, error) {
	if err := declareFanoutExchange(ch, d.Name); err != nil {
		return nil, fmt.Errorf("failed to declare fanout exchange '%s': %w", d.Name, err)
	}
	return &fanoutProducer{
		conn:     conn,
		exchange: d.Name,
	}, nil
}
