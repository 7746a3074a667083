package rmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// declareWorkQueue uses an AMQP client to declare a durable queue that can be used to
// distribute messages to worker processes
func declareWorkQueue(ch *amqp.Channel, name string) (*amqp.Queue, error) {
	durable := true
	autoDelete := false
	exclusive := false
	noWait := false
	q, err := ch.QueueDeclare(name, durable, autoDelete, exclusive, noWait, nil)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// workProducer is an rmq.Producer implementation that publishes persistent messages
// to a work queue
type workProducer struct {
	conn *amqp.Connection
	q    *amqp.Queue
}

func (p *workProducer) Send(ctx context.Context, data interface{}) error {
	msg, err := newPublishing(data, true)
	if err != nil {
		return err
	}

	// Prepare a channel to send our message
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}
	defer ch.Close()

	// Publish directly to the queue, which will choose a single consumer to dispatch the
	// message to
	mandatory := false
	immediate := false
	return ch.PublishWithContext(ctx, "", p.q.Name, mandatory, immediate, msg)
}

func (d *QueueDeclaration) newWorkProducer(conn *amqp.Connection, ch *amqp.Channel) (Producer, error) {
	q, err := declareWorkQueue(ch, d.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to declare work queue '%s': %w", d.Name, err)
	}
	return &workProducer{
		conn: conn,
		q:    q,
	}, nil
}
