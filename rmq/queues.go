package rmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueType is an abtraction that identifies one of a handful of use cases for RabbitMQ
// within our platform
type QueueType string

const (
	// QueueTypeFanout identifies a queue used to record events that multiple services'
	// consumer processes may be interested in: using this queue type results in a fanout
	// exchange being created, with each consumer binding its own temporary queue to that
	// exchange
	QueueTypeFanout QueueType = "fanout"

	// QueueTypeWork identifies a queue used to record requests that should be fulfilled
	// by only a single worker process
	QueueTypeWork QueueType = "work"
)

// ParseQueueType converts a config string to a QueueType, failing if it doesn't name a
// supported queue type
func ParseQueueType(s string) (QueueType, error) {
	switch QueueType(s) {
	case QueueTypeFanout, QueueTypeWork:
		return QueueType(s), nil
	}
	return "", fmt.Errorf("unrecognized queue type '%s' (expected %s|%s)", s, QueueTypeFanout, QueueTypeWork)
}

// QueueDeclaration records the canonical details of how a particular queue is to be
// configured
type QueueDeclaration struct {
	Name string
	Type QueueType
}

// NewProducer declares the AMQP objects required for this queue, then returns a
// Producer that will publish messages to it over conn
func (d *QueueDeclaration) NewProducer(conn *amqp.Connection) (Producer, error) {
	if d.Type != QueueTypeFanout && d.Type != QueueTypeWork {
		return nil, fmt.Errorf("queue '%s' has unrecognized type %s", d.Name, d.Type)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	defer ch.Close()

	if d.Type == QueueTypeFanout {
		return d.newFanoutProducer(conn, ch)
	}
	return d.newWorkProducer(conn, ch)
}
