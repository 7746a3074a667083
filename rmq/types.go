package rmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Producer can send arbitrary, JSON-serializable messages to a single message queue
type Producer interface {
	Send(ctx context.Context, data interface{}) error
}

// newPublishing serializes data to JSON and wraps it in an AMQP message with a unique
// message ID. Persistent messages survive a broker restart when they're routed to a
// durable queue.
func newPublishing(data interface{}, persistent bool) (amqp.Publishing, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to serialize message: %w", err)
	}
	p := amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Body:        jsonData,
	}
	if persistent {
		p.DeliveryMode = amqp.Persistent
	}
	return p, nil
}
