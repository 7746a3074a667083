/*
The hmac-relay command runs an HTTP server that accepts HMAC-signed webhook deliveries
and publishes each authenticated payload to RabbitMQ.

Configuration is read from the environment (and from a .env file in the working
directory, if present); see relay.Config for the full list of variables. At minimum,
HMAC_SHARED_SECRET must be set.
*/
package main

import (
	"log"

	"github.com/golden-vcr/easy-hmac/entry"
	"github.com/golden-vcr/easy-hmac/hmac"
	"github.com/golden-vcr/easy-hmac/relay"
	"github.com/gorilla/mux"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	config, err := relay.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app := entry.NewApplication("hmac-relay", config.LogLevel)
	defer app.Stop()
	if err := config.Validate(); err != nil {
		app.Fail("Invalid config", err)
	}

	// Connect to RabbitMQ and declare the queue we'll publish deliveries to
	amqpConn, err := amqp.Dial(config.RmqConnectionString())
	if err != nil {
		app.Fail("Failed to connect to AMQP server", err)
	}
	defer amqpConn.Close()
	queue := config.Queue()
	producer, err := queue.NewProducer(amqpConn)
	if err != nil {
		app.Fail("Failed to initialize AMQP producer", err)
	}
	app.Log().Info("Connected to AMQP server", "queue", queue.Name, "queueType", queue.Type)

	// Verify every webhook against the shared secret before publishing it
	verifier := hmac.NewVerifier([]byte(config.SharedSecret))
	server := relay.NewServer(producer, verifier, config.MaxBodyBytes)

	r := mux.NewRouter()
	server.RegisterRoutes(r)
	entry.RunServer(app, r, config.BindAddr, config.ListenPort)
}
