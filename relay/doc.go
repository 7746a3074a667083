// Package relay implements a small HTTP service that accepts HMAC-signed webhook
// deliveries and forwards each authenticated payload to a RabbitMQ queue, so that
// downstream workers can consume webhooks without each having to expose an endpoint
// or hold the shared secret.
//
// Routes:
//
//	GET  /status            - liveness check; no authentication
//	POST /webhooks/{source} - signed JSON payload; published as a Delivery
package relay
