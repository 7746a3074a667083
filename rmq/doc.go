// Package rmq provides utility code to help backend applications connect to a RabbitMQ
// server and publish JSON messages to AMQP queues using simplified, higher level
// semantics: a QueueDeclaration names a queue and how it's used, and NewProducer
// declares the corresponding AMQP objects and returns a Producer that publishes to
// them.
package rmq
