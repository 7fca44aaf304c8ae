// Package pubsub is the in-process event bus used to fan console events out
// to live browser connections.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "notify.region.changed").
	Topic string
	// Payload contains the raw message data, usually JSON.
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts delivering messages for topic to handler. It returns
	// once the subscription is active; delivery stops when ctx is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
