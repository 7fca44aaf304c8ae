package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// topicHeader carries Message.Topic through watermill metadata so a
// subscriber sees the same Message that was published.
const topicHeader = "userdesk-topic"

// Bus is the process-wide event bus, a thin layer over watermill's
// in-memory GoChannel. Nothing is persisted: a topic with no subscriber
// drops what is published to it.
type Bus struct {
	ch *gochannel.GoChannel
}

var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)

// NewBus creates an empty bus. Each subscriber gets its own buffer of
// buffer messages; zero means unbuffered.
func NewBus(buffer int64) *Bus {
	return &Bus{
		ch: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: buffer},
			watermill.NewStdLogger(false, false),
		),
	}
}

// Publish hands msg to every current subscriber of msg.Topic.
func (b *Bus) Publish(_ context.Context, msg Message) error {
	out := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		out.Metadata.Set(k, v)
	}
	out.Metadata.Set(topicHeader, msg.Topic)
	return b.ch.Publish(msg.Topic, out)
}

// Subscribe delivers topic to handler on its own goroutine until ctx ends.
// A handler error nacks the message and is logged.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	in, err := b.ch.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for m := range in {
			msg := Message{
				Topic:    m.Metadata.Get(topicHeader),
				Payload:  m.Payload,
				Metadata: make(map[string]string, len(m.Metadata)),
			}
			for k, v := range m.Metadata {
				if k != topicHeader {
					msg.Metadata[k] = v
				}
			}
			if err := handler(ctx, msg); err != nil {
				slog.Warn("Bus handler failed", "topic", topic, "message_id", m.UUID, "error", err)
				m.Nack()
				continue
			}
			m.Ack()
		}
	}()
	return nil
}

// Close ends every subscription.
func (b *Bus) Close() error {
	return b.ch.Close()
}
