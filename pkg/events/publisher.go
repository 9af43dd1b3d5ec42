package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Publisher sends domain events to a sink.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Fanout publishes to every sink. All sinks are attempted, errors are
// joined.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// envelope is the watermill wire form of an event.
type envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt int64                  `json:"occurred_at"`
}

// ChannelPublisher bridges events onto an in-process watermill topic.
type ChannelPublisher struct {
	pubSub *gochannel.GoChannel
	topic  string
}

func NewChannelPublisher(pubSub *gochannel.GoChannel, topic string) *ChannelPublisher {
	return &ChannelPublisher{pubSub: pubSub, topic: topic}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(envelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp().Unix(),
	})
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return p.pubSub.Publish(p.topic, msg)
}

// Decode restores an event from its watermill wire form.
func Decode(payload []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}
	return BaseEvent{
		Type:       env.Type,
		Data:       env.Data,
		OccurredAt: timeFromUnix(env.OccurredAt),
	}, nil
}
