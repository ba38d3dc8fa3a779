package lib

import (
	"alxtravel/src/types"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	newEventID = uuid.NewString
	eventClock = time.Now
)

// NewEvent wraps payload in the envelope every publisher sends.
func NewEvent(topic string, payload any) (*types.Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &types.Event{
		ID:         newEventID(),
		Type:       topic,
		OccurredAt: eventClock().UTC(),
		Data:       data,
	}, nil
}

// EncodeEvent returns the envelope and its JSON encoding.
func EncodeEvent(topic string, payload any) (*types.Event, []byte, error) {
	evt, err := NewEvent(topic, payload)
	if err != nil {
		return nil, nil, err
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return nil, nil, err
	}
	return evt, body, nil
}

// LogPublisher writes events to the server log. Used when no broker is
// configured.
type LogPublisher struct {
	Logger *log.Logger
}

func NewLogPublisher(logger *log.Logger) *LogPublisher {
	if logger == nil {
		logger = log.Default()
	}
	return &LogPublisher{Logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, payload any) error {
	_, body, err := EncodeEvent(topic, payload)
	if err != nil {
		return err
	}
	p.Logger.Printf("[events] %s: %s\n", topic, string(body))
	return nil
}
