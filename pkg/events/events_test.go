package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	event := NewTicketOpened("a@x.com", "TKT-1234", "General")

	envBytes, err := json.Marshal(envelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp().Unix(),
	})
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}

	decoded, err := Decode(envBytes)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if decoded.EventType() != TypeTicketOpened {
		t.Errorf("EventType() = %q, want %q", decoded.EventType(), TypeTicketOpened)
	}
	payload := decoded.Payload()
	if payload["email"] != "a@x.com" || payload["ticket_id"] != "TKT-1234" {
		t.Errorf("Payload() = %v", payload)
	}
	if decoded.Timestamp().Unix() != event.Timestamp().Unix() {
		t.Errorf("Timestamp() = %v, want %v", decoded.Timestamp(), event.Timestamp())
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("{broken")); err == nil {
		t.Error("Decode() on garbage should fail")
	}
}

type sinkStub struct {
	calls int
	err   error
}

func (s *sinkStub) Publish(ctx context.Context, event Event) error {
	s.calls++
	return s.err
}

func TestFanoutAttemptsEverySink(t *testing.T) {
	failing := &sinkStub{err: errors.New("sink down")}
	healthy := &sinkStub{}

	fan := Fanout{failing, healthy}
	err := fan.Publish(context.Background(), BaseEvent{Type: "TEST", OccurredAt: time.Now()})

	if err == nil {
		t.Error("Fanout should surface sink errors")
	}
	if failing.calls != 1 || healthy.calls != 1 {
		t.Errorf("sink calls = %d, %d; every sink must be attempted", failing.calls, healthy.calls)
	}
}

func TestFanoutEmptyIsNil(t *testing.T) {
	if err := (Fanout{}).Publish(context.Background(), BaseEvent{Type: "TEST"}); err != nil {
		t.Errorf("empty Fanout error = %v, want nil", err)
	}
}
