package webhook_service

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Publish(_ context.Context, event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

type panickingSink struct{}

func (panickingSink) Publish(context.Context, Event) {
	panic("boom")
}

func TestVerifyHandshake(t *testing.T) {
	cases := []struct {
		name     string
		mode     string
		token    string
		expected string
		ok       bool
	}{
		{name: "match", mode: "subscribe", token: "secret", expected: "secret", ok: true},
		{name: "wrong token", mode: "subscribe", token: "nope", expected: "secret"},
		{name: "wrong mode", mode: "unsubscribe", token: "secret", expected: "secret"},
		{name: "empty mode", mode: "", token: "secret", expected: "secret"},
		{name: "empty expected", mode: "subscribe", token: "", expected: ""},
		{name: "prefix token", mode: "subscribe", token: "secre", expected: "secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			challenge, err := VerifyHandshake(tc.mode, tc.token, "1158201444", tc.expected)
			if tc.ok {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				if challenge != "1158201444" {
					t.Fatalf("expected challenge echoed, got %q", challenge)
				}
				return
			}
			if !errors.Is(err, ErrHandshakeRejected) {
				t.Fatalf("expected ErrHandshakeRejected, got %v", err)
			}
			if challenge != "" {
				t.Fatalf("expected empty challenge on rejection, got %q", challenge)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]string{
		`{"object":"whatsapp_business_account","entry":[]}`: ObjectWhatsAppBusinessAccount,
		`{"object":"Page"}`: "page",
		`{"entry":[]}`:      ObjectUnknown,
		`{"object":42}`:     ObjectUnknown,
		`{"object":""}`:     ObjectUnknown,
		`not json`:          ObjectMalformed,
		``:                  ObjectMalformed,
		`[1,2,3]`:           ObjectMalformed,
	}
	for payload, expected := range cases {
		if got := Classify([]byte(payload)); got != expected {
			t.Fatalf("expected %q for %q, got %q", expected, payload, got)
		}
	}
}

func TestAcceptEventAlwaysAcknowledges(t *testing.T) {
	sink := &recordingSink{}
	gateway := NewGateway("secret", sink)

	payloads := []string{
		`{"object":"whatsapp_business_account","entry":[{"id":"waba-1"}]}`,
		`{"entry":[]}`,
		`{{{`,
	}
	for _, payload := range payloads {
		ack := gateway.AcceptEvent(context.Background(), []byte(payload))
		if ack.Status != AckStatus {
			t.Fatalf("expected %s, got %q", AckStatus, ack.Status)
		}
		if ack.EventID == "" {
			t.Fatalf("expected an event id for %q", payload)
		}
	}

	if len(sink.events) != len(payloads) {
		t.Fatalf("expected %d published events, got %d", len(payloads), len(sink.events))
	}
	if got := string(sink.events[0].Payload); got != payloads[0] {
		t.Fatalf("expected payload forwarded verbatim, got %q", got)
	}
	if sink.events[2].Object != ObjectMalformed {
		t.Fatalf("expected malformed object, got %q", sink.events[2].Object)
	}
}

func TestAcceptEventSurvivesSinkPanic(t *testing.T) {
	gateway := NewGateway("secret", panickingSink{})

	ack := gateway.AcceptEvent(context.Background(), []byte(`{"object":"whatsapp_business_account"}`))
	if ack.Status != AckStatus {
		t.Fatalf("expected %s after sink panic, got %q", AckStatus, ack.Status)
	}
}

func TestNewGatewayDefaultsToNopSink(t *testing.T) {
	gateway := NewGateway("secret", nil)
	ack := gateway.AcceptEvent(context.Background(), []byte(`{}`))
	if ack.Status != AckStatus {
		t.Fatalf("expected %s, got %q", AckStatus, ack.Status)
	}
}
