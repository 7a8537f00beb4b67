package webhook_service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

const (
	ObjectWhatsAppBusinessAccount = "whatsapp_business_account"
	// ObjectUnknown is a JSON object without a string "object" field.
	ObjectUnknown = "unknown"
	// ObjectMalformed is a body that is not a JSON object.
	ObjectMalformed = "malformed"

	AckStatus = "EVENT_RECEIVED"
)

// Event is one webhook delivery as received, tagged for logging and forwarding.
type Event struct {
	ID         string
	Object     string
	ReceivedAt time.Time
	Payload    []byte
}

type Ack struct {
	Status  string
	EventID string
	Object  string
}

// Sink receives accepted events. Publish must not block the caller.
type Sink interface {
	Publish(ctx context.Context, event Event)
}

type NopSink struct{}

func (NopSink) Publish(context.Context, Event) {}

// Classify reads the top-level "object" discriminator and nothing else.
func Classify(payload []byte) string {
	var envelope struct {
		Object any `json:"object"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return ObjectMalformed
	}
	object, ok := envelope.Object.(string)
	object = strings.TrimSpace(strings.ToLower(object))
	if !ok || object == "" {
		return ObjectUnknown
	}
	return object
}

// Gateway handles both halves of the webhook contract.
type Gateway struct {
	verifyToken string
	sink        Sink
	now         func() time.Time
}

func NewGateway(verifyToken string, sink Sink) *Gateway {
	if sink == nil {
		sink = NopSink{}
	}
	return &Gateway{verifyToken: verifyToken, sink: sink, now: time.Now}
}

func (g *Gateway) VerifyHandshake(mode string, token string, challenge string) (string, error) {
	return VerifyHandshake(mode, token, challenge, g.verifyToken)
}

// AcceptEvent logs and forwards the payload and always acknowledges it. Meta redelivers
// anything that is not acknowledged quickly, so nothing here may fail the exchange.
func (g *Gateway) AcceptEvent(ctx context.Context, payload []byte) (ack Ack) {
	event := Event{
		ID:         uuid.NewString(),
		Object:     Classify(payload),
		ReceivedAt: g.now().UTC(),
		Payload:    append([]byte(nil), payload...),
	}
	ack = Ack{Status: AckStatus, EventID: event.ID, Object: event.Object}

	defer func() {
		if r := recover(); r != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("Webhook event %s: sink panicked: %v", event.ID, r))
		}
	}()

	switch event.Object {
	case ObjectWhatsAppBusinessAccount:
		pterm.DefaultLogger.Info(fmt.Sprintf("Webhook event %s received (%d bytes)", event.ID, len(payload)))
	case ObjectMalformed:
		pterm.DefaultLogger.Warn(fmt.Sprintf("Webhook event %s is not a JSON object (%d bytes)", event.ID, len(payload)))
	default:
		pterm.DefaultLogger.Warn(fmt.Sprintf("Webhook event %s has unexpected object %q", event.ID, event.Object))
	}
	pterm.DefaultLogger.Debug(fmt.Sprintf("Webhook event %s payload: %s", event.ID, payload))

	g.sink.Publish(ctx, event)
	return ack
}
