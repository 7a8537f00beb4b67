package webhook_worker

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	webhook_service "github.com/Astervia/wacraft-onboarding/src/webhook-in/service"
)

type received struct {
	body    string
	eventID string
	object  string
	ctype   string
}

func newTarget(t *testing.T, status int) (*httptest.Server, <-chan received) {
	t.Helper()
	ch := make(chan received, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ch <- received{
			body:    string(body),
			eventID: r.Header.Get("X-Relay-Event-ID"),
			object:  r.Header.Get("X-Relay-Event-Object"),
			ctype:   r.Header.Get("Content-Type"),
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, ch
}

func waitFor(t *testing.T, ch <-chan received) received {
	t.Helper()
	select {
	case got := <-ch:
		return got
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a forwarded request, got none")
	}
	return received{}
}

func testEvent(id string) webhook_service.Event {
	return webhook_service.Event{
		ID:         id,
		Object:     webhook_service.ObjectWhatsAppBusinessAccount,
		ReceivedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Payload:    []byte(`{"object":"whatsapp_business_account","entry":[]}`),
	}
}

func TestDeliveryWorkerForwardsToEveryTarget(t *testing.T) {
	first, firstCh := newTarget(t, http.StatusOK)
	second, secondCh := newTarget(t, http.StatusAccepted)

	w := NewDeliveryWorker([]string{first.URL, second.URL}, time.Second, 4)
	w.Start()
	defer w.Stop()

	w.Publish(context.Background(), testEvent("evt-1"))

	for _, ch := range []<-chan received{firstCh, secondCh} {
		got := waitFor(t, ch)
		if got.body != `{"object":"whatsapp_business_account","entry":[]}` {
			t.Fatalf("expected raw payload, got %q", got.body)
		}
		if got.eventID != "evt-1" {
			t.Fatalf("expected event id header evt-1, got %q", got.eventID)
		}
		if got.object != webhook_service.ObjectWhatsAppBusinessAccount {
			t.Fatalf("expected object header, got %q", got.object)
		}
		if got.ctype != "application/json" {
			t.Fatalf("expected json content type, got %q", got.ctype)
		}
	}
}

func TestDeliveryWorkerFailingTargetDoesNotBlockOthers(t *testing.T) {
	failing, failingCh := newTarget(t, http.StatusInternalServerError)
	healthy, healthyCh := newTarget(t, http.StatusOK)

	w := NewDeliveryWorker([]string{failing.URL, healthy.URL}, time.Second, 4)
	w.Start()
	defer w.Stop()

	w.Publish(context.Background(), testEvent("evt-1"))
	waitFor(t, failingCh)
	waitFor(t, healthyCh)

	w.Publish(context.Background(), testEvent("evt-2"))
	if got := waitFor(t, healthyCh); got.eventID != "evt-2" {
		t.Fatalf("expected second event to reach healthy target, got %q", got.eventID)
	}
	select {
	case got := <-failingCh:
		if got.eventID != "evt-2" {
			t.Fatalf("expected failing target to see evt-2 once, got %q", got.eventID)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected failing target to be attempted for the second event")
	}
}

func TestDeliveryWorkerDropsWhenQueueFull(t *testing.T) {
	w := NewDeliveryWorker([]string{"http://127.0.0.1:1"}, time.Second, 1)
	// not started, so nothing drains the queue

	w.Publish(context.Background(), testEvent("evt-1"))
	w.Publish(context.Background(), testEvent("evt-2"))
	w.Publish(context.Background(), testEvent("evt-3"))

	if got := w.Dropped(); got != 2 {
		t.Fatalf("expected 2 dropped events, got %d", got)
	}
}

func TestDeliveryWorkerDropsAfterStop(t *testing.T) {
	w := NewDeliveryWorker(nil, time.Second, 4)
	w.Start()
	w.Stop()

	w.Publish(context.Background(), testEvent("evt-1"))
	if got := w.Dropped(); got != 1 {
		t.Fatalf("expected 1 dropped event, got %d", got)
	}
}

func TestDeliveryWorkerPublishDoesNotBlock(t *testing.T) {
	w := NewDeliveryWorker([]string{"http://127.0.0.1:1"}, time.Second, 1)

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			w.Publish(context.Background(), testEvent("evt"))
		}
	}()
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected publish to return immediately on a full queue")
	}
}
