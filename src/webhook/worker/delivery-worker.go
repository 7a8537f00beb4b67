package webhook_worker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	webhook_service "github.com/Astervia/wacraft-onboarding/src/webhook-in/service"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

const (
	// PoolSize is the max number of concurrent requests per event
	PoolSize = 10
	// DefaultTimeout applies when no per-request timeout is configured
	DefaultTimeout = 10 * time.Second
)

// DeliveryWorker forwards received webhook events to the configured targets.
// Each event is attempted once per target; failures are only logged.
type DeliveryWorker struct {
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	httpClient *http.Client
	targets    []string
	timeout    time.Duration
	queue      chan webhook_service.Event
	dropped    atomic.Int64
	delivered  atomic.Int64
}

var _ webhook_service.Sink = (*DeliveryWorker)(nil)

// NewDeliveryWorker creates a new delivery worker
func NewDeliveryWorker(targets []string, timeout time.Duration, queueSize int) *DeliveryWorker {
	ctx, cancel := context.WithCancel(context.Background())
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &DeliveryWorker{
		ctx:        ctx,
		cancel:     cancel,
		httpClient: &http.Client{},
		targets:    append([]string(nil), targets...),
		timeout:    timeout,
		queue:      make(chan webhook_service.Event, queueSize),
	}
}

// Start begins the delivery worker
func (w *DeliveryWorker) Start() {
	w.wg.Add(1)
	go w.run()
	pterm.DefaultLogger.Info(fmt.Sprintf("Webhook delivery worker started with %d targets", len(w.targets)))
}

// Stop gracefully stops the delivery worker. Events still queued are dropped.
func (w *DeliveryWorker) Stop() {
	pterm.DefaultLogger.Info("Stopping webhook delivery worker...")
	w.cancel()
	w.wg.Wait()
	if pending := len(w.queue); pending > 0 {
		pterm.DefaultLogger.Warn(fmt.Sprintf("Webhook delivery worker dropped %d queued events on shutdown", pending))
	}
	pterm.DefaultLogger.Info("Webhook delivery worker stopped")
}

// Publish queues the event without blocking. A full queue drops the event.
func (w *DeliveryWorker) Publish(_ context.Context, event webhook_service.Event) {
	if w.ctx.Err() != nil {
		w.dropped.Add(1)
		pterm.DefaultLogger.Warn(fmt.Sprintf("Webhook delivery worker stopped, dropping event %s", event.ID))
		return
	}
	select {
	case w.queue <- event:
	default:
		w.dropped.Add(1)
		pterm.DefaultLogger.Warn(fmt.Sprintf("Webhook delivery queue full, dropping event %s", event.ID))
	}
}

// Dropped reports how many events were discarded without an attempt.
func (w *DeliveryWorker) Dropped() int64 {
	return w.dropped.Load()
}

// Delivered reports how many target requests returned a 2xx status.
func (w *DeliveryWorker) Delivered() int64 {
	return w.delivered.Load()
}

// run is the main loop that drains the queue
func (w *DeliveryWorker) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event := <-w.queue:
			w.processEvent(event)
		}
	}
}

// processEvent fans one event out to every target
func (w *DeliveryWorker) processEvent(event webhook_service.Event) {
	g, ctx := errgroup.WithContext(w.ctx)
	g.SetLimit(PoolSize)

	for _, target := range w.targets {
		g.Go(func() error {
			startTime := time.Now()
			httpCode, err := w.executeDelivery(ctx, target, event)
			duration := time.Since(startTime)

			if err != nil {
				pterm.DefaultLogger.Warn(
					fmt.Sprintf("Forwarding event %s to %s failed after %s: %s", event.ID, target, duration, err),
				)
				return nil
			}
			w.delivered.Add(1)
			pterm.DefaultLogger.Debug(
				fmt.Sprintf("Forwarded event %s to %s (%d in %s)", event.ID, target, httpCode, duration),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil && err != context.Canceled {
		pterm.DefaultLogger.Error("Error forwarding event: " + err.Error())
	}
}

// executeDelivery makes the HTTP request to one target
func (w *DeliveryWorker) executeDelivery(ctx context.Context, target string, event webhook_service.Event) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(event.Payload))
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Relay-Event-ID", event.ID)
	req.Header.Set("X-Relay-Event-Object", event.Object)
	req.Header.Set("X-Relay-Received-At", event.ReceivedAt.Format(time.RFC3339Nano))

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain a bounded amount so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}
