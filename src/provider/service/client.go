package provider_service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
)

// Client is the set of Graph API calls the relay makes.
type Client interface {
	ExchangeCode(ctx context.Context, input provider_model.ExchangeCodeInput) (string, error)
	DiscoverAccount(ctx context.Context, accessToken string) (string, error)
	DiscoverWabas(ctx context.Context, accessToken string, businessID string) ([]string, error)
	DiscoverPhoneNumbers(ctx context.Context, accessToken string, wabaID string) ([]string, error)
	SubscribeWebhooks(ctx context.Context, accessToken string, wabaID string) (provider_model.Ack, error)
	SendMessage(ctx context.Context, sender provider_model.Sender, msg provider_model.TextMessage) (provider_model.MessageReceipt, error)
	RequestVerificationCode(ctx context.Context, sender provider_model.Sender, input provider_model.RequestCodeInput) (provider_model.Ack, error)
	VerifyCode(ctx context.Context, sender provider_model.Sender, code string) (provider_model.Ack, error)
	RegisterPhone(ctx context.Context, sender provider_model.Sender, pin string) (provider_model.Ack, error)
}

const maxResponseBytes = 64 * 1024

// Operation names used in errors and logs.
const (
	OpExchangeCode         = "exchange_code"
	OpDiscoverAccount      = "discover_account"
	OpDiscoverWabas        = "discover_wabas"
	OpDiscoverPhoneNumbers = "discover_phone_numbers"
	OpSubscribeWebhooks    = "subscribe_webhooks"
	OpSendMessage          = "send_message"
	OpRequestCode          = "request_code"
	OpVerifyCode           = "verify_code"
	OpRegisterPhone        = "register_phone"
)

type GraphConfig struct {
	BaseURL      string
	OAuthVersion string
	APIVersion   string
	Timeout      time.Duration
}

// GraphClient talks to the Graph API. OAuth and discovery go over plain HTTP,
// number-scoped calls through the Cloud API SDK. It keeps no per-tenant state.
type GraphClient struct {
	baseURL      string
	oauthVersion string
	apiVersion   string
	timeout      time.Duration
	httpClient   *http.Client
}

var _ Client = (*GraphClient)(nil)

func NewGraphClient(cfg GraphConfig, httpClient *http.Client) *GraphClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GraphClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		oauthVersion: cfg.OAuthVersion,
		apiVersion:   cfg.APIVersion,
		timeout:      timeout,
		httpClient:   httpClient,
	}
}

type graphRequest struct {
	operation   string
	method      string
	path        string
	query       url.Values
	accessToken string
	body        any
}

func (c *GraphClient) apiPath(segments ...string) string {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, c.apiVersion)
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return "/" + strings.Join(escaped, "/")
}

// do executes one bounded call and decodes a 2xx body into out.
func (c *GraphClient) do(ctx context.Context, r graphRequest, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("provider %s: encode body: %w", r.operation, err)
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("provider %s: build request: %w", r.operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL, which carries the client secret on code exchange.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return &ProviderError{Operation: r.operation, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &ProviderError{Operation: r.operation, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{
			Operation:  r.operation,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &MalformedResponseError{Operation: r.operation, Reason: fmt.Sprintf("decode body: %v", err)}
	}
	return nil
}

func (c *GraphClient) postAck(ctx context.Context, operation string, accessToken string, path string, body any) (provider_model.Ack, error) {
	var ack provider_model.Ack
	err := c.do(ctx, graphRequest{
		operation:   operation,
		method:      http.MethodPost,
		path:        path,
		accessToken: accessToken,
		body:        body,
	}, &ack)
	if err != nil {
		return provider_model.Ack{}, err
	}
	if !ack.Success {
		return provider_model.Ack{}, &MalformedResponseError{Operation: operation, Reason: "success flag not set"}
	}
	return ack, nil
}
