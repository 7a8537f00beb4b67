package provider_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
	bootstrap_module "github.com/Rfluid/whatsapp-cloud-api/src/bootstrap"
	common_module "github.com/Rfluid/whatsapp-cloud-api/src/common"
)

// callTransport binds the SDK's context-free requests to the caller's context
// and remembers the last status code so failures keep it.
type callTransport struct {
	ctx    context.Context
	next   http.RoundTripper
	status int
}

func (t *callTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// The SDK shares one header map across requests.
	out := req.Clone(t.ctx)
	if out.Body != nil && out.Header.Get("Content-Type") == "" {
		out.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := t.next.RoundTrip(out)
	if resp != nil {
		t.status = resp.StatusCode
	}
	return resp, err
}

// callCloudAPI runs one SDK call for sender, bounded by the client timeout.
func (c *GraphClient) callCloudAPI(
	ctx context.Context,
	operation string,
	sender provider_model.Sender,
	call func(api bootstrap_module.WhatsAppAPI) error,
) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	next := c.httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	transport := &callTransport{ctx: ctx, next: next}

	version := c.apiVersion
	mainURL := c.baseURL + "/" + c.apiVersion
	accountID := sender.AccountID
	if accountID == "" {
		accountID = sender.PhoneNumberID
	}
	api, err := bootstrap_module.FromConfigWithClient(bootstrap_module.SenderConfig{
		AccessToken:   sender.AccessToken,
		WABAID:        sender.PhoneNumberID,
		WABAAccountID: accountID,
		Version:       &version,
		CustomMainURL: &mainURL,
	}, &http.Client{Timeout: c.timeout, Transport: transport})
	if err != nil {
		return fmt.Errorf("provider %s: build client: %w", operation, err)
	}

	if err := call(*api); err != nil {
		return cloudAPIError(operation, transport, err)
	}
	return nil
}

// cloudAPIError maps an SDK failure onto the relay's provider errors.
func cloudAPIError(operation string, transport *callTransport, err error) error {
	var errResp *common_module.ErrorResponse
	if errors.As(err, &errResp) {
		body, _ := json.Marshal(errResp)
		return &ProviderError{Operation: operation, StatusCode: transport.status, Body: string(body), Err: errResp}
	}

	if transport.status == 0 || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		// url.Error embeds the full URL.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return &ProviderError{Operation: operation, StatusCode: transport.status, Err: err}
	}
	if transport.status != http.StatusOK {
		return &ProviderError{
			Operation:  operation,
			StatusCode: transport.status,
			Err:        fmt.Errorf("unexpected status %d: %w", transport.status, err),
		}
	}
	return &MalformedResponseError{Operation: operation, Reason: fmt.Sprintf("decode body: %v", err)}
}
