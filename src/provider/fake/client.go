package provider_fake

import (
	"context"
	"sync"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
	provider_service "github.com/Astervia/wacraft-onboarding/src/provider/service"
)

// Call is one recorded invocation of the fake client.
type Call struct {
	Operation     string
	AccessToken   string
	AccountID     string
	ResourceID    string
	Message       provider_model.TextMessage
	Code          string
	Pin           string
	RequestCode   provider_model.RequestCodeInput
	ExchangeInput provider_model.ExchangeCodeInput
}

// Client is a scripted provider_service.Client that records every call.
// Zero values answer with a happy-path onboarding.
type Client struct {
	mu    sync.Mutex
	calls []Call

	Token      string
	BusinessID string
	Wabas      []string
	Phones     []string
	Receipt    provider_model.MessageReceipt

	// Errs fails the named operation, keyed by provider_service.Op* constants.
	Errs map[string]error
}

var _ provider_service.Client = (*Client)(nil)

func New() *Client {
	return &Client{
		Token:      "token-1",
		BusinessID: "biz-1",
		Wabas:      []string{"waba-1"},
		Phones:     []string{"phone-1"},
		Receipt: provider_model.MessageReceipt{
			MessagingProduct: provider_model.MessagingProductWhatsApp,
			Messages:         []provider_model.MessageID{{ID: "wamid.1"}},
		},
		Errs: map[string]error{},
	}
}

func (c *Client) record(call Call) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
	return c.Errs[call.Operation]
}

// Calls returns a copy of the recorded calls in order.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// Operations returns the recorded operation names in order.
func (c *Client) Operations() []string {
	calls := c.Calls()
	ops := make([]string, 0, len(calls))
	for _, call := range calls {
		ops = append(ops, call.Operation)
	}
	return ops
}

func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *Client) ExchangeCode(_ context.Context, input provider_model.ExchangeCodeInput) (string, error) {
	if err := c.record(Call{Operation: provider_service.OpExchangeCode, Code: input.Code, ExchangeInput: input}); err != nil {
		return "", err
	}
	return c.Token, nil
}

func (c *Client) DiscoverAccount(_ context.Context, accessToken string) (string, error) {
	if err := c.record(Call{Operation: provider_service.OpDiscoverAccount, AccessToken: accessToken}); err != nil {
		return "", err
	}
	return c.BusinessID, nil
}

func (c *Client) DiscoverWabas(_ context.Context, accessToken string, businessID string) ([]string, error) {
	if err := c.record(Call{Operation: provider_service.OpDiscoverWabas, AccessToken: accessToken, ResourceID: businessID}); err != nil {
		return nil, err
	}
	return append([]string{}, c.Wabas...), nil
}

func (c *Client) DiscoverPhoneNumbers(_ context.Context, accessToken string, wabaID string) ([]string, error) {
	if err := c.record(Call{Operation: provider_service.OpDiscoverPhoneNumbers, AccessToken: accessToken, ResourceID: wabaID}); err != nil {
		return nil, err
	}
	return append([]string{}, c.Phones...), nil
}

func (c *Client) SubscribeWebhooks(_ context.Context, accessToken string, wabaID string) (provider_model.Ack, error) {
	if err := c.record(Call{Operation: provider_service.OpSubscribeWebhooks, AccessToken: accessToken, ResourceID: wabaID}); err != nil {
		return provider_model.Ack{}, err
	}
	return provider_model.Ack{Success: true}, nil
}

func (c *Client) SendMessage(_ context.Context, sender provider_model.Sender, msg provider_model.TextMessage) (provider_model.MessageReceipt, error) {
	if err := c.record(Call{Operation: provider_service.OpSendMessage, AccessToken: sender.AccessToken, AccountID: sender.AccountID, ResourceID: sender.PhoneNumberID, Message: msg}); err != nil {
		return provider_model.MessageReceipt{}, err
	}
	return c.Receipt, nil
}

func (c *Client) RequestVerificationCode(_ context.Context, sender provider_model.Sender, input provider_model.RequestCodeInput) (provider_model.Ack, error) {
	if err := c.record(Call{Operation: provider_service.OpRequestCode, AccessToken: sender.AccessToken, AccountID: sender.AccountID, ResourceID: sender.PhoneNumberID, RequestCode: input}); err != nil {
		return provider_model.Ack{}, err
	}
	return provider_model.Ack{Success: true}, nil
}

func (c *Client) VerifyCode(_ context.Context, sender provider_model.Sender, code string) (provider_model.Ack, error) {
	if err := c.record(Call{Operation: provider_service.OpVerifyCode, AccessToken: sender.AccessToken, AccountID: sender.AccountID, ResourceID: sender.PhoneNumberID, Code: code}); err != nil {
		return provider_model.Ack{}, err
	}
	return provider_model.Ack{Success: true}, nil
}

func (c *Client) RegisterPhone(_ context.Context, sender provider_model.Sender, pin string) (provider_model.Ack, error) {
	if err := c.record(Call{Operation: provider_service.OpRegisterPhone, AccessToken: sender.AccessToken, AccountID: sender.AccountID, ResourceID: sender.PhoneNumberID, Pin: pin}); err != nil {
		return provider_model.Ack{}, err
	}
	return provider_model.Ack{Success: true}, nil
}
