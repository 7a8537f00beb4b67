package provider_service

import (
	"context"
	"net/http"
	"net/url"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
)

// DiscoverAccount returns the id of the business user the token was issued for.
func (c *GraphClient) DiscoverAccount(ctx context.Context, accessToken string) (string, error) {
	var node provider_model.NodeResponse
	err := c.do(ctx, graphRequest{
		operation:   OpDiscoverAccount,
		method:      http.MethodGet,
		path:        c.apiPath("me"),
		query:       url.Values{"fields": {"id"}},
		accessToken: accessToken,
	}, &node)
	if err != nil {
		return "", err
	}
	if node.ID == "" {
		return "", &MalformedResponseError{Operation: OpDiscoverAccount, Reason: "id missing"}
	}
	return node.ID, nil
}

// DiscoverWabas lists the WhatsApp Business Accounts owned by businessID.
// An empty slice is a valid answer; deciding what it means is up to the caller.
func (c *GraphClient) DiscoverWabas(ctx context.Context, accessToken string, businessID string) ([]string, error) {
	return c.listIDs(ctx, OpDiscoverWabas, accessToken, c.apiPath(businessID, "owned_whatsapp_business_accounts"))
}

// DiscoverPhoneNumbers lists the phone number ids registered under wabaID.
func (c *GraphClient) DiscoverPhoneNumbers(ctx context.Context, accessToken string, wabaID string) ([]string, error) {
	return c.listIDs(ctx, OpDiscoverPhoneNumbers, accessToken, c.apiPath(wabaID, "phone_numbers"))
}

func (c *GraphClient) listIDs(ctx context.Context, operation string, accessToken string, path string) ([]string, error) {
	var list provider_model.ListResponse
	err := c.do(ctx, graphRequest{
		operation:   operation,
		method:      http.MethodGet,
		path:        path,
		query:       url.Values{"fields": {"id"}},
		accessToken: accessToken,
	}, &list)
	if err != nil {
		return nil, err
	}
	if list.Data == nil {
		return nil, &MalformedResponseError{Operation: operation, Reason: "data missing"}
	}

	ids := make([]string, 0, len(list.Data))
	for _, node := range list.Data {
		if node.ID == "" {
			return nil, &MalformedResponseError{Operation: operation, Reason: "entry without id"}
		}
		ids = append(ids, node.ID)
	}
	return ids, nil
}

// SubscribeWebhooks subscribes the app to webhook deliveries of wabaID.
func (c *GraphClient) SubscribeWebhooks(ctx context.Context, accessToken string, wabaID string) (provider_model.Ack, error) {
	return c.postAck(ctx, OpSubscribeWebhooks, accessToken, c.apiPath(wabaID, "subscribed_apps"), map[string]any{})
}
