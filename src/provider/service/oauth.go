package provider_service

import (
	"context"
	"net/http"
	"net/url"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
)

// ExchangeCode trades an embedded signup authorization code for an access token.
func (c *GraphClient) ExchangeCode(ctx context.Context, input provider_model.ExchangeCodeInput) (string, error) {
	query := url.Values{}
	query.Set("client_id", input.ClientID)
	query.Set("client_secret", input.ClientSecret)
	query.Set("code", input.Code)
	if input.RedirectURI != "" {
		query.Set("redirect_uri", input.RedirectURI)
	}

	var token provider_model.AccessTokenResponse
	err := c.do(ctx, graphRequest{
		operation: OpExchangeCode,
		method:    http.MethodGet,
		path:      "/" + c.oauthVersion + "/oauth/access_token",
		query:     query,
	}, &token)
	if err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", &MalformedResponseError{Operation: OpExchangeCode, Reason: "access_token missing"}
	}
	return token.AccessToken, nil
}
