package provider_service

import (
	"encoding/json"
	"fmt"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
)

// ProviderError is an upstream failure: a non-2xx answer, or a transport error when StatusCode is 0.
type ProviderError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("provider %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("provider %s: status=%d body=%s", e.Operation, e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// GraphMessage returns the provider's own error message when the body is a Graph error object.
func (e *ProviderError) GraphMessage() (string, bool) {
	var graphErr provider_model.GraphError
	if err := json.Unmarshal([]byte(e.Body), &graphErr); err != nil {
		return "", false
	}
	if graphErr.Error.Message == "" {
		return "", false
	}
	return graphErr.Error.Message, true
}

// MalformedResponseError is a 2xx answer that lacks a field the relay depends on.
type MalformedResponseError struct {
	Operation string
	Reason    string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("provider %s: malformed response: %s", e.Operation, e.Reason)
}
