package provider_service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
)

var testSender = provider_model.Sender{AccessToken: "tok", AccountID: "waba-1", PhoneNumberID: "phone-1"}

func TestSendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v23.0/phone-1/messages" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("expected bearer token, got %q", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		var payload struct {
			MessagingProduct string `json:"messaging_product"`
			RecipientType    string `json:"recipient_type"`
			To               string `json:"to"`
			Type             string `json:"type"`
			Text             struct {
				Body string `json:"body"`
			} `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload.MessagingProduct != "whatsapp" || payload.Type != "text" || payload.RecipientType != "individual" {
			t.Errorf("unexpected envelope %+v", payload)
		}
		if payload.To != "15550001111" || payload.Text.Body != "hi" {
			t.Errorf("unexpected message %+v", payload)
		}
		_, _ = w.Write([]byte(`{"messaging_product":"whatsapp","contacts":[{"input":"15550001111","wa_id":"15550001111"}],"messages":[{"id":"wamid.1","message_status":"accepted"}]}`))
	})

	receipt, err := client.SendMessage(context.Background(), testSender, provider_model.TextMessage{To: "15550001111", Body: "hi"})
	if err != nil {
		t.Fatalf("send message: %v", err)
	}
	if receipt.Messages[0].ID != "wamid.1" || receipt.Messages[0].MessageStatus != "accepted" {
		t.Fatalf("expected wamid.1 accepted, got %+v", receipt.Messages[0])
	}
	if receipt.MessagingProduct != "whatsapp" || len(receipt.Contacts) != 1 || receipt.Contacts[0].WaID != "15550001111" {
		t.Fatalf("expected contact in receipt, got %+v", receipt)
	}
}

func TestSendMessage_MissingMessageID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"messaging_product":"whatsapp","messages":[]}`))
	})
	_, err := client.SendMessage(context.Background(), testSender, provider_model.TextMessage{To: "1555", Body: "hi"})
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestSendMessage_GraphError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Recipient phone number not in allowed list","type":"OAuthException","code":131030,"fbtrace_id":"trace"}}`))
	})
	_, err := client.SendMessage(context.Background(), testSender, provider_model.TextMessage{To: "1555", Body: "hi"})
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.Operation != OpSendMessage || providerErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected send_message 400, got %s %d", providerErr.Operation, providerErr.StatusCode)
	}
	if msg, ok := providerErr.GraphMessage(); !ok || msg != "Recipient phone number not in allowed list" {
		t.Fatalf("expected graph message, got %q %v", msg, ok)
	}
}

func TestSendMessage_NonJSONFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})
	_, err := client.SendMessage(context.Background(), testSender, provider_model.TextMessage{To: "1555", Body: "hi"})
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", providerErr.StatusCode)
	}
}

func TestSendMessage_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.timeout = 50 * time.Millisecond

	_, err := client.SendMessage(context.Background(), testSender, provider_model.TextMessage{To: "1555", Body: "hi"})
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.StatusCode != 0 {
		t.Fatalf("expected transport failure, got status %d", providerErr.StatusCode)
	}
}

func TestSendMessage_CanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request should not reach the server")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SendMessage(ctx, testSender, provider_model.TextMessage{To: "1555", Body: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSendMessage_MissingCredential(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request should not reach the server")
	})
	_, err := client.SendMessage(context.Background(), provider_model.Sender{PhoneNumberID: "phone-1"}, provider_model.TextMessage{To: "1555", Body: "hi"})
	if err == nil {
		t.Fatalf("expected error for missing access token")
	}
}

func TestPhoneCalls(t *testing.T) {
	got := map[string]url.Values{}
	var registerBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("expected bearer token, got %q", auth)
		}
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		if r.URL.Path == "/v23.0/phone-1/register" {
			if err := json.Unmarshal(raw, &registerBody); err != nil {
				t.Errorf("decode register body: %v", err)
			}
		} else {
			if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
				t.Errorf("expected form content type on %s, got %q", r.URL.Path, ct)
			}
			form, err := url.ParseQuery(string(raw))
			if err != nil {
				t.Errorf("parse form: %v", err)
			}
			got[r.URL.Path] = form
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	ctx := context.Background()

	if _, err := client.RequestVerificationCode(ctx, testSender, provider_model.RequestCodeInput{}); err != nil {
		t.Fatalf("request code: %v", err)
	}
	if _, err := client.VerifyCode(ctx, testSender, "123456"); err != nil {
		t.Fatalf("verify code: %v", err)
	}
	if _, err := client.RegisterPhone(ctx, testSender, "654321"); err != nil {
		t.Fatalf("register: %v", err)
	}

	requestCode := got["/v23.0/phone-1/request_code"]
	if requestCode.Get("code_method") != "SMS" || requestCode.Get("language") != "en_US" {
		t.Fatalf("expected default code method and language, got %v", requestCode)
	}
	if got["/v23.0/phone-1/verify_code"].Get("code") != "123456" {
		t.Fatalf("unexpected verify body %v", got["/v23.0/phone-1/verify_code"])
	}
	if registerBody["messaging_product"] != "whatsapp" || registerBody["pin"] != "654321" {
		t.Fatalf("unexpected register body %v", registerBody)
	}
}

func TestRequestVerificationCode_Voice(t *testing.T) {
	var form url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(raw))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	_, err := client.RequestVerificationCode(context.Background(), testSender, provider_model.RequestCodeInput{Method: "VOICE", Language: "pt_BR"})
	if err != nil {
		t.Fatalf("request code: %v", err)
	}
	if form.Get("code_method") != "VOICE" || form.Get("language") != "pt_BR" {
		t.Fatalf("expected VOICE pt_BR, got %v", form)
	}
}

func TestPhoneCalls_SuccessFlagMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	})
	_, err := client.VerifyCode(context.Background(), testSender, "123456")
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if malformed.Operation != OpVerifyCode {
		t.Fatalf("expected verify_code, got %s", malformed.Operation)
	}
}

func TestRegisterPhone_GraphError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`))
	})
	_, err := client.RegisterPhone(context.Background(), testSender, "654321")
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.Operation != OpRegisterPhone || providerErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected register_phone 401, got %s %d", providerErr.Operation, providerErr.StatusCode)
	}
}
