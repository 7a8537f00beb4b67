package webhook_service

import (
	"crypto/subtle"
	"errors"
)

const subscribeMode = "subscribe"

// ErrHandshakeRejected is returned for any verification request that is not a
// subscribe with the expected token.
var ErrHandshakeRejected = errors.New("webhook verification rejected")

// VerifyHandshake answers Meta's webhook verification request. The challenge is echoed
// back verbatim only for mode "subscribe" with the expected token. An empty expected
// token never matches.
func VerifyHandshake(mode string, token string, challenge string, expectedToken string) (string, error) {
	if mode != subscribeMode || expectedToken == "" {
		return "", ErrHandshakeRejected
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
		return "", ErrHandshakeRejected
	}
	return challenge, nil
}
