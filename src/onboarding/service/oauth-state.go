package onboarding_service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	StateTTL    = 10 * time.Minute
	stateIssuer = "wacraft-onboarding"
)

// ErrInvalidState is returned for an OAuth state that is malformed, expired or not ours.
var ErrInvalidState = errors.New("invalid oauth state")

// StateSigner issues and checks the opaque state carried through the OAuth dialog.
type StateSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{secret: []byte(secret), ttl: StateTTL, now: time.Now}
}

// Sign returns a fresh HS256 state token.
func (s *StateSigner) Sign() (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("sign oauth state: empty secret")
	}
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    stateIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, issuer and expiry.
func (s *StateSigner) Verify(state string) error {
	if len(s.secret) == 0 {
		return ErrInvalidState
	}
	token, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidState
		}
		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return ErrInvalidState
	}
	if !claims.VerifyIssuer(stateIssuer, true) || !claims.VerifyExpiresAt(s.now(), true) {
		return ErrInvalidState
	}
	return nil
}
