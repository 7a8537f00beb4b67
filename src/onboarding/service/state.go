package onboarding_service

import (
	"errors"
	"fmt"
)

// State is a step of the onboarding run.
type State string

const (
	StateStart             State = "start"
	StateCodeExchanged     State = "code_exchanged"
	StateAccountDiscovered State = "account_discovered"
	StateWabaDiscovered    State = "waba_discovered"
	StatePhoneDiscovered   State = "phone_discovered"
	StateSubscribed        State = "subscribed"
	StateStored            State = "stored"
	StateFailed            State = "failed"
)

// StatusPendingVerification is the status reported once a tenant has been stored.
const StatusPendingVerification = "pending_verification"

// ErrPreconditionFailed is returned before the run starts when the request lacks a code.
var ErrPreconditionFailed = errors.New("onboarding precondition failed: authorization code is required")

// NoResourceFoundError means a discovery call succeeded but listed nothing.
type NoResourceFoundError struct {
	Resource string
	ParentID string
}

func (e *NoResourceFoundError) Error() string {
	return fmt.Sprintf("no %s found under %s", e.Resource, e.ParentID)
}

// StepError records which state could not be entered and why.
type StepError struct {
	State State
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("onboarding failed entering %s: %v", e.State, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Request is what the OAuth callback received. AccountID and PhoneNumberID are
// optional: embedded signup may already report them, in which case the matching
// discovery steps are skipped.
type Request struct {
	Code          string
	AccountID     string
	PhoneNumberID string
}

// Result is returned to the OAuth caller on success.
type Result struct {
	Status        string  `json:"status"`
	AccountID     string  `json:"accountId"`
	PhoneNumberID string  `json:"phoneNumberId"`
	RunID         string  `json:"runId"`
	States        []State `json:"-"`
}
