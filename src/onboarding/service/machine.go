package onboarding_service

import (
	"context"
	"fmt"
	"strings"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
	provider_service "github.com/Astervia/wacraft-onboarding/src/provider/service"
	tenant_entity "github.com/Astervia/wacraft-onboarding/src/tenant/entity"
	tenant_service "github.com/Astervia/wacraft-onboarding/src/tenant/service"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// OAuthConfig is the app identity presented on code exchange.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Machine drives one onboarding run per authorization code.
type Machine struct {
	provider provider_service.Client
	store    tenant_service.CredentialStore
	oauth    OAuthConfig
}

func NewMachine(provider provider_service.Client, store tenant_service.CredentialStore, oauth OAuthConfig) *Machine {
	return &Machine{provider: provider, store: store, oauth: oauth}
}

// run accumulates what each state's provider call produced.
type run struct {
	id            string
	request       Request
	state         State
	visited       []State
	accessToken   string
	businessID    string
	accountID     string
	phoneNumberID string
}

type step struct {
	to    State
	skip  func(r *run) bool
	enter func(ctx context.Context, m *Machine, r *run) error
}

// Ordered transitions. Every entry action is at most one provider or store call,
// and each needs what the previous one produced.
var steps = []step{
	{to: StateCodeExchanged, enter: exchangeCode},
	{to: StateAccountDiscovered, skip: accountKnown, enter: discoverAccount},
	{to: StateWabaDiscovered, skip: accountKnown, enter: discoverWaba},
	{to: StatePhoneDiscovered, skip: phoneKnown, enter: discoverPhone},
	{to: StateSubscribed, enter: subscribe},
	{to: StateStored, enter: storeCredential},
}

// Run executes the onboarding sequence. Any failure stops the run; nothing is retried
// and nothing already done on the provider side is undone.
func (m *Machine) Run(ctx context.Context, req Request) (Result, error) {
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		return Result{}, ErrPreconditionFailed
	}

	r := &run{
		id:            uuid.NewString(),
		request:       req,
		state:         StateStart,
		visited:       []State{StateStart},
		accountID:     strings.TrimSpace(req.AccountID),
		phoneNumberID: strings.TrimSpace(req.PhoneNumberID),
	}
	pterm.DefaultLogger.Info(fmt.Sprintf("Onboarding run %s started", r.id))

	for _, s := range steps {
		if s.skip != nil && s.skip(r) {
			pterm.DefaultLogger.Info(fmt.Sprintf("Onboarding run %s: %s already known, skipping discovery", r.id, s.to))
			r.advance(s.to)
			continue
		}
		if err := s.enter(ctx, m, r); err != nil {
			return r.fail(s.to, err)
		}
		r.advance(s.to)
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Onboarding run %s stored account %s with phone %s", r.id, r.accountID, r.phoneNumberID),
	)
	return r.result(), nil
}

func (r *run) advance(to State) {
	r.state = to
	r.visited = append(r.visited, to)
}

func (r *run) fail(entering State, err error) (Result, error) {
	r.state = StateFailed
	r.visited = append(r.visited, StateFailed)
	pterm.DefaultLogger.Error(
		fmt.Sprintf("Onboarding run %s failed entering %s: %s", r.id, entering, err),
	)
	result := r.result()
	result.Status = string(StateFailed)
	return result, &StepError{State: entering, Err: err}
}

func (r *run) result() Result {
	return Result{
		Status:        StatusPendingVerification,
		AccountID:     r.accountID,
		PhoneNumberID: r.phoneNumberID,
		RunID:         r.id,
		States:        append([]State(nil), r.visited...),
	}
}

func accountKnown(r *run) bool {
	return r.accountID != ""
}

func phoneKnown(r *run) bool {
	return r.phoneNumberID != ""
}

func exchangeCode(ctx context.Context, m *Machine, r *run) error {
	token, err := m.provider.ExchangeCode(ctx, provider_model.ExchangeCodeInput{
		Code:         r.request.Code,
		ClientID:     m.oauth.ClientID,
		ClientSecret: m.oauth.ClientSecret,
		RedirectURI:  m.oauth.RedirectURI,
	})
	if err != nil {
		return err
	}
	r.accessToken = token
	return nil
}

func discoverAccount(ctx context.Context, m *Machine, r *run) error {
	businessID, err := m.provider.DiscoverAccount(ctx, r.accessToken)
	if err != nil {
		return err
	}
	r.businessID = businessID
	return nil
}

func discoverWaba(ctx context.Context, m *Machine, r *run) error {
	wabas, err := m.provider.DiscoverWabas(ctx, r.accessToken, r.businessID)
	if err != nil {
		return err
	}
	id, err := pickFirst(r, wabas, "whatsapp business account", r.businessID)
	if err != nil {
		return err
	}
	r.accountID = id
	return nil
}

func discoverPhone(ctx context.Context, m *Machine, r *run) error {
	phones, err := m.provider.DiscoverPhoneNumbers(ctx, r.accessToken, r.accountID)
	if err != nil {
		return err
	}
	id, err := pickFirst(r, phones, "phone number", r.accountID)
	if err != nil {
		return err
	}
	r.phoneNumberID = id
	return nil
}

func subscribe(ctx context.Context, m *Machine, r *run) error {
	_, err := m.provider.SubscribeWebhooks(ctx, r.accessToken, r.accountID)
	return err
}

func storeCredential(ctx context.Context, m *Machine, r *run) error {
	_, err := m.store.Upsert(ctx, tenant_entity.TenantCredential{
		AccountID:     r.accountID,
		BusinessID:    r.businessID,
		PhoneNumberID: r.phoneNumberID,
		AccessToken:   r.accessToken,
	})
	return err
}

func pickFirst(r *run, ids []string, resource string, parentID string) (string, error) {
	if len(ids) == 0 {
		return "", &NoResourceFoundError{Resource: resource, ParentID: parentID}
	}
	if len(ids) > 1 {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Onboarding run %s: %d %s entries under %s, binding the first (%s)", r.id, len(ids), resource, parentID, ids[0]),
		)
	}
	return ids[0], nil
}
