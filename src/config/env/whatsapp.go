package env

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// MetaConfig carries the app credentials used for the OAuth exchange and the webhook handshake.
type MetaConfig struct {
	AppID                  string   `env:"APP_ID"`
	AppSecret              string   `env:"APP_SECRET"`
	VerifyToken            string   `env:"VERIFY_TOKEN"`
	RedirectURI            string   `env:"OAUTH_REDIRECT_URI"`
	EmbeddedSignupConfigID string   `env:"EMBEDDED_SIGNUP_CONFIG_ID"`
	Scopes                 []string `env:"OAUTH_SCOPES" envSeparator:"," envDefault:"whatsapp_business_management,whatsapp_business_messaging,business_management"`
	// RequireState rejects callbacks that did not start at /oauth/start.
	RequireState bool `env:"OAUTH_REQUIRE_STATE" envDefault:"false"`
}

// GraphConfig points the provider client at the Graph API.
type GraphConfig struct {
	BaseURL      string        `env:"GRAPH_BASE_URL" envDefault:"https://graph.facebook.com"`
	DialogURL    string        `env:"GRAPH_DIALOG_URL" envDefault:"https://www.facebook.com"`
	OAuthVersion string        `env:"GRAPH_OAUTH_VERSION" envDefault:"v21.0"`
	APIVersion   string        `env:"GRAPH_API_VERSION" envDefault:"v23.0"`
	Timeout      time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"15s"`
}

func (m MetaConfig) log() {
	if m.RedirectURI == "" {
		pterm.DefaultLogger.Info("OAuth redirect uri not set, code exchange will omit it")
	}
	if m.EmbeddedSignupConfigID == "" {
		pterm.DefaultLogger.Warn("EMBEDDED_SIGNUP_CONFIG_ID not set, /oauth/start will use the plain OAuth dialog")
	}
	if !m.RequireState {
		pterm.DefaultLogger.Warn("OAUTH_REQUIRE_STATE is off, /oauth/callback accepts requests without a signed state")
	}
	pterm.DefaultLogger.Info(fmt.Sprintf("Meta app %s configured with %d scopes", m.AppID, len(m.Scopes)))
}

func (g GraphConfig) log() {
	pterm.DefaultLogger.Info(
		fmt.Sprintf(
			"Graph API at %s (oauth %s, api %s) with per-call timeout %s",
			g.BaseURL,
			g.OAuthVersion,
			g.APIVersion,
			g.Timeout,
		),
	)
}
