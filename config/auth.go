package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModePassword uses email/password credentials stored in Postgres.
	AuthModePassword AuthMode = "password"
	// AuthModeOIDC uses an external OIDC identity provider.
	AuthModeOIDC AuthMode = "oidc"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "password", "oidc", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: password, oidc, mock)", v)
	}
}

// OIDCConfig contains OIDC provider configuration (used when Mode=oidc).
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"soil-agent"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"soil-agent"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`

	// AdminGroup maps IdP group membership to the admin role on first login.
	// Identities outside this group become farmers.
	AdminGroup string `env:"ADMIN_GROUP" envDefault:"soil-admins"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string `env:"USER_ID" envDefault:"dev-user"`
	Email  string `env:"EMAIL"   envDefault:"dev@example.com"`
	Name   string `env:"NAME"    envDefault:"Dev User"`
	Role   string `env:"ROLE"    envDefault:"admin"`
}

// PasswordAuthConfig tunes the credential store (used when Mode=password).
type PasswordAuthConfig struct {
	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" envDefault:"6"`

	// BcryptCost is the bcrypt work factor for new password hashes.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which identity provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"password"`

	// Password credential store configuration (used when Mode=password).
	Password PasswordAuthConfig `envPrefix:"PASSWORD_AUTH_"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// SessionTTL is the lifetime of a server-side session.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL < time.Minute {
		a.SessionTTL = time.Minute
	}
	if a.Password.MinPasswordLength < 6 {
		a.Password.MinPasswordLength = 6
	}
	// Clamp to the range bcrypt accepts (4-31); 12 is already slow enough
	// for an interactive signup path.
	if a.Password.BcryptCost < 4 {
		a.Password.BcryptCost = 4
	}
	if a.Password.BcryptCost > 14 {
		a.Password.BcryptCost = 14
	}
}
