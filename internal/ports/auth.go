package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
)

// Shared sentinel errors for identity providers. Handlers surface these
// verbatim to the user; anything else is treated as an internal failure.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrWeakPassword       = errors.New("password does not meet the minimum length")
)

// Credentials carries an email/password pair for the credential flows.
type Credentials struct {
	Email    string
	Password string
}

// SignUpInput carries inputs for registering a new principal.
type SignUpInput struct {
	Credentials
	Name string
	Role domainauth.Role
}

// IdentityProvider registers and authenticates principals against a
// credential backend.
type IdentityProvider interface {
	// SignUp registers a new principal and returns its identity.
	SignUp(ctx context.Context, in SignUpInput) (domainauth.Identity, error)

	// SignIn authenticates an existing principal.
	SignIn(ctx context.Context, creds Credentials) (domainauth.Identity, error)
}

// BeginInput carries inputs for initiating a redirect-based auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// RedirectAuthProvider initiates and completes a redirect-based
// authentication flow against an external IdP (OIDC mode).
type RedirectAuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error

	// CompleteRoleResolution marks the session's role lookup finished.
	// The store applies the result only when the stored session still
	// belongs to principalID; a result raced by sign-out or a fresh
	// sign-in as someone else is discarded. Returns the applied state.
	CompleteRoleResolution(
		ctx context.Context,
		sessionID, principalID string,
		role domainauth.Role,
	) (domainauth.Session, error)
}

// RoleResolver looks up the application role for a principal.
// A missing profile resolves to RoleUnknown with a nil error.
type RoleResolver interface {
	Resolve(ctx context.Context, principalID string) (domainauth.Role, error)
}

// RoleMapper maps provider groups to application roles (OIDC mode).
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}
