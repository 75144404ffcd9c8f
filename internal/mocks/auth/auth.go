package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.RedirectAuthProvider = (*MockRedirectProvider)(nil)
	_ ports.IdentityProvider     = (*MockIdentityProvider)(nil)
	_ ports.SessionStore         = (*MemorySessionStore)(nil)
	_ ports.RoleResolver         = (*StubRoleResolver)(nil)
)

// MockRedirectProvider simulates an IdP for tests with deterministic state/nonce handling.
type MockRedirectProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error)

	// Deterministic values for predictable testing
	AuthURL     string
	StatePrefix string
	NoncePrefix string
	DefaultUser domainauth.Identity

	// Internal state tracking for deterministic behavior
	callCount int
}

// NewMockRedirectProvider creates a MockRedirectProvider with sensible defaults.
func NewMockRedirectProvider() *MockRedirectProvider {
	return &MockRedirectProvider{
		AuthURL:     "https://mock-idp/auth",
		StatePrefix: "state",
		NoncePrefix: "nonce",
		DefaultUser: domainauth.Identity{
			UserID:    "mock-user-1",
			Name:      "Mock User",
			Email:     "mock.user@example.com",
			Groups:    []string{"farmers"},
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (m *MockRedirectProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.callCount++
	authURL := m.AuthURL
	if authURL == "" {
		authURL = "https://mock-idp/auth"
	}

	// Generate deterministic state and nonce based on call count
	statePrefix := m.StatePrefix
	if statePrefix == "" {
		statePrefix = "state"
	}
	noncePrefix := m.NoncePrefix
	if noncePrefix == "" {
		noncePrefix = "nonce"
	}

	state := fmt.Sprintf("%s-%d", statePrefix, m.callCount)
	nonce := fmt.Sprintf("%s-%d", noncePrefix, m.callCount)

	return authURL, state, nonce, nil
}

func (m *MockRedirectProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}

	// Return a copy of the default user with a fresh expiration time
	user := m.DefaultUser
	if user.UserID == "" {
		user = domainauth.Identity{
			UserID: "mock-user-1",
			Name:   "Mock User",
			Email:  "mock.user@example.com",
			Groups: []string{"farmers"},
		}
	}
	user.ExpiresAt = time.Now().Add(time.Hour)

	return user, nil
}

// MockIdentityProvider is a func-backed credential provider double.
type MockIdentityProvider struct {
	SignUpFunc func(ctx context.Context, in ports.SignUpInput) (domainauth.Identity, error)
	SignInFunc func(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error)
}

func (m *MockIdentityProvider) SignUp(ctx context.Context, in ports.SignUpInput) (domainauth.Identity, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, in)
	}
	return domainauth.Identity{
		UserID: "mock-principal",
		Name:   in.Name,
		Email:  in.Email,
		Role:   in.Role,
	}, nil
}

func (m *MockIdentityProvider) SignIn(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, creds)
	}
	return domainauth.Identity{UserID: "mock-principal", Email: creds.Email}, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
// It is safe for concurrent use: the auth service completes role
// resolution from a background goroutine.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemorySessionStore) CompleteRoleResolution(
	_ context.Context,
	sessionID, principalID string,
	role domainauth.Role,
) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	if sess.PrincipalID != principalID {
		// Stale resolution result, keep the stored session untouched.
		return sess, nil
	}
	sess.Role = role
	sess.RoleResolved = true
	m.sessions[sessionID] = sess
	return sess, nil
}

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}

// StubRoleResolver resolves every principal to a fixed role, or via Fn
// when set.
type StubRoleResolver struct {
	Role domainauth.Role
	Err  error
	Fn   func(ctx context.Context, principalID string) (domainauth.Role, error)
}

func (s *StubRoleResolver) Resolve(ctx context.Context, principalID string) (domainauth.Role, error) {
	if s.Fn != nil {
		return s.Fn(ctx, principalID)
	}
	return s.Role, s.Err
}
