package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/ports"
)

func TestMockRedirectProvider_Begin_Defaults(t *testing.T) {
	provider := NewMockRedirectProvider()
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:8080/auth/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	// Second call should increment counters
	authURL2, state2, nonce2, err2 := provider.Begin(ctx, input)
	require.NoError(t, err2)
	assert.Equal(t, "https://mock-idp/auth", authURL2)
	assert.Equal(t, "state-2", state2)
	assert.Equal(t, "nonce-2", nonce2)
}

func TestMockRedirectProvider_Begin_CustomFunc(t *testing.T) {
	provider := &MockRedirectProvider{
		BeginFunc: func(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
			return "custom-url", "custom-state", "custom-nonce", nil
		},
	}
	ctx := context.Background()

	authURL, state, nonce, err := provider.Begin(ctx, ports.BeginInput{RedirectURL: "/"})

	require.NoError(t, err)
	assert.Equal(t, "custom-url", authURL)
	assert.Equal(t, "custom-state", state)
	assert.Equal(t, "custom-nonce", nonce)
}

func TestMockRedirectProvider_Exchange_Defaults(t *testing.T) {
	provider := NewMockRedirectProvider()
	ctx := context.Background()

	identity, err := provider.Exchange(ctx, ports.ExchangeInput{Code: "auth-code", State: "state-1", Nonce: "nonce-1"})

	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", identity.UserID)
	assert.Equal(t, "Mock User", identity.Name)
	assert.Equal(t, "mock.user@example.com", identity.Email)
	assert.Equal(t, []string{"farmers"}, identity.Groups)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}

func TestMockIdentityProvider_Defaults(t *testing.T) {
	provider := &MockIdentityProvider{}
	ctx := context.Background()

	id, err := provider.SignUp(ctx, ports.SignUpInput{
		Credentials: ports.Credentials{Email: "new@example.com", Password: "plowshare"},
		Name:        "New User",
		Role:        domainauth.RoleFarmer,
	})
	require.NoError(t, err)
	assert.Equal(t, "mock-principal", id.UserID)
	assert.Equal(t, "New User", id.Name)
	assert.Equal(t, domainauth.RoleFarmer, id.Role)

	id, err = provider.SignIn(ctx, ports.Credentials{Email: "new@example.com", Password: "plowshare"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", id.Email)
}

func TestMemorySessionStore_SaveGetDelete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:          "s1",
		PrincipalID: "p1",
		Email:       "farmer@example.com",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemorySessionStore_SaveEmptyID(t *testing.T) {
	store := NewMemorySessionStore()
	err := store.Save(context.Background(), domainauth.Session{})
	require.Error(t, err)
}

func TestMemorySessionStore_CompleteRoleResolution(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{ID: "s1", PrincipalID: "p1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	resolved, err := store.CompleteRoleResolution(ctx, "s1", "p1", domainauth.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, resolved.RoleResolved)
	assert.Equal(t, domainauth.RoleAdmin, resolved.Role)

	// Resolution for a principal that no longer owns the session is discarded.
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s2", PrincipalID: "p2", ExpiresAt: time.Now().Add(time.Hour)}))
	stale, err := store.CompleteRoleResolution(ctx, "s2", "p1", domainauth.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, stale.RoleResolved)
	assert.Equal(t, "p2", stale.PrincipalID)

	_, err = store.CompleteRoleResolution(ctx, "missing", "p1", domainauth.RoleAdmin)
	assert.Equal(t, ErrNotFound, err)
}

func TestStubRoleResolver(t *testing.T) {
	r := &StubRoleResolver{Role: domainauth.RoleAdmin}
	role, err := r.Resolve(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, role)

	r = &StubRoleResolver{Fn: func(_ context.Context, id string) (domainauth.Role, error) {
		if id == "p2" {
			return domainauth.RoleFarmer, nil
		}
		return domainauth.RoleUnknown, nil
	}}
	role, err = r.Resolve(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleFarmer, role)
}
