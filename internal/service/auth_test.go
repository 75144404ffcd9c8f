package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soilfarming/soil-agent/internal/adapters/authroles"
	"github.com/soilfarming/soil-agent/internal/data"
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/mocks"
	mockauth "github.com/soilfarming/soil-agent/internal/mocks/auth"
	"github.com/soilfarming/soil-agent/internal/ports"
)

type authFixture struct {
	svc      *AuthService
	identity *mockauth.MockIdentityProvider
	redirect *mockauth.MockRedirectProvider
	sessions *mockauth.MemorySessionStore
	resolver *mockauth.StubRoleResolver
	users    *mocks.MockUserRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		identity: &mockauth.MockIdentityProvider{},
		redirect: mockauth.NewMockRedirectProvider(),
		sessions: mockauth.NewMemorySessionStore(),
		resolver: &mockauth.StubRoleResolver{Role: domainauth.RoleFarmer},
		users:    mocks.NewMockUserRepository(ctrl),
	}
	svc, err := NewAuthService(AuthServiceOptions{
		Identity:   f.identity,
		Redirect:   f.redirect,
		Sessions:   f.sessions,
		Resolver:   f.resolver,
		Roles:      authroles.StaticRoleMapper{AdminGroup: "soil-admins"},
		Users:      f.users,
		SessionTTL: time.Hour,
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestNewAuthService_RequiredDependencies(t *testing.T) {
	_, err := NewAuthService(AuthServiceOptions{})
	require.Error(t, err)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateUserProfileRequest) (*model.UserProfile, error) {
			assert.Equal(t, "mock-principal", req.ID)
			assert.Equal(t, domainauth.RoleFarmer, req.Role)
			return &model.UserProfile{ID: req.ID, Email: req.Email, Name: req.Name, Role: req.Role}, nil
		})

	sess, err := f.svc.SignUp(ctx, ports.SignUpInput{
		Credentials: ports.Credentials{Email: "new@example.com", Password: "plowshare"},
		Name:        "New Farmer",
		Role:        domainauth.RoleFarmer,
	})

	require.NoError(t, err)
	assert.Equal(t, "mock-principal", sess.PrincipalID)
	assert.Equal(t, domainauth.RoleFarmer, sess.Role)
	assert.True(t, sess.RoleResolved)

	// Session persisted
	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.PrincipalID, stored.PrincipalID)
}

func TestAuthService_SignUp_DefaultsToFarmer(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateUserProfileRequest) (*model.UserProfile, error) {
			return &model.UserProfile{ID: req.ID, Role: req.Role}, nil
		})

	sess, err := f.svc.SignUp(context.Background(), ports.SignUpInput{
		Credentials: ports.Credentials{Email: "new@example.com", Password: "plowshare"},
		Name:        "New Farmer",
	})

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleFarmer, sess.Role)
}

func TestAuthService_SignUp_InvalidRole(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.SignUp(context.Background(), ports.SignUpInput{
		Credentials: ports.Credentials{Email: "new@example.com", Password: "plowshare"},
		Role:        "superuser",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")
}

func TestAuthService_SignUp_ProviderError(t *testing.T) {
	f := newAuthFixture(t)
	f.identity.SignUpFunc = func(context.Context, ports.SignUpInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, ports.ErrEmailTaken
	}

	_, err := f.svc.SignUp(context.Background(), ports.SignUpInput{
		Credentials: ports.Credentials{Email: "taken@example.com", Password: "plowshare"},
		Name:        "Someone",
		Role:        domainauth.RoleFarmer,
	})
	assert.ErrorIs(t, err, ports.ErrEmailTaken)
}

// A bad profile request must fail before the identity provider persists a
// credential. Otherwise the email is taken forever with no profile behind
// it, and later sign-ins resolve to a permanently unknown role.
func TestAuthService_SignUp_ValidatesBeforeProvider(t *testing.T) {
	f := newAuthFixture(t)

	providerCalled := false
	f.identity.SignUpFunc = func(context.Context, ports.SignUpInput) (domainauth.Identity, error) {
		providerCalled = true
		return domainauth.Identity{UserID: "mock-principal"}, nil
	}

	_, err := f.svc.SignUp(context.Background(), ports.SignUpInput{
		Credentials: ports.Credentials{Email: "new@example.com", Password: "plowshare"},
		Name:        "   ",
		Role:        domainauth.RoleFarmer,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.False(t, providerCalled, "identity provider ran before profile validation")
}

func TestAuthService_SignIn_StartsUnresolved(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	// Slow resolver keeps the background resolution pending.
	block := make(chan struct{})
	defer close(block)
	f.resolver.Fn = func(context.Context, string) (domainauth.Role, error) {
		<-block
		return domainauth.RoleFarmer, nil
	}

	sess, err := f.svc.SignIn(ctx, ports.Credentials{Email: "known@example.com", Password: "plowshare"})

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleUnknown, sess.Role)
	assert.False(t, sess.RoleResolved)
	assert.True(t, sess.Resolving())
}

func TestAuthService_SignIn_ResolvesInBackground(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.resolver.Role = domainauth.RoleAdmin

	sess, err := f.svc.SignIn(ctx, ports.Credentials{Email: "admin@example.com", Password: "plowshare"})
	require.NoError(t, err)

	// The background goroutine completes the resolution against the store.
	require.Eventually(t, func() bool {
		stored, getErr := f.sessions.Get(ctx, sess.ID)
		return getErr == nil && stored.RoleResolved
	}, 2*time.Second, 10*time.Millisecond)

	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, stored.Role)
	assert.True(t, stored.IsAdmin())
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.identity.SignInFunc = func(context.Context, ports.Credentials) (domainauth.Identity, error) {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}

	_, err := f.svc.SignIn(context.Background(), ports.Credentials{Email: "x@example.com", Password: "bad"})
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestAuthService_GetSession_LazyResolution(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	// Seed an unresolved session directly.
	sess := domainauth.Session{
		ID:          "s1",
		PrincipalID: "p1",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.sessions.Save(ctx, sess))
	f.resolver.Role = domainauth.RoleAdmin

	got, err := f.svc.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.RoleResolved)
	assert.Equal(t, domainauth.RoleAdmin, got.Role)
}

func TestAuthService_GetSession_DegradesOnResolverError(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	sess := domainauth.Session{
		ID:          "s1",
		PrincipalID: "p1",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.sessions.Save(ctx, sess))
	f.resolver.Err = errors.New("profile store down")

	// The session is still served; the role just stays pending.
	got, err := f.svc.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, got.RoleResolved)
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	sess := domainauth.Session{
		ID:          "old",
		PrincipalID: "p1",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}
	require.NoError(t, f.sessions.Save(ctx, sess))

	_, err := f.svc.GetSession(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionExpired)

	// Expired session cleaned up.
	_, err = f.sessions.Get(ctx, "old")
	assert.Equal(t, mockauth.ErrNotFound, err)
}

func TestAuthService_GetSession_NotFound(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.GetSession(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, mockauth.ErrNotFound)
}

func TestAuthService_CompleteLogin_ExistingProfile(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.users.EXPECT().
		GetByID(gomock.Any(), "mock-user-1").
		Return(&model.UserProfile{ID: "mock-user-1", Role: domainauth.RoleAdmin}, nil)

	sess, err := f.svc.CompleteLogin(ctx, CompleteLoginInput{Code: "code", State: "state", Nonce: "nonce"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, sess.Role)
	assert.True(t, sess.RoleResolved)
}

func TestAuthService_CompleteLogin_FirstLoginCreatesProfile(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	// Identity carries the admin group; the mapper assigns admin on first login.
	f.redirect.DefaultUser.Groups = []string{"soil-admins"}

	f.users.EXPECT().
		GetByID(gomock.Any(), "mock-user-1").
		Return(nil, data.ErrUserNotFound)
	f.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateUserProfileRequest) (*model.UserProfile, error) {
			assert.Equal(t, domainauth.RoleAdmin, req.Role)
			return &model.UserProfile{ID: req.ID, Role: req.Role}, nil
		})

	sess, err := f.svc.CompleteLogin(ctx, CompleteLoginInput{Code: "code", State: "state", Nonce: "nonce"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, sess.Role)
}

func TestAuthService_CompleteLogin_ValidationErrors(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CompleteLoginInput
	}{
		{"missing code", CompleteLoginInput{State: "s", Nonce: "n"}},
		{"missing state", CompleteLoginInput{Code: "c", Nonce: "n"}},
		{"missing nonce", CompleteLoginInput{Code: "c", State: "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CompleteLogin(ctx, tt.input)
			require.Error(t, err)
		})
	}
}

func TestAuthService_BeginLogin(t *testing.T) {
	f := newAuthFixture(t)

	res, err := f.svc.BeginLogin(context.Background(), "http://localhost:8080/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", res.AuthURL)
	assert.NotEmpty(t, res.State)
	assert.NotEmpty(t, res.Nonce)

	_, err = f.svc.BeginLogin(context.Background(), "")
	require.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	sess := domainauth.Session{ID: "s1", PrincipalID: "p1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, f.sessions.Save(ctx, sess))

	require.NoError(t, f.svc.Logout(ctx, "s1"))
	_, err := f.sessions.Get(ctx, "s1")
	assert.Equal(t, mockauth.ErrNotFound, err)

	// Logging out a missing session is a no-op.
	require.NoError(t, f.svc.Logout(ctx, ""))
}
