package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/soilfarming/soil-agent/internal/core"
	"github.com/soilfarming/soil-agent/internal/data"
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/ports"
)

// ErrSessionExpired is returned when a session exists but is past its expiry.
var ErrSessionExpired = errors.New("session expired")

const (
	defaultSessionTTL = 12 * time.Hour

	// roleResolveTimeout bounds the background profile lookup after
	// sign-in. The session stays usable while unresolved, so a slow
	// database degrades to a pending role rather than a hung login.
	roleResolveTimeout = 5 * time.Second
)

// AuthServiceOptions groups dependencies for AuthService.
//
// Sessions, Resolver, and Users are required. Identity is required for the
// credential flows, Redirect for the OIDC/mock flows; either may be nil when
// that mode is disabled. Logger is optional.
type AuthServiceOptions struct {
	Identity   ports.IdentityProvider
	Redirect   ports.RedirectAuthProvider
	Sessions   ports.SessionStore
	Resolver   ports.RoleResolver
	Roles      ports.RoleMapper
	Users      core.UserRepository
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// AuthService orchestrates sign-up, sign-in, session lifecycle, and role
// resolution. Roles are looked up from profiles after credential sign-in;
// the lookup never blocks the login itself.
type AuthService struct {
	identity   ports.IdentityProvider
	redirect   ports.RedirectAuthProvider
	sessions   ports.SessionStore
	resolver   ports.RoleResolver
	roles      ports.RoleMapper
	users      core.UserRepository
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Sessions == nil {
		return nil, errors.New("SessionStore is required")
	}
	if opts.Resolver == nil {
		return nil, errors.New("RoleResolver is required")
	}
	if opts.Users == nil {
		return nil, errors.New("UserRepository is required")
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		identity:   opts.Identity,
		redirect:   opts.Redirect,
		sessions:   opts.Sessions,
		resolver:   opts.Resolver,
		roles:      opts.Roles,
		users:      opts.Users,
		sessionTTL: ttl,
		logger:     logger,
	}, nil
}

// SignUp registers a new principal with the identity provider, creates its
// profile, and starts a session. The role is known at creation, so the
// session starts resolved.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domainauth.Session, error) {
	if s.identity == nil {
		return nil, errors.New("credential sign-up is not enabled")
	}
	role := in.Role
	if role == domainauth.RoleUnknown {
		role = domainauth.RoleFarmer
	}
	if !domainauth.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", in.Role)
	}
	in.Role = role

	// Validate the profile fields before the provider persists anything.
	// A credential created ahead of a doomed profile insert would leave
	// the email permanently taken with no profile behind it.
	profileReq := &model.CreateUserProfileRequest{
		Email: in.Email,
		Name:  in.Name,
		Role:  role,
	}
	if err := profileReq.ValidateProfileFields(); err != nil {
		return nil, err
	}

	identity, err := s.identity.SignUp(ctx, in)
	if err != nil {
		return nil, err
	}

	profileReq.ID = identity.UserID
	profileReq.Email = identity.Email
	profileReq.Name = identity.Name

	profile, err := s.users.Create(ctx, profileReq)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	session := s.newSession(identity, profile.Role, true)
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	return &session, nil
}

// SignIn authenticates a credential pair and starts a session.
// The role is not known yet: resolution runs in the background and the
// returned session reports itself as resolving.
func (s *AuthService) SignIn(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if s.identity == nil {
		return nil, errors.New("credential sign-in is not enabled")
	}

	identity, err := s.identity.SignIn(ctx, creds)
	if err != nil {
		return nil, err
	}

	session := s.newSession(identity, domainauth.RoleUnknown, false)
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	go s.resolveRoleAsync(session.ID, identity.UserID)

	return &session, nil
}

// resolveRoleAsync finishes role resolution for a freshly signed-in session.
// The session store discards the result if the session was reissued to a
// different principal while the lookup ran.
func (s *AuthService) resolveRoleAsync(sessionID, principalID string) {
	ctx, cancel := context.WithTimeout(context.Background(), roleResolveTimeout)
	defer cancel()

	role, err := s.resolver.Resolve(ctx, principalID)
	if err != nil {
		// Degrade to an unresolved session; GetSession retries lazily.
		s.logger.WarnContext(ctx, "role resolution failed",
			"session_id", sessionID, "principal_id", principalID, "error", err)
		return
	}

	if _, err := s.sessions.CompleteRoleResolution(ctx, sessionID, principalID, role); err != nil {
		s.logger.WarnContext(ctx, "complete role resolution failed",
			"session_id", sessionID, "error", err)
	}
}

// GetSession retrieves a session by ID, expiring it when past due.
// An unresolved session triggers one synchronous resolution attempt; on
// failure the session is returned still-resolving rather than erroring.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	if session.Resolving() {
		if resolved, ok := s.tryResolveNow(ctx, session); ok {
			return &resolved, nil
		}
	}

	return &session, nil
}

func (s *AuthService) tryResolveNow(ctx context.Context, session domainauth.Session) (domainauth.Session, bool) {
	role, err := s.resolver.Resolve(ctx, session.PrincipalID)
	if err != nil {
		s.logger.DebugContext(ctx, "lazy role resolution failed",
			"session_id", session.ID, "error", err)
		return domainauth.Session{}, false
	}
	resolved, err := s.sessions.CompleteRoleResolution(ctx, session.ID, session.PrincipalID, role)
	if err != nil {
		s.logger.DebugContext(ctx, "complete role resolution failed",
			"session_id", session.ID, "error", err)
		return domainauth.Session{}, false
	}
	return resolved, true
}

// BeginLoginResult contains the result of beginning a redirect login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates a redirect authentication flow and returns the
// provider auth URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.redirect == nil {
		return nil, errors.New("redirect sign-in is not enabled")
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.redirect.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing a redirect login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin completes a redirect authentication flow. The role comes
// from the stored profile; on first login a profile is created with the
// role the provider's groups map to. The session starts resolved either way.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*domainauth.Session, error) {
	if s.redirect == nil {
		return nil, errors.New("redirect sign-in is not enabled")
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.redirect.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	role, err := s.roleForRedirectIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}

	session := s.newSession(identity, role, true)
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	return &session, nil
}

// roleForRedirectIdentity returns the role the stored profile carries,
// creating the profile on first login.
func (s *AuthService) roleForRedirectIdentity(ctx context.Context, identity domainauth.Identity) (domainauth.Role, error) {
	profile, err := s.users.GetByID(ctx, identity.UserID)
	if err == nil {
		return profile.Role, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return domainauth.RoleUnknown, fmt.Errorf("lookup profile: %w", err)
	}

	role := identity.Role
	if !domainauth.ValidRole(role) {
		if s.roles == nil {
			role = domainauth.RoleFarmer
		} else {
			role = s.roles.Map(identity.Groups)
		}
	}

	created, err := s.users.Create(ctx, &model.CreateUserProfileRequest{
		ID:    identity.UserID,
		Email: identity.Email,
		Name:  identity.Name,
		Role:  role,
	})
	if err != nil {
		return domainauth.RoleUnknown, fmt.Errorf("create profile: %w", err)
	}
	return created.Role, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *AuthService) newSession(identity domainauth.Identity, role domainauth.Role, resolved bool) domainauth.Session {
	expiresAt := identity.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.sessionTTL)
	}
	return domainauth.Session{
		ID:           generateSessionID(),
		PrincipalID:  identity.UserID,
		Name:         identity.Name,
		Email:        identity.Email,
		Role:         role,
		RoleResolved: resolved,
		ExpiresAt:    expiresAt,
	}
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
