package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/ports"
	"github.com/soilfarming/soil-agent/internal/service"
)

// stubAuthService is a func-backed AuthServiceInterface double for handler
// and middleware tests.
type stubAuthService struct {
	Session       *domainauth.Session
	GetSessionErr error

	SignUpFunc func(ctx context.Context, in ports.SignUpInput) (*domainauth.Session, error)
	SignInFunc func(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error)

	LoggedOut []string
}

func (s *stubAuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domainauth.Session, error) {
	if s.SignUpFunc != nil {
		return s.SignUpFunc(ctx, in)
	}
	return s.Session, s.GetSessionErr
}

func (s *stubAuthService) SignIn(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if s.SignInFunc != nil {
		return s.SignInFunc(ctx, creds)
	}
	return s.Session, s.GetSessionErr
}

func (s *stubAuthService) BeginLogin(_ context.Context, _ string) (*service.BeginLoginResult, error) {
	return &service.BeginLoginResult{
		AuthURL: "https://idp.example.com/authorize?state=state-1",
		State:   "state-1",
		Nonce:   "nonce-1",
	}, nil
}

func (s *stubAuthService) CompleteLogin(
	_ context.Context,
	_ service.CompleteLoginInput,
) (*domainauth.Session, error) {
	if s.GetSessionErr != nil {
		return nil, s.GetSessionErr
	}
	return s.Session, nil
}

func (s *stubAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if s.GetSessionErr != nil {
		return nil, s.GetSessionErr
	}
	if s.Session == nil || s.Session.ID != sessionID {
		return nil, errNoSuchSession
	}
	return s.Session, nil
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	s.LoggedOut = append(s.LoggedOut, sessionID)
	return nil
}

var errNoSuchSession = &sessionLookupError{}

type sessionLookupError struct{}

func (*sessionLookupError) Error() string { return "session not found" }

func adminSession() *domainauth.Session {
	return &domainauth.Session{
		ID:           "sess-admin",
		PrincipalID:  "admin-1",
		Name:         "Asha Admin",
		Email:        "asha@example.com",
		Role:         domainauth.RoleAdmin,
		RoleResolved: true,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func farmerSession() *domainauth.Session {
	return &domainauth.Session{
		ID:           "sess-farmer",
		PrincipalID:  "farmer-1",
		Name:         "Fatima Farmer",
		Email:        "fatima@example.com",
		Role:         domainauth.RoleFarmer,
		RoleResolved: true,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func resolvingSession() *domainauth.Session {
	return &domainauth.Session{
		ID:          "sess-pending",
		PrincipalID: "farmer-2",
		Email:       "pending@example.com",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

// newSessionRequest builds a request that carries both the session cookie
// and the session in context, so it works against middleware and against
// handlers called directly.
func newSessionRequest(method, target string, body []byte, session *domainauth.Session) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	if session != nil {
		r.AddCookie(&http.Cookie{Name: "session_id", Value: session.ID})
		r = r.WithContext(SetSessionInContext(r.Context(), session))
	}
	return r
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}
