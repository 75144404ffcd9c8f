package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// A role is fixed when the profile is created and never reassigned.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleFarmer Role = "farmer"
	// RoleUnknown marks a session whose profile lookup has not completed
	// or found no profile. Unknown sessions are authenticated but pass no
	// role gate.
	RoleUnknown Role = ""
)

// ValidRole reports whether r is a role a profile may carry.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleFarmer
}

// Identity represents the authenticated principal returned by an
// identity provider. Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID string // stable principal identifier (uuid or sub)
	Name   string
	Email  string
	Groups []string
	// Role is set when the provider itself knows the role (signup,
	// dev auth). Left unknown for providers that only authenticate.
	Role      Role
	ExpiresAt time.Time // absolute expiry, zero when the session TTL applies
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID          string    `json:"id"`
	PrincipalID string    `json:"principal_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	// RoleResolved distinguishes "role lookup still pending" from
	// "lookup finished, no role found".
	RoleResolved bool      `json:"role_resolved"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsAdmin returns true if the session carries a resolved admin role.
func (s Session) IsAdmin() bool { return s.RoleResolved && s.Role == RoleAdmin }

// Resolving returns true while the profile lookup for this session is
// still in flight.
func (s Session) Resolving() bool { return !s.RoleResolved }
