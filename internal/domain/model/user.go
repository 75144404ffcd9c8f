//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/soilfarming/soil-agent/internal/domain/auth"
)

const (
	maxUserNameLen  = 255
	maxUserEmailLen = 320
)

// UserProfile is the application-level record for an authenticated
// principal. Its ID equals the identity provider's principal id, so a
// profile lookup by principal id is a primary-key fetch.
type UserProfile struct {
	ID        string    `json:"id"         db:"id"`
	Email     string    `json:"email"      db:"email"`
	Name      string    `json:"name"       db:"name"`
	Role      auth.Role `json:"role"       db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateUserProfileRequest represents parameters to create a UserProfile.
// The role is chosen at signup and fixed for the life of the profile.
type CreateUserProfileRequest struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  auth.Role `json:"role"`
}

// Validate validates CreateUserProfileRequest.
func (r *CreateUserProfileRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("id is required")
	}
	return r.ValidateProfileFields()
}

// ValidateProfileFields validates the caller-supplied fields. The ID is
// minted by the identity provider after these checks pass, so signup
// validates fields first and the full request (Validate) at create time.
func (r *CreateUserProfileRequest) ValidateProfileFields() error {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errors.New("email is required and cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return errors.New("email must contain @")
	}
	if utf8.RuneCountInString(email) > maxUserEmailLen {
		return errors.New("email cannot exceed 320 characters")
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxUserNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if !auth.ValidRole(r.Role) {
		return errors.New("role must be admin or farmer")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
