package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/soilfarming/soil-agent/internal/core"
	"github.com/soilfarming/soil-agent/internal/data"
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/ports"
)

// ProfileRoleResolver resolves a principal's role from its stored profile.
// Concurrent lookups for the same principal are collapsed into one query
// via singleflight; a burst of status polls during sign-in hits the
// database once.
type ProfileRoleResolver struct {
	users core.UserRepository
	group singleflight.Group
}

// NewProfileRoleResolver constructs a ProfileRoleResolver.
func NewProfileRoleResolver(users core.UserRepository) *ProfileRoleResolver {
	if users == nil {
		panic("UserRepository is required")
	}
	return &ProfileRoleResolver{users: users}
}

// Resolve looks up the principal's profile and returns its role.
// A missing profile is not an error: it resolves to RoleUnknown so the
// caller can mark the session resolved-without-role instead of retrying
// forever. Store failures are returned for the caller to log and degrade.
func (r *ProfileRoleResolver) Resolve(ctx context.Context, principalID string) (domainauth.Role, error) {
	if principalID == "" {
		return domainauth.RoleUnknown, errors.New("principal ID is required")
	}

	v, err, _ := r.group.Do(principalID, func() (any, error) {
		profile, lookupErr := r.users.GetByID(ctx, principalID)
		if lookupErr != nil {
			if errors.Is(lookupErr, data.ErrUserNotFound) {
				return domainauth.RoleUnknown, nil
			}
			return domainauth.RoleUnknown, fmt.Errorf("lookup profile %s: %w", principalID, lookupErr)
		}
		return profile.Role, nil
	})
	if err != nil {
		return domainauth.RoleUnknown, err
	}
	role, _ := v.(domainauth.Role)
	return role, nil
}

var _ ports.RoleResolver = (*ProfileRoleResolver)(nil)
