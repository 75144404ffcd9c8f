package authroles

import (
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
)

// StaticRoleMapper maps IdP groups by simple string membership rules.
// Membership in AdminGroup grants admin; everyone else is a farmer, since
// any authenticated principal may browse the reference data.
type StaticRoleMapper struct {
	AdminGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	return domainauth.RoleFarmer
}
