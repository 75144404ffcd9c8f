package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
)

func TestStaticRoleMapper_Map(t *testing.T) {
	m := StaticRoleMapper{AdminGroup: "soil-admins"}

	tests := []struct {
		name   string
		groups []string
		want   domainauth.Role
	}{
		{"admin group present", []string{"staff", "soil-admins"}, domainauth.RoleAdmin},
		{"no admin group", []string{"staff", "readers"}, domainauth.RoleFarmer},
		{"empty groups", nil, domainauth.RoleFarmer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Map(tt.groups))
		})
	}
}

func TestStaticRoleMapper_EmptyAdminGroup(t *testing.T) {
	// An unset admin group never grants admin, even for empty group names.
	m := StaticRoleMapper{}
	assert.Equal(t, domainauth.RoleFarmer, m.Map([]string{""}))
}
