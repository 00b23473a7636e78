package authroles

import (
	"strings"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

var _ ports.RoleMapper = StaticRoleMapper{}

// StaticRoleMapper resolves roles from a fixed username table. Used as a
// fallback when a server response or third-party identity does not assert a
// role. Lookups are case-insensitive; unknown usernames map to guest.
type StaticRoleMapper struct {
	Users map[string]domainauth.Role
}

// DefaultUsers is the seeded role table of the deployment.
func DefaultUsers() map[string]domainauth.Role {
	return map[string]domainauth.Role{
		"pulkit": domainauth.RoleEmployee,
		"ankit":  domainauth.RoleEmployee,
		"deepak": domainauth.RoleEmployee,
	}
}

func (m StaticRoleMapper) Map(username string) domainauth.Role {
	if role, ok := m.Users[strings.ToLower(strings.TrimSpace(username))]; ok {
		return domainauth.NormalizeRole(string(role))
	}
	return domainauth.RoleGuest
}
