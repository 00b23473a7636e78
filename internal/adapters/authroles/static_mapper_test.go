package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
)

func TestStaticRoleMapper_KnownUsernames(t *testing.T) {
	m := StaticRoleMapper{Users: DefaultUsers()}

	assert.Equal(t, domainauth.RoleEmployee, m.Map("pulkit"))
	assert.Equal(t, domainauth.RoleEmployee, m.Map("ankit"))
	assert.Equal(t, domainauth.RoleEmployee, m.Map("deepak"))
}

func TestStaticRoleMapper_CaseInsensitive(t *testing.T) {
	m := StaticRoleMapper{Users: DefaultUsers()}

	assert.Equal(t, domainauth.RoleEmployee, m.Map("Pulkit"))
	assert.Equal(t, domainauth.RoleEmployee, m.Map("ANKIT"))
	assert.Equal(t, domainauth.RoleEmployee, m.Map("  deepak  "))
}

func TestStaticRoleMapper_UnknownIsGuest(t *testing.T) {
	m := StaticRoleMapper{Users: DefaultUsers()}

	assert.Equal(t, domainauth.RoleGuest, m.Map("stranger"))
	assert.Equal(t, domainauth.RoleGuest, m.Map(""))
}

func TestStaticRoleMapper_NormalizesTableCasing(t *testing.T) {
	m := StaticRoleMapper{Users: map[string]domainauth.Role{"boss": domainauth.Role("Admin")}}

	assert.Equal(t, domainauth.RoleAdmin, m.Map("boss"))
}
