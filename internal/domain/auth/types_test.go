package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, NormalizeRole("admin"))
	assert.Equal(t, RoleAdmin, NormalizeRole("Admin"))
	assert.Equal(t, RoleAdmin, NormalizeRole("ADMIN"))
	assert.Equal(t, RoleAdmin, NormalizeRole("  admin  "))
	assert.Equal(t, RoleEmployee, NormalizeRole("employee"))
	assert.Equal(t, RoleEmployee, NormalizeRole("Employee"))
}

func TestNormalizeRole_UnknownFallsBackToGuest(t *testing.T) {
	assert.Equal(t, RoleGuest, NormalizeRole(""))
	assert.Equal(t, RoleGuest, NormalizeRole("superuser"))
	assert.Equal(t, RoleGuest, NormalizeRole("guest"))
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleEmployee.IsAdmin())
	assert.False(t, RoleGuest.IsAdmin())

	// The admin branch must behave identically regardless of the casing the
	// role string arrived with, provided it passed through NormalizeRole.
	for _, raw := range []string{"admin", "Admin", "ADMIN"} {
		assert.True(t, NormalizeRole(raw).IsAdmin(), raw)
	}
}

func TestSession_IsGuest(t *testing.T) {
	assert.True(t, Session{Role: RoleGuest}.IsGuest())
	assert.False(t, Session{Role: RoleEmployee}.IsGuest())
}
