package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderGuardAllowsAdminOnly(t *testing.T) {
	g := HeaderGuard{}

	require.NoError(t, g.Authorize("admin"))

	for _, claim := range []string{"", "contributor", "Admin", "ADMIN", "admin ", "superadmin"} {
		assert.ErrorIs(t, g.Authorize(claim), ErrDenied, "claim %q should be denied", claim)
	}
}

func TestHeaderGuardCredentialHeader(t *testing.T) {
	assert.Equal(t, "User-Role", HeaderGuard{}.CredentialHeader())
}

func TestTokenGuardAllowsSignedAdminToken(t *testing.T) {
	g := NewTokenGuard("test-secret")

	token, err := g.GenerateToken("admin")
	require.NoError(t, err)

	assert.NoError(t, g.Authorize("Bearer "+token))
}

func TestTokenGuardDeniesNonAdminRole(t *testing.T) {
	g := NewTokenGuard("test-secret")

	token, err := g.GenerateToken("contributor")
	require.NoError(t, err)

	assert.ErrorIs(t, g.Authorize("Bearer "+token), ErrDenied)
}

func TestTokenGuardDeniesWrongSecret(t *testing.T) {
	other := NewTokenGuard("other-secret")

	token, err := other.GenerateToken("admin")
	require.NoError(t, err)

	g := NewTokenGuard("test-secret")
	assert.ErrorIs(t, g.Authorize("Bearer "+token), ErrDenied)
}

func TestTokenGuardDeniesMalformedCredential(t *testing.T) {
	g := NewTokenGuard("test-secret")

	token, err := g.GenerateToken("admin")
	require.NoError(t, err)

	for _, credential := range []string{"", token, "Basic " + token, "Bearer not-a-token"} {
		assert.ErrorIs(t, g.Authorize(credential), ErrDenied, "credential %q should be denied", credential)
	}
}

func TestTokenGuardCredentialHeader(t *testing.T) {
	assert.Equal(t, "Authorization", NewTokenGuard("s").CredentialHeader())
}
