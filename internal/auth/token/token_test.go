package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *Issuer {
	return NewIssuer("test-secret", "spiten", 30*time.Minute)
}

func TestIssueParseRoundtrip(t *testing.T) {
	issuer := newTestIssuer()

	raw, expiresAt, err := issuer.Issue(Claims{
		AdminID:          "42",
		OrganizationName: "acme",
		Role:             RoleAdmin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.AdminID)
	assert.Equal(t, "acme", claims.OrganizationName)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "spiten", claims.Issuer)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
}

func TestParseExpired(t *testing.T) {
	issuer := newTestIssuer()

	raw, _, err := issuer.IssueWithTTL(Claims{Role: RoleAdmin, OrganizationName: "acme"}, -time.Minute)
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestParseTamperedSignature(t *testing.T) {
	issuer := newTestIssuer()

	raw, _, err := issuer.Issue(Claims{Role: RoleSuperadmin})
	require.NoError(t, err)

	tampered := []byte(raw)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = issuer.Parse(string(tampered))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseWrongSecret(t *testing.T) {
	raw, _, err := newTestIssuer().Issue(Claims{Role: RoleAdmin})
	require.NoError(t, err)

	other := NewIssuer("other-secret", "spiten", time.Minute)
	_, err = other.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseGarbage(t *testing.T) {
	issuer := newTestIssuer()

	for _, raw := range []string{"", "   ", "not-a-token", "a.b.c"} {
		_, err := issuer.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalid, "raw=%q", raw)
	}
}
