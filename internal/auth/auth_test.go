package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crewcal/internal/auth"
)

func TestVerifyPassphrasePlaintext(t *testing.T) {
	require.True(t, auth.VerifyPassphrase("crad2026", "crad2026"))
	require.False(t, auth.VerifyPassphrase("crad2026", "wrong"))
	require.False(t, auth.VerifyPassphrase("", ""))
}

func TestVerifyPassphraseBcrypt(t *testing.T) {
	hashed, err := auth.HashPassphrase("crad2026", 4)
	require.NoError(t, err)
	require.True(t, auth.VerifyPassphrase(hashed, "crad2026"))
	require.False(t, auth.VerifyPassphrase(hashed, "wrong"))
}

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("americas")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "americas", claims.Region)
	require.True(t, claims.Admin)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenManager("secret-a", 60).GenerateToken("americas")
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b", 60).ParseToken(token)
	require.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 60)
	_, err := tm.ParseToken("not.a.jwt")
	require.Error(t, err)
}
