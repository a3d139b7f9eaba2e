package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tm := NewTokenManager("secret", "collections-admin-api")

	token, exp, err := tm.Issue("admin-1", "admin", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", "collections-admin-api")

	expired, _, err := tm.Issue("admin-1", "admin", -time.Minute)
	require.NoError(t, err)

	otherSecret, _, err := NewTokenManager("other", "collections-admin-api").Issue("admin-1", "admin", time.Hour)
	require.NoError(t, err)

	otherIssuer, _, err := NewTokenManager("secret", "someone-else").Issue("admin-1", "admin", time.Hour)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":      expired,
		"other secret": otherSecret,
		"other issuer": otherIssuer,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tm.Parse(token)
			assert.True(t, errors.Is(err, ErrInvalidToken), "got %v", err)
		})
	}
}
