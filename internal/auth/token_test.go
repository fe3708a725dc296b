package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *TokenManager {
	return NewTokenManager([]byte("test-secret"), "hoshloop", "hoshloop-admin", time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	manager := testManager()

	token, err := manager.Issue("acc-1", "owner@example.com", "Ada", "rest-1")
	require.NoError(t, err)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "rest-1", claims.RestaurantID)
	assert.Equal(t, "hoshloop", claims.Issuer)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := testManager().Issue("acc-1", "owner@example.com", "Ada", "rest-1")
	require.NoError(t, err)

	other := NewTokenManager([]byte("different-secret"), "hoshloop", "hoshloop-admin", time.Hour)
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuerMismatch(t *testing.T) {
	minted := NewTokenManager([]byte("test-secret"), "someone-else", "hoshloop-admin", time.Hour)
	token, err := minted.Issue("acc-1", "", "", "")
	require.NoError(t, err)

	_, err = testManager().Parse(token)
	assert.Error(t, err)
}

func TestTokenAudienceMismatch(t *testing.T) {
	minted := NewTokenManager([]byte("test-secret"), "hoshloop", "other-app", time.Hour)
	token, err := minted.Issue("acc-1", "", "", "")
	require.NoError(t, err)

	_, err = testManager().Parse(token)
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	manager := testManager()
	issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issued }

	token, err := manager.Issue("acc-1", "", "", "")
	require.NoError(t, err)

	manager.now = func() time.Time { return issued.Add(30 * time.Minute) }
	_, err = manager.Parse(token)
	require.NoError(t, err)

	manager.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = manager.Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbageInput(t *testing.T) {
	_, err := testManager().Parse("not.a.token")
	assert.Error(t, err)

	_, err = testManager().Parse("")
	assert.Error(t, err)
}

func TestPasswordHasherRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse battery"))
	assert.Error(t, hasher.Compare(hash, "wrong password"))
}
