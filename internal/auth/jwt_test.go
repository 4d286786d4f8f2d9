package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIssueAndVerify_RoundTrip tests that an issued token verifies and
// carries the user identity
func TestIssueAndVerify_RoundTrip(t *testing.T) {
	verifier := NewTokenVerifier("test-secret-for-unit-tests", "vidtube")

	userID := uuid.New()
	token, err := verifier.Issue(userID, "someuser", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)

	gotID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "someuser", claims.Username)
}

// TestVerify_StripsBearerPrefix tests that the Authorization header value
// can be passed directly
func TestVerify_StripsBearerPrefix(t *testing.T) {
	verifier := NewTokenVerifier("test-secret-for-unit-tests", "vidtube")

	token, err := verifier.Issue(uuid.New(), "", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify("Bearer " + token)
	assert.NoError(t, err)
}

// TestVerify_ExpiredToken tests that expired tokens are rejected
func TestVerify_ExpiredToken(t *testing.T) {
	verifier := NewTokenVerifier("test-secret-for-unit-tests", "vidtube")

	token, err := verifier.Issue(uuid.New(), "", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

// TestVerify_WrongSecret tests that a token signed with another secret is
// rejected
func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenVerifier("one-secret-for-unit-testing", "vidtube")
	verifier := NewTokenVerifier("another-secret-for-testing", "vidtube")

	token, err := issuer.Issue(uuid.New(), "", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

// TestVerify_WrongIssuer tests issuer enforcement
func TestVerify_WrongIssuer(t *testing.T) {
	issuer := NewTokenVerifier("test-secret-for-unit-tests", "someone-else")
	verifier := NewTokenVerifier("test-secret-for-unit-tests", "vidtube")

	token, err := issuer.Issue(uuid.New(), "", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not trusted")
}

// TestVerify_Garbage tests rejection of malformed tokens
func TestVerify_Garbage(t *testing.T) {
	verifier := NewTokenVerifier("test-secret-for-unit-tests", "vidtube")

	_, err := verifier.Verify("not.a.token")
	assert.Error(t, err)
}
