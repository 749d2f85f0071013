package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("unit-test-secret")

	for _, tt := range []TokenType{TokenRead, TokenWrite} {
		token, err := issuer.Issue(tt)
		require.NoError(t, err)

		claims, err := issuer.Verify(token, tt)
		require.NoError(t, err)
		assert.Equal(t, tt, claims.Type)
		assert.NotZero(t, claims.Timestamp)
	}
}

func TestVerifyWrongCapability(t *testing.T) {
	issuer := NewIssuer("unit-test-secret")

	readToken, err := issuer.Issue(TokenRead)
	require.NoError(t, err)

	_, err = issuer.Verify(readToken, TokenWrite)
	assert.ErrorIs(t, err, ErrWrongCapability)
}

func TestVerifyInvalidToken(t *testing.T) {
	issuer := NewIssuer("unit-test-secret")

	_, err := issuer.Verify("not.a.token", TokenRead)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// signed with a different secret
	other := NewIssuer("some-other-secret")
	token, err := other.Issue(TokenRead)
	require.NoError(t, err)

	_, err = issuer.Verify(token, TokenRead)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewIssuer("unit-test-secret")

	past := time.Now().Add(-time.Hour)
	claims := Claims{
		Type:      TokenRead,
		Timestamp: past.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(issuer.secret)
	require.NoError(t, err)

	_, err = issuer.Verify(token, TokenRead)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	issuer := NewIssuer("unit-test-secret")

	claims := Claims{Type: TokenRead, Timestamp: time.Now().UnixMilli()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(issuer.secret)
	require.NoError(t, err)

	_, err = issuer.Verify(token, TokenRead)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestInfiniteTokenHasNoExpiry(t *testing.T) {
	issuer := NewIssuer("unit-test-secret")

	token, err := issuer.IssueInfinite(TokenWrite)
	require.NoError(t, err)

	claims, err := issuer.Verify(token, TokenWrite)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}
