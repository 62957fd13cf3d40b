package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"taskflow/internal/adapter/auth"
	"taskflow/internal/core/domain"
)

func newIssuer(t *testing.T, secret string, now func() time.Time) *auth.JWTIssuer {
	t.Helper()
	issuer, err := auth.NewJWTIssuer(auth.JWTConfig{
		Secret: secret,
		Issuer: "taskflow",
		Now:    now,
	})
	require.NoError(t, err)
	return issuer
}

func TestJWTIssuer_IssueAndVerify(t *testing.T) {
	issuer := newIssuer(t, "s3cret", nil)

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestJWTIssuer_DefaultLifetimeIsSevenDays(t *testing.T) {
	issuedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	token, err := newIssuer(t, "s3cret", func() time.Time { return issuedAt }).Issue("user-1")
	require.NoError(t, err)

	justBefore := newIssuer(t, "s3cret", func() time.Time { return issuedAt.Add(7*24*time.Hour - time.Minute) })
	_, err = justBefore.Verify(token)
	require.NoError(t, err)

	after := newIssuer(t, "s3cret", func() time.Time { return issuedAt.Add(7*24*time.Hour + time.Minute) })
	_, err = after.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTIssuer_RejectsOtherSecret(t *testing.T) {
	token, err := newIssuer(t, "s3cret", nil).Issue("user-1")
	require.NoError(t, err)

	_, err = newIssuer(t, "other", nil).Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTIssuer_RejectsTamperedToken(t *testing.T) {
	issuer := newIssuer(t, "s3cret", nil)
	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = issuer.Verify(token[:len(token)-2] + "xx")
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = issuer.Verify("garbage")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTIssuer_RejectsUnsignedToken(t *testing.T) {
	claims := auth.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "taskflow",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newIssuer(t, "s3cret", nil).Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTIssuer_RejectsTokenWithoutExpiry(t *testing.T) {
	claims := auth.Claims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", Issuer: "taskflow"},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = newIssuer(t, "s3cret", nil).Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestNewJWTIssuer_RequiresSecret(t *testing.T) {
	_, err := auth.NewJWTIssuer(auth.JWTConfig{})
	require.Error(t, err)
}
