package auth

import (
	"testing"
	"time"

	"github.com/and161185/posloyalty/internal/errs"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("testsecret")
	token, err := tm.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	staffID, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, 42, staffID)
}

func TestParseInvalidToken(t *testing.T) {
	tm := NewTokenManager("testsecret")

	_, err := tm.ParseToken("invalid.token.string")
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestParseTokenWithWrongSignature(t *testing.T) {
	tm := NewTokenManager("testsecret")

	claims := jwt.MapClaims{
		"staff_id": 1,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	badTokenStr, _ := token.SignedString([]byte("wrongsecret"))

	_, err := tm.ParseToken(badTokenStr)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	tm := NewTokenManager("testsecret")
	tm.now = func() time.Time { return time.Now().Add(-13 * time.Hour) }

	expired, err := tm.GenerateToken(1)
	require.NoError(t, err)

	_, err = tm.ParseToken(expired)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestParseTokenWithoutExpiry(t *testing.T) {
	tm := NewTokenManager("testsecret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"staff_id": 1})
	tokenStr, _ := token.SignedString([]byte("testsecret"))

	_, err := tm.ParseToken(tokenStr)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestParseTokenWithoutStaff(t *testing.T) {
	tm := NewTokenManager("testsecret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	tokenStr, _ := token.SignedString([]byte("testsecret"))

	_, err := tm.ParseToken(tokenStr)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}
