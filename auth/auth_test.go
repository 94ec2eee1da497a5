package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestCreateAndVerifyToken(t *testing.T) {
	token, err := CreateToken(secret, "session-1", time.Hour)
	require.NoError(t, err)

	subject, err := VerifyToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", subject)
}

func TestVerifyToken_Rejects(t *testing.T) {
	expired, err := CreateToken(secret, "session-1", -time.Minute)
	require.NoError(t, err)

	otherKey, err := CreateToken([]byte("other-secret"), "session-1", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "session-1"}).SignedString(secret)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "session-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"other key":    otherKey,
		"no expiry":    noExpiry,
		"no subject":   noSubject,
		"wrong method": wrongAlg,
		"garbage":      "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := VerifyToken(secret, token)
			assert.Error(t, err)
		})
	}
}

func TestMissingSecret(t *testing.T) {
	_, err := CreateToken(nil, "session-1", time.Hour)
	assert.ErrorIs(t, err, errNoSecret)

	_, err = VerifyToken(nil, "anything")
	assert.ErrorIs(t, err, errNoSecret)
}
