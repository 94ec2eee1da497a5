package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errNoSecret = errors.New("auth: JWT secret key not set")

// CreateToken signs sessionID into a token that expires after ttl.
func CreateToken(secretKey []byte, sessionID string, ttl time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", errNoSecret
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks the signature and expiry of tokenString and returns the session id it carries.
func VerifyToken(secretKey []byte, tokenString string) (string, error) {
	if len(secretKey) == 0 {
		return "", errNoSecret
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no session")
	}

	return claims.Subject, nil
}
