package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification: missing,
// malformed, expired or carrying a bad signature. Callers must not be able to
// tell these cases apart.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the verified contents of a session token.
type Claims struct {
	UserID    uint
	SessionID string
}

// Verifier defines the interface for session token verification.
type Verifier interface {
	// ParseToken verifies the signature and expiry of a token and returns
	// its claims. Any failure yields ErrInvalidToken.
	ParseToken(token string) (*Claims, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new token verifier with the provided secret.
func NewVerifier(secret string) Verifier {
	return &verifier{secret: []byte(secret)}
}

// ParseToken verifies an HS256-signed token and extracts the user and session
// IDs from its claims.
func (v *verifier) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrInvalidToken
	}

	sid, _ := claims["sid"].(string)

	return &Claims{UserID: uint(sub), SessionID: sid}, nil
}
