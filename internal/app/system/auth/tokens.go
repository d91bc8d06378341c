// Package auth issues and verifies the bearer tokens used by the
// authenticated API surface, and provides the middleware that resolves a
// token to a user record.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad
// signature, wrong algorithm, malformed token, missing claim. Collapsing
// the causes keeps the client-visible behavior a uniform 401.
var ErrInvalidToken = errors.New("invalid authentication token")

// Claims embeds the registered JWT claims plus the Discord id the token
// was issued for.
type Claims struct {
	jwt.RegisteredClaims
	DiscordUserID string `json:"discord_user_id"`
}

// TokenService signs and verifies HS256 tokens with a process-wide secret.
//
// Tokens carry no expiry. That matches the contract the bot and web
// clients were built against; adding expiry would invalidate every token
// in the field, so it must not be done silently.
type TokenService struct {
	secret []byte
}

// NewTokenService constructs a TokenService around the signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token embedding the given Discord id.
func (s *TokenService) Issue(discordUserID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		DiscordUserID: discordUserID,
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded Discord id.
// Any failure, including an empty discord_user_id claim, yields
// ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.DiscordUserID == "" {
		return "", ErrInvalidToken
	}
	return claims.DiscordUserID, nil
}
