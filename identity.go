package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cluewave/room"

	"github.com/golang-jwt/jwt/v4"
)

var ErrMissingToken = errors.New("missing bearer token")

type IdentityClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IdentityJWT checks tokens minted by the identity provider with a shared HS256 secret.
// The subject is the user's email.
type IdentityJWT struct {
	jwtSecret string
}

func NewIdentityJWT(jwtSecret string) *IdentityJWT {
	return &IdentityJWT{jwtSecret}
}

// GenerateIdentityJWT mints a token the way the identity provider does. Used by tests and local tooling.
func (i IdentityJWT) GenerateIdentityJWT(identity room.VerifiedIdentity, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		Username: identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString([]byte(i.jwtSecret))
}

func (i IdentityJWT) Verify(tokenString string) (room.VerifiedIdentity, error) {
	var claims IdentityClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(i.jwtSecret), nil
	})
	if err != nil {
		return room.VerifiedIdentity{}, err
	}
	if !token.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return room.VerifiedIdentity{}, errors.New("invalid identity token")
	}
	return room.VerifiedIdentity{Name: claims.Username, Email: claims.Subject}, nil
}

func (i IdentityJWT) VerifyRequest(r *http.Request) (room.VerifiedIdentity, error) {
	header := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return room.VerifiedIdentity{}, ErrMissingToken
	}
	return i.Verify(tokenString)
}
