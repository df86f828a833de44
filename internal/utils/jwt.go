// Package utils provides helpers for admin session tokens and password
// verification.
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role claim carried by every admin session token.
const AdminRole = "ADMIN"

// AccessToken is a signed JWT session token along with its expiry. The
// admin panel stores the token and sends it as a Bearer header on every
// management call.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAdminToken builds and signs an HS256 JWT for the admin session.
// There is no user database behind the admin login, so the subject is a
// fixed identifier; authorization rests on the role claim.
func NewAdminToken(secret string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": AdminRole,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
