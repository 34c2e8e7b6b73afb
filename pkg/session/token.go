package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type StaffClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Role  string `json:"role,omitempty"` // "admin" or "technician"
}

type StaffIdentity struct {
	Email     string
	Role      string
	ExpiresAt time.Time
}

// SignStaffToken mints a staff session token (JWT, HS256). Used by the login
// flow and by dev tooling.
func SignStaffToken(email, role, issuer, secret string, now time.Time, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("missing signing secret")
	}
	claims := StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		Role:  role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyStaffToken verifies a staff session token and returns the identity it
// carries. Expired, unsigned, or wrong-issuer tokens are rejected.
func VerifyStaffToken(tokenString, issuer, secret string, now time.Time) (*StaffIdentity, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("missing token")
	}
	if secret == "" {
		return nil, fmt.Errorf("missing signing secret")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	claims := &StaffClaims{}
	tok, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, fmt.Errorf("token expired")
	}
	if claims.NotBefore != nil && claims.NotBefore.Time.After(now) {
		return nil, fmt.Errorf("token not active yet")
	}
	if issuer != "" && claims.Issuer != issuer {
		return nil, fmt.Errorf("issuer mismatch")
	}

	email := claims.Email
	if email == "" {
		email = claims.Subject
	}
	if email == "" {
		return nil, fmt.Errorf("missing email in token")
	}

	return &StaffIdentity{
		Email:     email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
