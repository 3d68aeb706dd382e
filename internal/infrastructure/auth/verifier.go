package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized covers every credential failure: missing token, bad
// signature, expiry, or a token with no subject. Callers get no further
// detail.
var ErrUnauthorized = errors.New("auth: invalid or missing credential")

// Verifier validates Supabase-issued access tokens. Supabase signs them
// HS256 with the project JWT secret, so verification happens locally against
// the same trust root the auth provider uses. No per-request network hop,
// no token caching.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// NewVerifierFromEnv reads SUPABASE_JWT_SECRET.
func NewVerifierFromEnv() (*Verifier, error) {
	secret := strings.TrimSpace(os.Getenv("SUPABASE_JWT_SECRET"))
	if secret == "" {
		return nil, errors.New("auth: SUPABASE_JWT_SECRET environment variable is not set")
	}
	return NewVerifier([]byte(secret)), nil
}

// Verify resolves a bearer token to the authenticated user id (the token's
// sub claim).
func (v *Verifier) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrUnauthorized
	}
	return sub, nil
}
