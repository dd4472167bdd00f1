package service

import (
	"errors"
	"time"

	"github.com/prioritypro/prioritypro/internal/api/domain"
	"github.com/prioritypro/prioritypro/pkg/jwtx"
)

// ErrUnauthenticated is the uniform rejection for missing, malformed,
// tampered or expired tokens. The underlying reason is deliberately not
// exposed to callers.
var ErrUnauthenticated = errors.New("unauthenticated")

// TokenService issues and verifies stateless session tokens. Nothing is
// persisted per token; expiry is the only server-side bound on a session.
type TokenService struct {
	Signer    jwtx.Signer
	Verifier  jwtx.Verifier
	Issuer    string
	AccessTTL time.Duration
}

// Issue produces a signed token encoding the account id and an expiry.
// A zero AccessTTL means unset and falls back to the default; a negative
// TTL is honored and issues an already-expired token.
func (s *TokenService) Issue(account domain.Account) (string, error) {
	ttl := s.AccessTTL
	if ttl == 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(account.ID, account.Username, s.Issuer, ttl, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Verify returns the account id a token was issued for, or
// ErrUnauthenticated for anything that does not verify cleanly.
//
// The HTTP layer does not call this: httpx.AuthnMiddleware verifies
// through the jwtx.Verifier directly so it can put the full claims in the
// request context. Both paths share the same Verifier, and both must
// collapse every failure into one opaque rejection; keep them in step.
func (s *TokenService) Verify(raw string) (string, error) {
	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		return "", ErrUnauthenticated
	}

	if claims.Subject == "" {
		return "", ErrUnauthenticated
	}

	return claims.Subject, nil
}
