package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

// Authenticator maps a bearer credential to a principal. Rejections wrap
// domain.ErrUnauthenticated.
type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (domain.Principal, error)
}

// Claims are the token claims this service reads
type Claims struct {
	Admin bool `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

type cachedPrincipal struct {
	principal domain.Principal
	expiresAt time.Time
}

// JWTAuthenticator verifies HS256 tokens and caches verified principals until
// the token expires or the cache TTL passes, whichever is first
type JWTAuthenticator struct {
	secret []byte
	parser *jwt.Parser
	cache  *expirable.LRU[string, cachedPrincipal]
	now    func() time.Time
}

// NewJWTAuthenticator creates an authenticator for tokens signed with secret
func NewJWTAuthenticator(secret string, cacheSize int, cacheTTL time.Duration) *JWTAuthenticator {
	if cacheSize < 1 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	a := &JWTAuthenticator{
		secret: []byte(secret),
		cache:  expirable.NewLRU[string, cachedPrincipal](cacheSize, nil, cacheTTL),
		now:    time.Now,
	}
	a.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{SigningMethod}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return a.now() }),
	)
	return a
}

// Authenticate verifies the token and returns its principal
func (a *JWTAuthenticator) Authenticate(_ context.Context, credential string) (domain.Principal, error) {
	if credential == "" {
		return domain.Principal{}, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingCredential)
	}

	if entry, ok := a.cache.Get(credential); ok {
		if a.now().Before(entry.expiresAt) {
			return entry.principal, nil
		}
		a.cache.Remove(credential)
	}

	claims := &Claims{}
	_, err := a.parser.ParseWithClaims(credential, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgExpiredToken)
		}
		return domain.Principal{}, fmt.Errorf("%w: %s: %v", domain.ErrUnauthenticated, ErrMsgInvalidToken, err)
	}
	if claims.Subject == "" {
		return domain.Principal{}, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingSubject)
	}

	principal := domain.Principal{ID: claims.Subject, IsAdmin: claims.Admin}
	a.cache.Add(credential, cachedPrincipal{
		principal: principal,
		expiresAt: claims.ExpiresAt.Time,
	})
	return principal, nil
}

// Invalidate forgets every cached principal
func (a *JWTAuthenticator) Invalidate() {
	a.cache.Purge()
}
