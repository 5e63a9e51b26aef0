// Package token issues and verifies the signed bearer tokens used by the
// admin and superadmin APIs. Tokens are never persisted; expiry is the only
// invalidation mechanism.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 30 * time.Minute

const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

var (
	// ErrInvalid indicates a malformed token or a signature that does not verify.
	ErrInvalid = errors.New("invalid token")
	// ErrExpired indicates a well-formed, correctly signed token past its expiry.
	ErrExpired = errors.New("token expired")
)

// Claims is the claim set embedded into every issued token.
type Claims struct {
	AdminID          string `json:"admin_id,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	Role             string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a process-wide HS256 secret.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue embeds issued-at and expiry into the claim set and signs it.
func (i *Issuer) Issue(claims Claims) (string, time.Time, error) {
	return i.IssueWithTTL(claims, i.ttl)
}

// IssueWithTTL issues a token with an explicit lifetime.
func (i *Issuer) IssueWithTTL(claims Claims, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    i.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies signature and expiry and returns the embedded claims.
// Expiry and invalidity are distinct failures even though callers map both
// to the same HTTP status.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalid
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalid
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, ErrInvalid
	}
	return claims, nil
}
