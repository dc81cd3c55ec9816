package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned when a token fails signature or claim checks.
var ErrTokenInvalid = errors.New("invalid token")

// Claims is the payload embedded in every issued token: the registered subject,
// issue and expiry timestamps, plus the principal's granted authorities so
// downstream authorization needs no second lookup.
type Claims struct {
	Authorities []string `json:"authorities"`
	jwt.RegisteredClaims
}

// TokenCodec issues and validates HS256-signed JWTs. The signing key is
// process-wide configuration, loaded once at startup, and never rotated at
// runtime. Tokens are stateless: expiry is the only invalidation mechanism.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a codec signing with the given symmetric secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue signs a token for subject with expiry now+ttl.
func (c *TokenCodec) Issue(subject string, authorities []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Authorities: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// ExtractSubject verifies the token signature, then returns the subject claim.
// No claim is trusted before the signature checks out.
func (c *TokenCodec) ExtractSubject(token string) (string, error) {
	claims, err := c.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// Authorities verifies the token and returns its granted-authority claims.
func (c *TokenCodec) Authorities(token string) ([]string, error) {
	claims, err := c.parse(token)
	if err != nil {
		return nil, err
	}
	return claims.Authorities, nil
}

// IsValid reports whether the token carries a valid signature, has not
// expired, and names expectedSubject.
func (c *TokenCodec) IsValid(token, expectedSubject string) bool {
	claims, err := c.parse(token)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

func (c *TokenCodec) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
