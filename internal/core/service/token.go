package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

// Claims is the session token payload. ID duplicates the subject so clients
// reading the token body find the identity under "id".
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) Issue(identityID string) (string, error) {
	now := s.now()
	claims := Claims{
		ID: identityID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the identity id of a well-formed, correctly signed and
// unexpired token. Any failure yields domain.ErrTokenInvalid.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid || claims.ID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.ID, nil
}
