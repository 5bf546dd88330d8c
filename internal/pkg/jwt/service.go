package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "skillforge"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the caller identity. Refresh tokens hold only the user ID;
// the admin flag rides on access tokens so RequireAdmin needs no lookup.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	TokenType string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string, isAdmin bool) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

// HMACService signs access and refresh tokens with separate HS256 secrets.
// The token_type claim picks the secret a token is verified with, so a
// refresh token signed with the access secret is rejected.
type HMACService struct {
	secrets map[string][]byte
	ttls    map[string]time.Duration

	now func() time.Time
}

func NewHMACService(accessSecret, refreshSecret string, accessExpiresIn, refreshExpiresIn time.Duration) *HMACService {
	return &HMACService{
		secrets: map[string][]byte{
			TokenTypeAccess:  []byte(accessSecret),
			TokenTypeRefresh: []byte(refreshSecret),
		},
		ttls: map[string]time.Duration{
			TokenTypeAccess:  accessExpiresIn,
			TokenTypeRefresh: refreshExpiresIn,
		},
		now: time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string, isAdmin bool) (string, error) {
	return s.generate(Claims{UserID: userID, Email: email, IsAdmin: isAdmin, TokenType: TokenTypeAccess})
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.generate(Claims{UserID: userID, TokenType: TokenTypeRefresh})
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(issuer),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(func() time.Time { return s.now() }),
	)

	var c Claims
	_, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return nil, ErrTokenInvalid
		}
		secret, _, err := s.keyFor(claims.TokenType)
		return secret, err
	})
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case err != nil:
		return Claims{}, ErrTokenInvalid
	}
	if c.UserID == uuid.Nil || c.Subject != c.UserID.String() {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) generate(c Claims) (string, error) {
	secret, ttl, err := s.keyFor(c.TokenType)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	c.RegisteredClaims = jwtlib.RegisteredClaims{
		Issuer:    issuer,
		Subject:   c.UserID.String(),
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(secret)
}

// keyFor returns the secret and lifetime for tokenType. Unknown types and
// unconfigured secrets are both invalid.
func (s *HMACService) keyFor(tokenType string) ([]byte, time.Duration, error) {
	secret, ttl := s.secrets[tokenType], s.ttls[tokenType]
	if len(secret) == 0 || ttl <= 0 {
		return nil, 0, ErrTokenInvalid
	}
	return secret, ttl, nil
}
