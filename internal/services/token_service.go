package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"auth-service/config"
	auth_errors "auth-service/pkg/errors"
)

// TokenService issues and verifies the signed bearer tokens that stand in
// for sessions. Tokens are HS256 JWTs carrying the account ID as subject;
// there is no server-side session state behind them.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *config.Config) (*TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, config.ErrMissingSecret
	}

	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *TokenService) Issue(accountID uuid.UUID, email string) (string, error) {
	now := s.now()

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	incrementTokensIssued()
	return signed, nil
}

func (s *TokenService) Verify(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, auth_errors.ErrUnauthorized
	}

	incrementTokenVerifications()

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, auth_errors.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		incrementTokenVerificationsFailed()
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, auth_errors.ErrTokenExpired
		}
		return Claims{}, auth_errors.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		incrementTokenVerificationsFailed()
		return Claims{}, auth_errors.ErrTokenInvalid
	}

	return *claims, nil
}

// TTL reports how long issued tokens stay valid. The cookie written at
// login uses the same lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
