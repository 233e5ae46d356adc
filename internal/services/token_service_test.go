package services

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"auth-service/config"
	auth_errors "auth-service/pkg/errors"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(&config.Config{JWTSecret: "test-secret", TokenTTLHours: 1})
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	return svc
}

func TestNewTokenService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService(&config.Config{})
	if !errors.Is(err, config.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestNewTokenService_TTL(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(&config.Config{JWTSecret: "k", TokenTTLHours: 6})
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	if svc.TTL() != 6*time.Hour {
		t.Fatalf("TTL mismatch: got %v want %v", svc.TTL(), 6*time.Hour)
	}

	svc, err = NewTokenService(&config.Config{JWTSecret: "k"})
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	if svc.TTL() != 24*time.Hour {
		t.Fatalf("default TTL mismatch: got %v want %v", svc.TTL(), 24*time.Hour)
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	accountID := uuid.New()

	tok, err := svc.Issue(accountID, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != accountID.String() {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, accountID.String())
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "a@x.com")
	}
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	// Issue in the past so the 1h lifetime has already elapsed.
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.Issue(uuid.New(), "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Verify(tok)
	if !errors.Is(err, auth_errors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenService(&config.Config{JWTSecret: "right-secret", TokenTTLHours: 1})
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	verifier, err := NewTokenService(&config.Config{JWTSecret: "wrong-secret", TokenTTLHours: 1})
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	tok, err := issuer.Issue(uuid.New(), "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, auth_errors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	tok, err := svc.Issue(uuid.New(), "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	parts[1] = base64.RawURLEncoding.EncodeToString(
		[]byte(strings.Replace(string(payload), "a@x.com", "b@x.com", 1)),
	)

	if _, err := svc.Verify(strings.Join(parts, ".")); !errors.Is(err, auth_errors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_NoneAlgorithm(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("build unsigned token: %v", err)
	}

	if _, err := svc.Verify(unsigned); !errors.Is(err, auth_errors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_EmptyToken(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	if _, err := svc.Verify(""); !errors.Is(err, auth_errors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTokenService_MalformedString(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	if _, err := svc.Verify("not.a.jwt"); !errors.Is(err, auth_errors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
