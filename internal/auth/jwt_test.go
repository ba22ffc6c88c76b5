package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func newTestManager() *JWTManager {
	return NewJWTManager(testSecret, "moodjournal-test", "authenticated", 15*time.Minute)
}

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	got, err := manager.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if got != userID {
		t.Errorf("expected userID %s, got %s", userID, got)
	}
}

func TestJWTManager_ValidateToken_Expired(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	manager.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := manager.GenerateAccessToken(uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	manager.now = time.Now
	_, err = manager.ValidateToken(context.Background(), token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected expiry error, got %v", err)
	}
}

func TestJWTManager_ValidateToken_InvalidSignature(t *testing.T) {
	t.Parallel()

	other := NewJWTManager("another-secret-that-is-also-32-chars-long", "moodjournal-test", "authenticated", time.Minute)
	token, err := other.GenerateAccessToken(uuid.New(), 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = newTestManager().ValidateToken(context.Background(), token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestJWTManager_ValidateToken_Rejections(t *testing.T) {
	t.Parallel()

	sign := func(t *testing.T, method jwt.SigningMethod, claims jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	valid := func() accessClaims {
		now := time.Now()
		return accessClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    "moodjournal-test",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		}}
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"empty", func(*testing.T) string { return "" }},
		{"malformed", func(*testing.T) string { return "not.a.jwt" }},
		{"wrong issuer", func(t *testing.T) string {
			c := valid()
			c.Issuer = "someone-else"
			return sign(t, jwt.SigningMethodHS256, c)
		}},
		{"wrong audience", func(t *testing.T) string {
			c := valid()
			c.Audience = jwt.ClaimStrings{"anon"}
			return sign(t, jwt.SigningMethodHS256, c)
		}},
		{"no expiry", func(t *testing.T) string {
			c := valid()
			c.ExpiresAt = nil
			return sign(t, jwt.SigningMethodHS256, c)
		}},
		{"subject not uuid", func(t *testing.T) string {
			c := valid()
			c.Subject = "user-42"
			return sign(t, jwt.SigningMethodHS256, c)
		}},
		{"nil subject", func(t *testing.T) string {
			c := valid()
			c.Subject = uuid.Nil.String()
			return sign(t, jwt.SigningMethodHS256, c)
		}},
		{"hs512", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodHS512, valid())
		}},
	}

	manager := newTestManager()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, err := manager.ValidateToken(context.Background(), tt.token(t))
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
			if id != uuid.Nil {
				t.Errorf("expected nil id, got %s", id)
			}
		})
	}
}

func TestJWTManager_ChecksDisabledWhenUnset(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager(testSecret, "https://project.example/auth/v1", "", time.Minute)
	token, err := issuer.GenerateAccessToken(uuid.New(), 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	lenient := NewJWTManager(testSecret, "", "", time.Minute)
	if _, err := lenient.ValidateToken(context.Background(), token); err != nil {
		t.Fatalf("expected token to validate without issuer/audience checks, got %v", err)
	}
}
