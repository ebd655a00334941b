package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "anna@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch")
	}
	if claims.Email != "anna@example.com" {
		t.Fatalf("email mismatch: %q", claims.Email)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token classified as refresh")
	}
}

func TestHMACService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	tok, err := svc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("refresh token not classified as refresh")
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch")
	}
}

func TestHMACService_RejectsForeignSignature(t *testing.T) {
	svc := newTestService()
	other := NewHMACService("different-access", "different-refresh", time.Minute, time.Minute)

	tok, err := other.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_GarbageToken(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
