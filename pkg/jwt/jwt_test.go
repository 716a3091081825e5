package jwt

import (
	"testing"
	"time"

	"hms-backend/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	staffID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(staffID, "doctor@hospital.test", "doctor")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.StaffID != staffID {
		t.Errorf("StaffID = %s, want %s", claims.StaffID, staffID)
	}
	if claims.Email != "doctor@hospital.test" {
		t.Errorf("Email = %s", claims.Email)
	}
	if claims.Role != "doctor" {
		t.Errorf("Role = %s, want doctor", claims.Role)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %s, want %s", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %s, want %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "admin@hospital.test", "admin")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %s, want %s", claims.TokenType, RefreshToken)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "a@b.test", "nurse")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTService(config.JWTConfig{
		Secret:        "different-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: time.Hour,
	})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.test", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for expired token")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := testService().ValidateToken("not.a.jwt"); err == nil {
		t.Fatal("expected validation to fail for malformed token")
	}
}
