package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("user-1", "alice", "alice@example.com", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "alice@example.com" {
		t.Errorf("claims = %+v, want user-1/alice@example.com", claims)
	}
	if claims.IsAdmin {
		t.Error("is_admin claim set without the capability")
	}
}

func TestAdminClaim(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("user-2", "root", "root@example.com", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !claims.IsAdmin {
		t.Error("is_admin claim lost in round trip")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	other := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("user-1", "alice", "alice@example.com", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateToken("user-1", "alice", "alice@example.com", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := manager.ValidateToken(token); err == nil {
		t.Error("expired token validated")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !CheckPasswordHash("s3nha-forte", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("errada", hash) {
		t.Error("wrong password accepted")
	}
}
