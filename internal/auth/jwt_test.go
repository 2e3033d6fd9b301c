package auth

import (
	"testing"
	"time"
)

func TestJWTManager_GenerateAndParse(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	token, err := manager.GenerateToken("user-1", "student@example.com", "student")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "student@example.com" || claims.Role != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := manager.ParseToken(token + "tampered"); err == nil {
		t.Fatalf("expected parse error for tampered token")
	}
}

func TestJWTManager_Expired(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	manager.ttl = -time.Minute

	token, err := manager.GenerateToken("user-1", "student@example.com", "student")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := manager.ParseToken(token); err == nil {
		t.Fatalf("expected parse error for expired token")
	}
}

func TestJWTManager_EmptySecret(t *testing.T) {
	manager := NewJWTManager("", time.Hour)
	if _, err := manager.GenerateToken("user", "user@example.com", "student"); err == nil {
		t.Fatalf("expected error when secret is empty")
	}
}
