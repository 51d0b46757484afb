package utils

import (
	"testing"
	"time"
)

func init() {
	SetJWTSecret("test-secret-key-for-testing")
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("user-1", "alice@example.com", true, 168)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateToken() returned empty token")
	}

	if len(token) < 50 {
		t.Errorf("token seems too short: %d chars", len(token))
	}
}

func TestGenerateToken_DifferentTokens(t *testing.T) {
	token1, _ := GenerateToken("user-1", "alice@example.com", true, 168)
	token2, _ := GenerateToken("user-2", "bob@example.com", false, 168)

	if token1 == token2 {
		t.Error("different users should produce different tokens")
	}
}

func TestParseToken(t *testing.T) {
	userID := "3f1c8a7e-0000-0000-0000-000000000001"
	email := "alice@example.com"

	token, _ := GenerateToken(userID, email, true, 168)

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %q, expected %q", claims.UserID, userID)
	}
	if claims.Email != email {
		t.Errorf("Email = %q, expected %q", claims.Email, email)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin should be true")
	}
}

func TestParseToken_NonAdminClaim(t *testing.T) {
	token, _ := GenerateToken("user-2", "bob@example.com", false, 168)

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.IsAdmin {
		t.Error("IsAdmin should be false")
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	invalidTokens := []string{
		"",
		"invalid",
		"not.a.token",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature",
	}

	for _, token := range invalidTokens {
		_, err := ParseToken(token)
		if err == nil {
			t.Errorf("ParseToken(%q) should return error", token)
		}
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	SetJWTSecret("original-secret")
	token, _ := GenerateToken("user-1", "alice@example.com", false, 168)

	SetJWTSecret("different-secret")
	_, err := ParseToken(token)

	SetJWTSecret("test-secret-key-for-testing")

	if err == nil {
		t.Error("ParseToken should fail with wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, _ := GenerateToken("user-1", "alice@example.com", false, -1)

	if _, err := ParseToken(token); err == nil {
		t.Error("ParseToken should fail for an expired token")
	}
}

func TestGenerateToken_Expiration(t *testing.T) {
	token, _ := GenerateToken("user-1", "alice@example.com", false, 168)
	claims, _ := ParseToken(token)

	expiresAt := claims.ExpiresAt.Time
	now := time.Now()

	if expiresAt.Before(now) {
		t.Error("token should not be expired immediately")
	}

	expectedExpiry := now.Add(168 * time.Hour)
	diff := expiresAt.Sub(expectedExpiry)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiration time is off by more than 1 minute: %v", diff)
	}
}

func TestSetJWTSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token1, _ := GenerateToken("user-1", "alice@example.com", false, 168)

	SetJWTSecret("second-secret")
	token2, _ := GenerateToken("user-1", "alice@example.com", false, 168)

	SetJWTSecret("test-secret-key-for-testing")

	if token1 == token2 {
		t.Error("tokens generated with different secrets should be different")
	}
}
