package utils

import (
	"testing"

	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/models"
)

func tokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "access_secret",
		JWTRefreshSecret:          "refresh_secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 168,
	}
}

func TestGenerateAndValidateTokens(t *testing.T) {
	cfg := tokenConfig()
	user := &models.User{Role: models.RoleAdmin}
	user.ID = "user-123"

	access, refresh, err := GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token returned")
	}

	claims, err := ValidateToken(access, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken(access): %v", err)
	}
	if claims.UserID != "user-123" || claims.Role != models.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}

	claims, err = ValidateToken(refresh, cfg.JWTRefreshSecret)
	if err != nil {
		t.Fatalf("ValidateToken(refresh): %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("refresh claims = %+v", claims)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := tokenConfig()
	user := &models.User{Role: models.RoleUser}
	user.ID = "user-123"

	access, _, err := GenerateTokens(user, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken(access, "some_other_secret"); err == nil {
		t.Error("token accepted with the wrong secret")
	}
	// An access token must not validate against the refresh secret.
	if _, err := ValidateToken(access, cfg.JWTRefreshSecret); err == nil {
		t.Error("access token accepted as refresh token")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "secret"); err == nil {
		t.Error("garbage token accepted")
	}
}
