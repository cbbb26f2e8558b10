package auth

import (
	"testing"

	"edcenter/app/config"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret-pass" {
		t.Error("hash equals the plain password")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "staff@example.com", "Asha", "Iyer", []string{"accountant"})
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", claims.UserID)
	}
	if claims.Email != "staff@example.com" {
		t.Errorf("Email = %s", claims.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "accountant" {
		t.Errorf("Roles = %v", claims.Roles)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("malformed token accepted")
	}
}
