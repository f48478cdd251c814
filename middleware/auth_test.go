package middleware

import (
	"fmt"
	"testing"

	"attendance_backend/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "correct horse" {
		t.Fatal("password stored in plaintext")
	}
	if !VerifyPassword(hashed, "correct horse") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hashed, "wrong horse") {
		t.Fatal("wrong password accepted")
	}
}

func parseClaims(t *testing.T, tokenString string, secret []byte) (*models.Claims, error) {
	t.Helper()
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	return claims, err
}

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	tokenString, err := NewAccessToken(42, models.RoleManager, secret)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	claims, err := parseClaims(t, tokenString, secret)
	if err != nil {
		t.Fatalf("parsing own token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleManager {
		t.Fatalf("role = %q, want %q", claims.Role, models.RoleManager)
	}
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	tokenString, err := NewAccessToken(42, models.RoleEmployee, []byte("right-secret"))
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	if _, err := parseClaims(t, tokenString, []byte("wrong-secret")); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}
