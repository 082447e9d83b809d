package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"printhouse-backend/models"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestSessionTokenRoundTrip(t *testing.T) {
	user := models.SessionUser{
		ID:    "64b7f3a2e13f4a0001c0ffee",
		Email: "admin@example.com",
		Name:  "Administrator",
		Role:  "admin",
	}

	token, err := CreateSessionToken(testSecret, user)
	if err != nil {
		t.Fatal(err)
	}

	session, err := VerifySessionToken(testSecret, token)
	if err != nil {
		t.Fatal(err)
	}
	if session.User != user {
		t.Errorf("session user = %+v, want %+v", session.User, user)
	}
	if remaining := time.Until(session.ExpiresAt); remaining < 29*24*time.Hour {
		t.Errorf("token expires too soon: %v remaining", remaining)
	}
}

func TestVerifySessionTokenFailures(t *testing.T) {
	user := models.SessionUser{ID: "1", Email: "a@b.c"}
	valid, err := CreateSessionToken(testSecret, user)
	if err != nil {
		t.Fatal(err)
	}

	// Token signed with an expiry in the past.
	expiredClaims := sessionClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString(testSecret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		secret []byte
		token  string
	}{
		{name: "empty token", secret: testSecret, token: ""},
		{name: "garbage", secret: testSecret, token: "not.a.jwt"},
		{name: "wrong secret", secret: []byte("ffffffffffffffffffffffffffffffff"), token: valid},
		{name: "expired", secret: testSecret, token: expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifySessionToken(tt.secret, tt.token); err != ErrInvalidToken {
				t.Errorf("VerifySessionToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
