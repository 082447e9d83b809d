package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"printhouse-backend/models"
)

// CookieName is the HTTP-only cookie carrying the session token.
const CookieName = "auth-token"

// SessionDuration is how long an issued token stays valid.
const SessionDuration = 30 * 24 * time.Hour

var (
	// ErrInvalidCredentials is returned for an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for a malformed, tampered or expired token.
	ErrInvalidToken = errors.New("invalid session token")
)

type sessionClaims struct {
	User models.SessionUser `json:"user"`
	jwt.RegisteredClaims
}

// VerifyCredentials looks up the user by email and compares the bcrypt hash.
func VerifyCredentials(ctx context.Context, db *mongo.Database, email, password string) (*models.User, error) {
	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CreateSessionToken signs an HS256 JWT embedding the user identity.
func CreateSessionToken(secret []byte, user models.SessionUser) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifySessionToken checks signature and expiry and returns the session.
// Any failure maps to ErrInvalidToken; callers treat that as unauthenticated
// rather than as an exception.
func VerifySessionToken(secret []byte, tokenString string) (*models.Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	session := &models.Session{User: claims.User}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
