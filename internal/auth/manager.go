package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "employee-service/pkg/errors"
)

const bearerPrefix = "Bearer "

// Claims is the payload embedded in issued tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Manager hashes passwords and issues and verifies bearer tokens. The
// signing secret and token lifetime are fixed at construction; nothing is
// read from process globals.
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

// New creates a new Manager with the given signing secret and token
// lifetime.
func New(secret string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// HashPassword returns the bcrypt hash of plaintext. An empty plaintext is
// rejected rather than hashed.
func (m *Manager) HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", apperrors.NewEmptyFieldError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. A
// mismatch is a false return, never an error.
func (m *Manager) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueToken signs a token carrying the user's id and email, expiring
// tokenTTL after issuance.
func (m *Manager) IssueToken(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken checks a signed token's signature and expiry and returns the
// decoded claims. Any failure, including a non-HMAC signing method, is
// reported as InvalidOrExpiredToken.
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewInvalidTokenError(err)
	}
	if !token.Valid {
		return nil, apperrors.NewInvalidTokenError(nil)
	}

	return claims, nil
}

// Authenticate checks a raw Authorization header value and returns the
// decoded claims. It fails with MissingHeader when the header is absent,
// MalformedScheme when the value is not "Bearer <token>" with a non-empty
// token, and InvalidOrExpiredToken when VerifyToken rejects the token.
func (m *Manager) Authenticate(header string) (*Claims, error) {
	if header == "" {
		return nil, apperrors.NewMissingHeaderError()
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, apperrors.NewMalformedSchemeError()
	}
	tokenString := strings.TrimPrefix(header, bearerPrefix)
	if tokenString == "" {
		return nil, apperrors.NewMalformedSchemeError()
	}

	return m.VerifyToken(tokenString)
}
