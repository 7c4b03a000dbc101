package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// defaultSigningKey is used when auth.signing_key is absent from config.
const defaultSigningKey = "dev-only-signing-key"

// Domain errors for auth flows.
var (
	ErrEmailTaken      = errors.New("a user with this email already exists")
	ErrMissingFields   = errors.New("name, email and password are required")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService handles account and token logic.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users) *AuthService {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		key = defaultSigningKey
	}
	return &AuthService{users: users, signingKey: []byte(key)}
}

// SignUp validates input, hashes the password and creates a new account.
// The returned view never carries the credential.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*models.UserView, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, ErrMissingFields
	}

	u, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, err
	}
	return u.View(), nil
}

// Claims defines JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken validates credentials and returns a signed JWT.
func (s *AuthService) GenerateToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u.ID)
}

// ParseToken verifies the JWT signature and returns the embedded user id.
// No store lookup happens here.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// SearchByName looks up a public profile by exact name match.
func (s *AuthService) SearchByName(ctx context.Context, name string) (*models.UserView, error) {
	u, err := s.users.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u.View(), nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user. Tokens carry no expiry; a login
// stays valid until the signing key changes.
func (s *AuthService) issueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
