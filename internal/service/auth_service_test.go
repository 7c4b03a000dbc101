package service

import (
	"context"
	"strings"
	"testing"

	"todo_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUsers is a lightweight in-test mock for repository.Users.
type mockUsers struct {
	CreateFn     func(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*models.User, error)
	GetByNameFn  func(ctx context.Context, name string) (*models.User, error)
	GetByIDFn    func(ctx context.Context, id string) (*models.User, error)
}

func (m *mockUsers) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	return m.CreateFn(ctx, name, email, passwordHash)
}
func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFn(ctx, email)
}
func (m *mockUsers) GetByName(ctx context.Context, name string) (*models.User, error) {
	return m.GetByNameFn(ctx, name)
}
func (m *mockUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.GetByIDFn(ctx, id)
}

func TestAuthService_SignUp(t *testing.T) {
	t.Run("hashes password and returns sanitized view", func(t *testing.T) {
		var storedHash string
		repo := &mockUsers{
			GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return nil, nil
			},
			CreateFn: func(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
				storedHash = passwordHash
				return &models.User{ID: "u-1", Name: name, Email: email, PasswordHash: passwordHash}, nil
			},
		}
		s := NewAuthService(repo)

		view, err := s.SignUp(context.Background(), "Ahmed Hamdy", "ahmed@example.com", "Password123")
		require.NoError(t, err)
		assert.Equal(t, "u-1", view.ID)
		assert.Equal(t, "Ahmed Hamdy", view.Name)
		assert.Equal(t, "ahmed@example.com", view.Email)

		// one-way credential: not the raw password, but re-derivable
		assert.NotEqual(t, "Password123", storedHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("Password123")))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := &mockUsers{
			GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{ID: "u-1", Email: email}, nil
			},
		}
		s := NewAuthService(repo)

		_, err := s.SignUp(context.Background(), "x", "taken@example.com", "pw")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		repo := &mockUsers{
			GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return nil, nil
			},
		}
		s := NewAuthService(repo)

		for _, in := range []struct{ name, email, password string }{
			{"", "a@b.c", "pw"},
			{"n", "", "pw"},
			{"n", "a@b.c", "  "},
		} {
			_, err := s.SignUp(context.Background(), in.name, in.email, in.password)
			assert.ErrorIs(t, err, ErrMissingFields, "input %+v", in)
		}
	})
}

func TestAuthService_GenerateToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: "u-1", Email: "ahmed@example.com", PasswordHash: string(hash)}

	repo := &mockUsers{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}
	s := NewAuthService(repo)

	t.Run("round trip: token embeds the user id", func(t *testing.T) {
		token, err := s.GenerateToken(context.Background(), stored.Email, "Password123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		id, err := s.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.GenerateToken(context.Background(), stored.Email, "nope")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.GenerateToken(context.Background(), "ghost@example.com", "Password123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	repo := &mockUsers{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
			return &models.User{ID: "u-1", Email: email, PasswordHash: string(hash)}, nil
		},
	}
	s := NewAuthService(repo)

	token, err := s.GenerateToken(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	t.Run("malformed", func(t *testing.T) {
		_, err := s.ParseToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered signature", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)
		_, err := s.ParseToken(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := s.ParseToken("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_SearchByName(t *testing.T) {
	repo := &mockUsers{
		GetByNameFn: func(ctx context.Context, name string) (*models.User, error) {
			if name == "Ahmed Hamdy" {
				return &models.User{ID: "u-1", Name: name, Email: "ahmed@example.com", PasswordHash: "h"}, nil
			}
			return nil, nil
		},
	}
	s := NewAuthService(repo)

	t.Run("exact match returns view", func(t *testing.T) {
		view, err := s.SearchByName(context.Background(), "Ahmed Hamdy")
		require.NoError(t, err)
		assert.Equal(t, "Ahmed Hamdy", view.Name)
	})

	t.Run("miss is ErrUserNotFound", func(t *testing.T) {
		_, err := s.SearchByName(context.Background(), "NonExistent")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
