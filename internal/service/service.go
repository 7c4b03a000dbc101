package service

import (
	"context"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, name, email, password string) (*models.UserView, error)
	GenerateToken(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	SearchByName(ctx context.Context, name string) (*models.UserView, error)
}

// Todos exposes owner-scoped task operations. Every call takes the id of the
// authenticated requester; ownership checks happen here, not in handlers.
type Todos interface {
	Create(ctx context.Context, ownerID, title, description string) (*models.Todo, error)
	Update(ctx context.Context, requesterID, todoID string, patch TodoPatch) (*models.Todo, error)
	ListByOwner(ctx context.Context, requesterID, userID string) ([]models.Todo, error)
}

// TodoPatch is a partial update; nil fields are left untouched.
type TodoPatch struct {
	Title       *string
	Description *string
}

// Empty reports whether the patch names no updatable field.
func (p TodoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil
}

type Service struct {
	Authorization
	Todos
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Todos:         NewTodoService(repos.Todos),
	}
}
