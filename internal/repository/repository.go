package repository

import (
	"context"
	"database/sql"

	"todo_backend/internal/models"
)

// Users persists account records. Lookup misses return (nil, nil).
type Users interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Todos persists task items keyed by their owning user.
type Todos interface {
	Create(ctx context.Context, t *models.Todo) error
	GetByID(ctx context.Context, id string) (*models.Todo, error)
	Update(ctx context.Context, t *models.Todo) error
	ListByOwner(ctx context.Context, userID string) ([]models.Todo, error)
}

type Repository struct {
	Users Users
	Todos Todos
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Todos: NewTodoRepository(db),
	}
}
