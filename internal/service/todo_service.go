package service

import (
	"context"
	"errors"
	"strings"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

// Domain errors for todo flows. ErrTodoNotFound covers both a missing id and
// an id owned by someone else; ErrNoTodos covers both an empty collection and
// a query for another user's collection. Handlers must not be able to tell
// these apart.
var (
	ErrMissingTitle = errors.New("title is required")
	ErrEmptyPatch   = errors.New("must provide title and id to edit todo")
	ErrTodoNotFound = errors.New("todo not found")
	ErrNoTodos      = errors.New("no todos for this user")
)

type TodoService struct {
	todos repository.Todos
}

func NewTodoService(todos repository.Todos) *TodoService {
	return &TodoService{todos: todos}
}

// Create persists a new todo bound to ownerID.
func (s *TodoService) Create(ctx context.Context, ownerID, title, description string) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	t := models.Todo{
		Title:       title,
		Description: description,
		UserID:      ownerID,
	}
	if err := s.todos.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies a partial patch to a todo after checking the requester owns
// it. Fields absent from the patch keep their stored values.
func (s *TodoService) Update(ctx context.Context, requesterID, todoID string, patch TodoPatch) (*models.Todo, error) {
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	t, err := s.todos.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.UserID != requesterID {
		return nil, ErrTodoNotFound
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, ErrMissingTitle
		}
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}

	if err := s.todos.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListByOwner returns userID's todos. The requester may only query their own
// collection; anything else degrades to ErrNoTodos, as does a genuinely
// empty collection.
func (s *TodoService) ListByOwner(ctx context.Context, requesterID, userID string) ([]models.Todo, error) {
	if userID == "" {
		userID = requesterID
	}
	if userID != requesterID {
		return nil, ErrNoTodos
	}

	items, err := s.todos.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoTodos
	}
	return items, nil
}
