package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todo_backend/internal/models"

	"github.com/google/uuid"
)

type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepository { return &TodoRepository{db: db} }

var _ Todos = (*TodoRepository)(nil)

const (
	insertTodoSQL = `
		INSERT INTO todos (id, title, description, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectTodoByIDSQL = `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM todos WHERE id = ?
	`
	updateTodoSQL = `
		UPDATE todos SET title = ?, description = ?, updated_at = ? WHERE id = ?
	`
	selectTodosByOwnerSQL = `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM todos WHERE user_id = ? ORDER BY created_at ASC
	`
)

// Create inserts a new todo. If ID or CreatedAt are empty, they’re set.
func (r *TodoRepository) Create(ctx context.Context, t *models.Todo) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	} else {
		t.CreatedAt = t.CreatedAt.UTC()
	}
	t.UpdatedAt = t.CreatedAt

	_, err := r.db.ExecContext(ctx, insertTodoSQL,
		t.ID, t.Title, t.Description, t.UserID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert todo %q: %w", t.ID, err)
	}
	return nil
}

// GetByID fetches a todo by id. Returns (nil, nil) if not found.
func (r *TodoRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	var t models.Todo
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx, selectTodoByIDSQL, id).
		Scan(&t.ID, &t.Title, &desc, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select todo %q: %w", id, err)
	}
	t.Description = desc.String
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

// Update writes back title/description and bumps updated_at.
func (r *TodoRepository) Update(ctx context.Context, t *models.Todo) error {
	t.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateTodoSQL, t.Title, t.Description, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("update todo %q: %w", t.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update todo %q: no such row", t.ID)
	}
	return nil
}

// ListByOwner returns the owner's todos ordered by creation time (ASC).
func (r *TodoRepository) ListByOwner(ctx context.Context, userID string) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, selectTodosByOwnerSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select todos for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, 8)
	for rows.Next() {
		var t models.Todo
		var desc sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &desc, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Description = desc.String
		t.CreatedAt = t.CreatedAt.UTC()
		t.UpdatedAt = t.UpdatedAt.UTC()
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
