package handlers

import (
	"context"

	"todo_backend/internal/models"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpView  *models.UserView
	signUpErr   error
	token       string
	genTokenErr error
	parseID     string
	parseErr    error
	searchView  *models.UserView
	searchErr   error

	lastSignUpEmail string
	lastGenEmail    string
	lastParseToken  string
	lastSearchName  string
}

func (m *mockAuth) SignUp(ctx context.Context, name, email, password string) (*models.UserView, error) {
	m.lastSignUpEmail = email
	return m.signUpView, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, email, password string) (string, error) {
	m.lastGenEmail = email
	return m.token, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) SearchByName(ctx context.Context, name string) (*models.UserView, error) {
	m.lastSearchName = name
	return m.searchView, m.searchErr
}

type mockTodos struct {
	createTodo *models.Todo
	createErr  error
	updateTodo *models.Todo
	updateErr  error
	listResp   []models.Todo
	listErr    error

	lastOwner     string
	lastTodoID    string
	lastPatch     service.TodoPatch
	lastRequester string
	lastUserID    string
}

func (m *mockTodos) Create(ctx context.Context, ownerID, title, description string) (*models.Todo, error) {
	m.lastOwner = ownerID
	return m.createTodo, m.createErr
}
func (m *mockTodos) Update(ctx context.Context, requesterID, todoID string, patch service.TodoPatch) (*models.Todo, error) {
	m.lastRequester = requesterID
	m.lastTodoID = todoID
	m.lastPatch = patch
	return m.updateTodo, m.updateErr
}
func (m *mockTodos) ListByOwner(ctx context.Context, requesterID, userID string) ([]models.Todo, error) {
	m.lastRequester = requesterID
	m.lastUserID = userID
	return m.listResp, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
