package handlers

import (
	"net/http"

	"todo_backend/internal/logger"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	feed     *todoFeed
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, feed: newTodoFeed()}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Paths and response shapes mirror the original REST surface exactly.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerUserRoutes(router)
	h.registerTodoRoutes(router)

	return router
}

// User routes are open: signup/login by nature, search deliberately so.
func (h *Handler) registerUserRoutes(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/signup", h.signUp)
		user.POST("/login", h.login)
		user.GET("/search", h.searchUser)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todo := r.Group("/todo", h.identityMiddleware)
	{
		todo.POST("", h.createTodo)
		todo.PATCH("/:id", h.patchTodo)
		todo.GET("/user", h.listUserTodos)
		todo.GET("/ws", h.wsTodos)
	}
}
