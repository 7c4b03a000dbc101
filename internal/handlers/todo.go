package handlers

import (
	"errors"
	"net/http"

	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type createTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// patchTodoRequest uses pointers so an absent field can be told apart from an
// explicitly empty one.
type patchTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// @Summary      Create a todo owned by the caller
// @Tags         todo
// @Accept       json
// @Produce      json
// @Param        body  body  createTodoRequest  true  "Todo payload"
// @Success      200  {object}  map[string]interface{}  "data: created todo"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /todo [post]
// @Security     BearerAuth
func (h *Handler) createTodo(c *gin.Context) {
	var input createTodoRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMessage(c, http.StatusBadRequest, service.ErrMissingTitle.Error())
		return
	}

	owner := requesterID(c)
	todo, err := h.services.Todos.Create(c.Request.Context(), owner, input.Title, input.Description)
	if err != nil {
		if errors.Is(err, service.ErrMissingTitle) {
			respondMessage(c, http.StatusBadRequest, err.Error())
			return
		}
		h.respondInternal(c, "todo_create_failed", err, "owner", owner)
		return
	}

	h.feed.publish(owner, todoEvent{Type: "created", Todo: todo})
	respondData(c, todo)
}

// @Summary      Partially update a todo
// @Description  Supply title and/or description; an empty patch is rejected.
// @Tags         todo
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "Todo id"
// @Param        body  body  patchTodoRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}  "data: updated todo"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todo/{id} [patch]
// @Security     BearerAuth
func (h *Handler) patchTodo(c *gin.Context) {
	var input patchTodoRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMessage(c, http.StatusBadRequest, msgEmptyPatch)
		return
	}

	requester := requesterID(c)
	todoID := c.Param("id")
	patch := service.TodoPatch{Title: input.Title, Description: input.Description}

	todo, err := h.services.Todos.Update(c.Request.Context(), requester, todoID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPatch):
			respondMessage(c, http.StatusBadRequest, msgEmptyPatch)
		case errors.Is(err, service.ErrMissingTitle):
			respondMessage(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTodoNotFound):
			// Unknown id and someone else's id look identical from here.
			respondMessage(c, http.StatusNotFound, err.Error())
		default:
			h.respondInternal(c, "todo_update_failed", err, "todoId", todoID)
		}
		return
	}

	h.feed.publish(requester, todoEvent{Type: "updated", Todo: todo})
	respondData(c, todo)
}

// @Summary      List todos of a user
// @Description  Returns the caller's own todos; an empty or foreign collection yields the no-todos message.
// @Tags         todo
// @Produce      json
// @Param        userId  query  string  false  "User id (must match the caller)"
// @Success      200  {object}  map[string]interface{}  "data: todos, or message when none"
// @Failure      401  {object}  map[string]string
// @Router       /todo/user [get]
// @Security     BearerAuth
func (h *Handler) listUserTodos(c *gin.Context) {
	requester := requesterID(c)
	userID := c.Query("userId")

	todos, err := h.services.Todos.ListByOwner(c.Request.Context(), requester, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoTodos) {
			// Soft failure by contract: 200 with the exact message.
			respondMessage(c, http.StatusOK, msgNoTodos)
			return
		}
		h.respondInternal(c, "todo_list_failed", err, "userId", userID)
		return
	}

	respondData(c, todos)
}
