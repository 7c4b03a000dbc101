package handlers

import (
	"errors"
	"net/http"

	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 message on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		respondMessage(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// @Summary      Register a new account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  signUpRequest  true  "Account payload"
// @Success      200  {object}  map[string]interface{}  "data: created user"
// @Failure      400  {object}  map[string]string
// @Router       /user/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	view, err := h.services.SignUp(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrMissingFields):
			if h.log != nil {
				h.log.Infow("signup_rejected", "email", input.Email, "err", err)
			}
			respondMessage(c, http.StatusBadRequest, err.Error())
		default:
			h.respondInternal(c, "signup_failed", err, "email", input.Email)
		}
		return
	}

	respondData(c, view)
}

// @Summary      Log in and obtain a bearer token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]string  "data: token"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPassword):
			if h.log != nil {
				h.log.Infow("login_rejected", "email", input.Email)
			}
			respondMessage(c, http.StatusUnauthorized, err.Error())
		default:
			h.respondInternal(c, "login_failed", err, "email", input.Email)
		}
		return
	}

	respondData(c, token)
}

// @Summary      Search a user by exact name
// @Tags         user
// @Produce      json
// @Param        name  query  string  true  "Name to match"
// @Success      200  {object}  map[string]interface{}  "data: user view, or message on miss"
// @Router       /user/search [get]
func (h *Handler) searchUser(c *gin.Context) {
	name := c.Query("name")

	view, err := h.services.SearchByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// A miss is a soft failure: 200 with the contractual message.
			respondMessage(c, http.StatusOK, "There is no user with name: "+name)
			return
		}
		h.respondInternal(c, "user_search_failed", err, "name", name)
		return
	}

	respondData(c, view)
}
