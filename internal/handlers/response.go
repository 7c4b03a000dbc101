package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response envelope: success payloads ride under "data", failures carry a
// human-readable "message". Some messages are part of the external contract
// and must not be reworded.
const (
	msgNoTodos       = "Couldn't find any todos for this user."
	msgEmptyPatch    = "must provide title and id to edit todo"
	msgInternalError = "internal server error"

	msgMissingAuthHeader = "missing authorization header"
	msgInvalidToken      = "invalid token"
)

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}

// respondInternal logs the underlying error and hides it behind a generic
// message so storage failures never leak to clients.
func (h *Handler) respondInternal(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	respondMessage(c, http.StatusInternalServerError, msgInternalError)
}
