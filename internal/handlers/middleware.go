package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ctxUserID is the gin context key the middleware stores the verified
// identity under.
const ctxUserID = "userId"

// identityMiddleware extracts the bearer token from the authorization header
// and resolves it to a user id. The header carries the token verbatim; a
// leading "Bearer " prefix is tolerated but not required. No store lookup
// happens here.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": msgMissingAuthHeader,
		})
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	userID, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": msgInvalidToken,
		})
		return
	}

	c.Set(ctxUserID, userID)
	c.Next()
}

// requesterID reads the identity the middleware attached.
func requesterID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
