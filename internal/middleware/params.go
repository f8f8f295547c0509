package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireUUIDParam rejects requests whose named path parameter is not a valid
// UUID, before any handler or persistence work runs.
func RequireUUIDParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param(name)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid path parameter",
				"details": gin.H{name: "must be a valid UUID"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
