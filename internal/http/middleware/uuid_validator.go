package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDValidator sprawdza, czy parametr o podanej nazwie jest poprawnym UUID.
// Użycie: router.GET("/events/:id", UUIDValidator("id"), handler.GetEvent)
func UUIDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		if idStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "parametr " + paramName + " jest wymagany",
			})
			c.Abort()
			return
		}

		_, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "parametr " + paramName + " musi być poprawnym UUID",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
