package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sponsoring-app/sponsoring-backend/internal/logger"
	"github.com/sponsoring-app/sponsoring-backend/internal/repository"
)

// ErrorHandler obsługuje błędy centralnie. Maskuje błędy wewnętrzne
// i zwraca klientowi zrozumiałe komunikaty.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			statusCode := http.StatusInternalServerError
			message := "wewnętrzny błąd serwera"

			if logger.Log != nil {
				logger.Log.WithFields(logrus.Fields{
					"error":  err.Error(),
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
				}).Error("Request error")
			}

			if errors.Is(err.Err, repository.ErrUserNotFound) {
				statusCode = http.StatusNotFound
				message = "użytkownik nie został znaleziony"
			} else if errors.Is(err.Err, repository.ErrNotificationNotFound) {
				statusCode = http.StatusNotFound
				message = "powiadomienie nie zostało znalezione"
			} else if errors.Is(err.Err, repository.ErrMediaNotFound) {
				statusCode = http.StatusNotFound
				message = "plik nie został znaleziony"
			} else if err.Error() != "" {
				errStr := err.Error()
				if !containsInternalKeywords(errStr) {
					message = errStr
					if contains(errStr, "nieprawidłow") {
						statusCode = http.StatusBadRequest
					} else if contains(errStr, "brak uprawnień") || contains(errStr, "autoryzacj") {
						statusCode = http.StatusForbidden
					}
				}
			}

			c.JSON(statusCode, gin.H{"error": message})
		}
	}
}

// containsInternalKeywords sprawdza słowa kluczowe błędów wewnętrznych.
func containsInternalKeywords(s string) bool {
	keywords := []string{
		"sql:",
		"database",
		"connection",
		"timeout",
		"internal",
		"panic",
		"runtime",
	}

	for _, keyword := range keywords {
		if contains(s, keyword) {
			return true
		}
	}
	return false
}

func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
