package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/apperrors"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery turns a handler panic into a 500 APIError and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				panicRecoveries.Inc()
				log.WithFields(logrus.Fields{
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
					"request_id": c.GetString(RequestIDKey),
					"panic":      r,
					"stack":      string(debug.Stack()),
				}).Error("Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					models.NewAPIError(string(apperrors.ErrCodeInternal), "internal server error"))
			}
		}()
		c.Next()
	}
}
