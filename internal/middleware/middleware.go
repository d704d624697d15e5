package middleware

import (
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/logging"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// SubjectKey is the gin context key holding the authenticated token subject
const SubjectKey = "subject"

var log = logging.For("middleware")

// TokenParser verifies a bearer token and returns its claims
type TokenParser interface {
	Parse(token string) (*jwt.RegisteredClaims, error)
}

// AuthGate requires a valid bearer token on every path under one of the
// protected prefixes. A path is under a prefix when it equals it or continues
// with "/". Other paths pass through untouched.
// Failures follow RFC 6750: JSON error body plus a WWW-Authenticate challenge.
func AuthGate(tokens TokenParser, prefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isProtected(c.Request.URL.Path, prefixes) {
			c.Next()
			return
		}

		// RFC 6750: Extract Bearer token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithOAuth2Error(c, "invalid_request", "Missing Authorization header. A valid Bearer token is required.")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			respondWithOAuth2Error(c, "invalid_request", "Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}
		if tokenString = strings.TrimSpace(tokenString); tokenString == "" {
			respondWithOAuth2Error(c, "invalid_token", "Bearer token is empty")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			log.WithFields(logrus.Fields{"path": c.Request.URL.Path, "error": err.Error()}).Debug("Bearer token rejected")
			respondWithOAuth2Error(c, "invalid_token", "The access token is invalid or expired")
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

// Subject returns the authenticated subject stored by AuthGate
func Subject(c *gin.Context) (string, bool) {
	subject, ok := c.Get(SubjectKey)
	if !ok {
		return "", false
	}
	s, ok := subject.(string)
	return s, ok
}

func isProtected(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, errorCode, description string) {
	authRejections.WithLabelValues(errorCode).Inc()
	c.Header("WWW-Authenticate", `Bearer realm="pizza", error="`+errorCode+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewOAuth2Error(errorCode, description))
}
