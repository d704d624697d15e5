package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/apperrors"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/logging"
	"github.com/gin-gonic/gin"
)

var log = logging.For("controllers")

// LoginRequest is the login payload. Missing fields are treated as a mismatch.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"senha123"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token string `json:"token"`
}

type AuthController struct {
	credentials auth.Credentials
	tokens      *auth.TokenService
}

func NewAuthController(credentials auth.Credentials, tokens *auth.TokenService) *AuthController {
	return &AuthController{
		credentials: credentials,
		tokens:      tokens,
	}
}

// Login godoc
// @Summary Log in
// @Description Exchange the configured username and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Username and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if !ac.credentials.Verify(req.Username, req.Password) {
		log.WithField("client_ip", c.ClientIP()).Warn("Login rejected")
		_ = c.Error(apperrors.Unauthorized(auth.ErrInvalidCredentials.Error()))
		return
	}

	token, err := ac.tokens.Issue(req.Username)
	if err != nil {
		_ = c.Error(err)
		return
	}

	log.WithField("subject", req.Username).Info("Login succeeded")
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
