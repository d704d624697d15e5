package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/generates"
	"github.com/go-oauth2/oauth2/v4/manage"
	oauth2models "github.com/go-oauth2/oauth2/v4/models"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/go-oauth2/oauth2/v4/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var log = logging.For("auth")

// OAuthConfig describes the single confidential client allowed to use the password grant
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	Credentials  Credentials
}

// OAuthService serves the OAuth2 password grant. Access tokens are HS512 JWTs
// signed with the TokenService key, so the auth gate accepts them unchanged.
type OAuthService struct {
	server *server.Server
}

func NewOAuthService(db *gorm.DB, tokens *TokenService, cfg OAuthConfig) (*OAuthService, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("oauth client id and secret are required")
	}
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(cfg.ClientSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing oauth client secret: %w", err)
	}

	manager := manage.NewDefaultManager()
	manager.SetPasswordTokenCfg(&manage.Config{AccessTokenExp: tokens.TTL(), IsGenerateRefresh: false})

	// Use JWT for access tokens
	manager.MapAccessGenerate(generates.NewJWTAccessGenerate("", tokens.key, jwt.SigningMethodHS512))

	// Configure token store
	manager.MustTokenStorage(NewGormTokenStore(db), nil)

	// Configure client store
	clientStore := store.NewClientStore()
	client := &bcryptClient{Client: &oauth2models.Client{ID: cfg.ClientID, Secret: string(hashedSecret)}}
	if err := clientStore.Set(cfg.ClientID, client); err != nil {
		return nil, fmt.Errorf("registering oauth client: %w", err)
	}
	manager.MapClientStorage(clientStore)

	srv := server.NewDefaultServer(manager)
	srv.SetAllowedGrantType(oauth2.PasswordCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)
	srv.SetPasswordAuthorizationHandler(func(ctx context.Context, clientID, username, password string) (string, error) {
		if !cfg.Credentials.Verify(username, password) {
			log.WithField("client_id", clientID).Warn("Password grant rejected")
			return "", oauth2errors.ErrInvalidGrant
		}
		return username, nil
	})
	srv.SetInternalErrorHandler(func(err error) *oauth2errors.Response {
		log.WithError(err).Error("OAuth2 token endpoint failed")
		return nil
	})

	log.WithFields(logrus.Fields{"client_id": cfg.ClientID, "ttl": tokens.TTL()}).Info("OAuth2 password grant enabled")
	return &OAuthService{server: srv}, nil
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}

// HandleToken handles the token endpoint for the password grant
// @Summary Token Endpoint
// @Description Obtain an access token with the resource owner password grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: password"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		log.WithError(err).Error("Writing token response failed")
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// bcryptClient verifies the presented secret against the stored bcrypt hash
type bcryptClient struct {
	*oauth2models.Client
}

func (c *bcryptClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
