package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewInMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func setupOAuth(t *testing.T) (*gorm.DB, *TokenService, *gin.Engine) {
	db := setupTestDB(t)
	tokens := newTestTokenService(t, time.Hour)

	oauthService, err := NewOAuthService(db, tokens, OAuthConfig{
		ClientID:     "pizza-web",
		ClientSecret: "web-secret",
		Credentials:  Credentials{Username: "admin", Password: "senha123"},
	})
	require.NoError(t, err)
	require.NotNil(t, oauthService.GetServer())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", oauthService.HandleToken)
	return db, tokens, router
}

func requestToken(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func passwordGrant(clientSecret, password string) url.Values {
	return url.Values{
		"grant_type":    {"password"},
		"client_id":     {"pizza-web"},
		"client_secret": {clientSecret},
		"username":      {"admin"},
		"password":      {password},
	}
}

func TestNewOAuthServiceRequiresClient(t *testing.T) {
	_, err := NewOAuthService(setupTestDB(t), newTestTokenService(t, time.Hour), OAuthConfig{ClientID: "pizza-web"})
	assert.Error(t, err)
}

func TestPasswordGrantIssuesGateCompatibleToken(t *testing.T) {
	db, tokens, router := setupOAuth(t)

	w := requestToken(router, passwordGrant("web-secret", "senha123"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	access, ok := response["access_token"].(string)
	require.True(t, ok)
	assert.Equal(t, "Bearer", response["token_type"])
	assert.NotContains(t, response, "refresh_token")

	claims, err := tokens.Parse(access)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)

	var stored models.OAuthToken
	require.NoError(t, db.Where("access_token = ?", access).First(&stored).Error)
	assert.Equal(t, "pizza-web", stored.ClientID)
	assert.Equal(t, "admin", stored.Subject)
	assert.True(t, stored.ExpiresAt.After(stored.IssuedAt))
}

func TestPasswordGrantRejections(t *testing.T) {
	_, _, router := setupOAuth(t)

	testCases := []struct {
		name   string
		form   url.Values
		errors []string
	}{
		{name: "wrong password", form: passwordGrant("web-secret", "wrong"), errors: []string{"invalid_grant"}},
		{name: "wrong client secret", form: passwordGrant("nope", "senha123"), errors: []string{"invalid_client"}},
		{
			name: "client credentials grant",
			form: url.Values{
				"grant_type":    {"client_credentials"},
				"client_id":     {"pizza-web"},
				"client_secret": {"web-secret"},
			},
			errors: []string{"unsupported_grant_type", "unauthorized_client"},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := requestToken(router, tt.form)
			assert.NotEqual(t, http.StatusOK, w.Code)

			var response map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, tt.errors, response["error"])
		})
	}
}

func TestGormTokenStore(t *testing.T) {
	ctx := context.Background()
	store := NewGormTokenStore(setupTestDB(t))

	_, err := store.GetByCode(ctx, "code")
	assert.ErrorIs(t, err, ErrUnsupportedGrant)
	_, err = store.GetByRefresh(ctx, "refresh")
	assert.ErrorIs(t, err, ErrUnsupportedGrant)

	_, err = store.GetByAccess(ctx, "missing")
	assert.Error(t, err)
	assert.NoError(t, store.RemoveByAccess(ctx, "missing"))
}
