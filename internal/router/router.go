// Package router assembles the gin engine: middleware chain, resource routes and operational endpoints.
package router

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-pizza-menu/docs" // Register swagger docs
	"github.com/franciscosanchezn/gin-pizza-menu/internal/apperrors"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/config"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/logging"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var log = logging.For("router")

// New wires services, controllers and middleware over db according to conf
func New(conf *config.Config, db *gorm.DB) (*gin.Engine, error) {
	middleware.RegisterValidators()

	tokens, err := auth.NewTokenService([]byte(conf.JWTSecret), conf.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("creating token service: %w", err)
	}
	credentials := auth.Credentials{Username: conf.AuthUsername, Password: conf.AuthPassword}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(),
		middleware.CORS(conf.CORSAllowedOrigins),
		middleware.ErrorHandler(conf.ExposeErrorDetails),
		middleware.AuthGate(tokens, conf.ProtectedPrefixes),
	)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewAPIError(string(apperrors.ErrCodeNotFound), "route not found"))
	})

	// Operational endpoints
	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication
	authController := controllers.NewAuthController(credentials, tokens)
	router.POST("/auth/login", authController.Login)
	if conf.OAuthEnabled() {
		oauthService, err := auth.NewOAuthService(db, tokens, auth.OAuthConfig{
			ClientID:     conf.OAuthClientID,
			ClientSecret: conf.OAuthClientSecret,
			Credentials:  credentials,
		})
		if err != nil {
			return nil, fmt.Errorf("creating oauth service: %w", err)
		}
		router.POST("/oauth/token", oauthService.HandleToken)
	} else {
		log.Info("OAUTH_CLIENT_SECRET not set, /oauth/token disabled")
	}

	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	pizzas := router.Group("/pizza")
	{
		pizzas.GET("", pizzaController.GetAllPizzas)
		pizzas.POST("", pizzaController.CreatePizza)
		pizzas.POST("/batch", pizzaController.CreatePizzas)
		pizzas.GET("/:id", pizzaController.GetPizzaByID)
		pizzas.PUT("/:id", pizzaController.UpdatePizza)
		pizzas.PATCH("/:id", pizzaController.PatchPizza)
		pizzas.DELETE("/:id", pizzaController.DeletePizza)
	}

	ingredientController := controllers.NewIngredientController(services.NewIngredientService(db))
	ingredients := router.Group("/ingredientes")
	{
		ingredients.GET("", ingredientController.GetAllIngredients)
		ingredients.POST("", ingredientController.CreateIngredient)
		ingredients.POST("/batch", ingredientController.CreateIngredients)
		ingredients.GET("/:id", ingredientController.GetIngredientByID)
		ingredients.PUT("/:id", ingredientController.UpdateIngredient)
		ingredients.PATCH("/:id", ingredientController.PatchIngredient)
		ingredients.DELETE("/:id", ingredientController.DeleteIngredient)
	}

	menuController := controllers.NewMenuController(services.NewMenuService(db))
	menu := router.Group("/cardapio")
	{
		menu.GET("", menuController.GetAllMenuEntries)
		menu.POST("", menuController.CreateMenuEntry)
		menu.POST("/batch", menuController.CreateMenuEntries)
		menu.GET("/:id", menuController.GetMenuEntryByID)
		menu.PUT("/:id", menuController.UpdateMenuEntry)
		menu.PATCH("/:id", menuController.PatchMenuEntry)
		menu.DELETE("/:id", menuController.DeleteMenuEntry)
	}

	return router, nil
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "gin-pizza-menu",
		})
	}
}
