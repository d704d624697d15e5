package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
)

// IngredientController handles HTTP requests related to ingredientes
type IngredientController interface {
	GetAllIngredients(c *gin.Context)
	GetIngredientByID(c *gin.Context)
	CreateIngredient(c *gin.Context)
	CreateIngredients(c *gin.Context)
	UpdateIngredient(c *gin.Context)
	PatchIngredient(c *gin.Context)
	DeleteIngredient(c *gin.Context)
}

type ingredientController struct {
	service services.IngredientService
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(service services.IngredientService) IngredientController {
	return &ingredientController{service: service}
}

// GetAllIngredients godoc
// @Summary Get all ingredientes
// @Tags ingredientes
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 500 {object} models.APIError
// @Router /ingredientes [get]
func (c *ingredientController) GetAllIngredients(ctx *gin.Context) {
	ingredients, err := c.service.GetAllIngredients(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// GetIngredientByID godoc
// @Summary Get ingredient by ID
// @Tags ingredientes
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /ingredientes/{id} [get]
func (c *ingredientController) GetIngredientByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	ingredient, err := c.service.GetIngredientByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Description The optional pizza reference is stored as given
// @Tags ingredientes
// @Accept json
// @Produce json
// @Param ingredient body models.Ingredient true "Ingredient object"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Router /ingredientes [post]
func (c *ingredientController) CreateIngredient(ctx *gin.Context) {
	var ingredient models.Ingredient
	if !bindJSON(ctx, &ingredient) {
		return
	}

	created, err := c.service.CreateIngredient(ctx.Request.Context(), ingredient)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// CreateIngredients godoc
// @Summary Create ingredientes in batch
// @Description Create every ingredient in the list, or none of them
// @Tags ingredientes
// @Accept json
// @Produce json
// @Param ingredients body []models.Ingredient true "Ingredient list"
// @Success 200 {array} models.Ingredient
// @Failure 400 {object} models.APIError
// @Router /ingredientes/batch [post]
func (c *ingredientController) CreateIngredients(ctx *gin.Context) {
	ingredients, ok := bindJSONList[models.Ingredient](ctx)
	if !ok {
		return
	}

	created, err := c.service.CreateIngredients(ctx.Request.Context(), ingredients)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// UpdateIngredient godoc
// @Summary Replace an ingredient
// @Description Overwrites ingrediente and quantidade. The owning pizza only changes when one is supplied.
// @Tags ingredientes
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body models.Ingredient true "Ingredient object"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /ingredientes/{id} [put]
func (c *ingredientController) UpdateIngredient(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var ingredient models.Ingredient
	if !bindJSON(ctx, &ingredient) {
		return
	}

	updated, err := c.service.UpdateIngredient(ctx.Request.Context(), id, ingredient)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// PatchIngredient godoc
// @Summary Partially update an ingredient
// @Tags ingredientes
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body models.IngredientPatch true "Fields to change"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /ingredientes/{id} [patch]
func (c *ingredientController) PatchIngredient(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch models.IngredientPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	patched, err := c.service.PatchIngredient(ctx.Request.Context(), id, patch)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, patched)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Description Unknown ids are ignored
// @Tags ingredientes
// @Param id path int true "Ingredient ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Router /ingredientes/{id} [delete]
func (c *ingredientController) DeleteIngredient(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteIngredient(ctx.Request.Context(), id); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
