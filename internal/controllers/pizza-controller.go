package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/apperrors"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// CreatePizzas creates several pizzas at once
	CreatePizzas(c *gin.Context)
	// UpdatePizza replaces an existing pizza
	UpdatePizza(c *gin.Context)
	// PatchPizza partially updates an existing pizza
	PatchPizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get every pizza with its ingredientes and cardapio
// @Tags pizza
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 401 {object} models.OAuth2Error
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /pizza [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizza
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /pizza/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a pizza, including any nested ingredientes and cardapio entries
// @Tags pizza
// @Accept json
// @Produce json
// @Param pizza body models.Pizza true "Pizza object"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /pizza [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var pizza models.Pizza
	if !bindJSON(ctx, &pizza) {
		return
	}

	created, err := c.service.CreatePizza(ctx.Request.Context(), pizza)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// CreatePizzas godoc
// @Summary Create pizzas in batch
// @Description Create every pizza in the list, or none of them
// @Tags pizza
// @Accept json
// @Produce json
// @Param pizzas body []models.Pizza true "Pizza list"
// @Success 201 {array} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /pizza/batch [post]
func (c *pizzaController) CreatePizzas(ctx *gin.Context) {
	pizzas, ok := bindJSONList[models.Pizza](ctx)
	if !ok {
		return
	}

	created, err := c.service.CreatePizzas(ctx.Request.Context(), pizzas)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdatePizza godoc
// @Summary Replace a pizza
// @Description Replace sabor and both child lists. Children left out are detached, not deleted.
// @Tags pizza
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.Pizza true "Pizza object"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /pizza/{id} [put]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var pizza models.Pizza
	if !bindJSON(ctx, &pizza) {
		return
	}

	updated, err := c.service.UpdatePizza(ctx.Request.Context(), id, pizza)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// PatchPizza godoc
// @Summary Partially update a pizza
// @Description Only the fields present in the body are changed. A present child list replaces the current one.
// @Tags pizza
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.PizzaPatch true "Fields to change"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /pizza/{id} [patch]
func (c *pizzaController) PatchPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch models.PizzaPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	if patch.Sabor != nil && *patch.Sabor == "" {
		_ = ctx.Error(apperrors.BadRequest("sabor must not be empty"))
		return
	}

	patched, err := c.service.PatchPizza(ctx.Request.Context(), id, patch)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, patched)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID. Its ingredientes and cardapio rows are left in place.
// @Tags pizza
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /pizza/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
