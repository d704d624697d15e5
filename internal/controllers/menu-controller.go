package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests related to the cardapio
type MenuController interface {
	GetAllMenuEntries(c *gin.Context)
	GetMenuEntryByID(c *gin.Context)
	CreateMenuEntry(c *gin.Context)
	CreateMenuEntries(c *gin.Context)
	UpdateMenuEntry(c *gin.Context)
	PatchMenuEntry(c *gin.Context)
	DeleteMenuEntry(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) MenuController {
	return &menuController{service: service}
}

// GetAllMenuEntries godoc
// @Summary Get the whole cardapio
// @Tags cardapio
// @Produce json
// @Success 200 {array} models.MenuEntry
// @Failure 500 {object} models.APIError
// @Router /cardapio [get]
func (c *menuController) GetAllMenuEntries(ctx *gin.Context) {
	entries, err := c.service.GetAllMenuEntries(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GetMenuEntryByID godoc
// @Summary Get menu entry by ID
// @Tags cardapio
// @Produce json
// @Param id path int true "Menu entry ID"
// @Success 200 {object} models.MenuEntry
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /cardapio/{id} [get]
func (c *menuController) GetMenuEntryByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	entry, err := c.service.GetMenuEntryByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// CreateMenuEntry godoc
// @Summary Create a menu entry
// @Description The referenced pizza must exist
// @Tags cardapio
// @Accept json
// @Produce json
// @Param entry body models.MenuEntryRequest true "Menu entry"
// @Success 200 {object} models.MenuEntry
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /cardapio [post]
func (c *menuController) CreateMenuEntry(ctx *gin.Context) {
	var req models.MenuEntryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	entry, err := c.service.CreateMenuEntry(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// CreateMenuEntries godoc
// @Summary Create menu entries in batch
// @Description Every referenced pizza must exist. The first failure aborts the whole batch.
// @Tags cardapio
// @Accept json
// @Produce json
// @Param entries body []models.MenuEntryRequest true "Menu entries"
// @Success 200 {array} models.MenuEntry
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /cardapio/batch [post]
func (c *menuController) CreateMenuEntries(ctx *gin.Context) {
	reqs, ok := bindJSONList[models.MenuEntryRequest](ctx)
	if !ok {
		return
	}

	entries, err := c.service.CreateMenuEntries(ctx.Request.Context(), reqs)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// UpdateMenuEntry godoc
// @Summary Replace a menu entry
// @Tags cardapio
// @Accept json
// @Produce json
// @Param id path int true "Menu entry ID"
// @Param entry body models.MenuEntryRequest true "Menu entry"
// @Success 200 {object} models.MenuEntry
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /cardapio/{id} [put]
func (c *menuController) UpdateMenuEntry(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req models.MenuEntryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	entry, err := c.service.UpdateMenuEntry(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// PatchMenuEntry godoc
// @Summary Partially update a menu entry
// @Description A supplied pizza reference is stored without checking that it exists
// @Tags cardapio
// @Accept json
// @Produce json
// @Param id path int true "Menu entry ID"
// @Param entry body models.MenuEntryPatch true "Fields to change"
// @Success 200 {object} models.MenuEntry
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /cardapio/{id} [patch]
func (c *menuController) PatchMenuEntry(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch models.MenuEntryPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	entry, err := c.service.PatchMenuEntry(ctx.Request.Context(), id, patch)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// DeleteMenuEntry godoc
// @Summary Delete a menu entry
// @Description Unknown ids are ignored
// @Tags cardapio
// @Param id path int true "Menu entry ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Router /cardapio/{id} [delete]
func (c *menuController) DeleteMenuEntry(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteMenuEntry(ctx.Request.Context(), id); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
