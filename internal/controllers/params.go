package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// parseID reads the positive integer :id path parameter. On failure it
// attaches a 400 to the context and returns false.
func parseID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		_ = ctx.Error(apperrors.BadRequest(fmt.Sprintf("invalid id %q: must be a positive integer", raw)))
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds the request body into dst, attaching any error to the context
func bindJSON(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		_ = ctx.Error(err)
		return false
	}
	return true
}

// bindJSONList decodes a JSON array body and validates each item on its own,
// so a failure is reported against the item's position in the request.
func bindJSONList[T any](ctx *gin.Context) ([]T, bool) {
	var items []T
	if ctx.Request.Body == nil {
		_ = ctx.Error(io.EOF)
		return nil, false
	}
	if err := json.NewDecoder(ctx.Request.Body).Decode(&items); err != nil {
		_ = ctx.Error(err)
		return nil, false
	}

	var itemErrs apperrors.ItemErrors
	for i := range items {
		if err := binding.Validator.ValidateStruct(&items[i]); err != nil {
			itemErrs = append(itemErrs, &apperrors.ItemError{Index: i, Err: err})
		}
	}
	if len(itemErrs) > 0 {
		_ = ctx.Error(itemErrs)
		return nil, false
	}
	return items, true
}
