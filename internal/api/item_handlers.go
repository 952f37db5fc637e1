package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/database"
	"stockroom-backend/internal/models"
)

// bindName binds and validates the shared {name} body for item and category
// writes. Names are trimmed and must keep at least two characters.
func bindName(c echo.Context) (string, bool) {
	var req models.NameRequest
	if err := c.Bind(&req); err != nil {
		return "", false
	}
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return "", false
	}
	return name, true
}

// listItemsHandler handles GET /api/items
func (h *Handlers) listItemsHandler(c echo.Context) error {
	items, err := h.items.List()
	if err != nil {
		c.Logger().Error("list items error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch items",
		})
	}
	if items == nil {
		items = []*models.Item{}
	}
	return c.JSON(http.StatusOK, items)
}

// getItemHandler handles GET /api/items/:id
func (h *Handlers) getItemHandler(c echo.Context) error {
	item, err := h.items.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "item not found",
			})
		}
		c.Logger().Error("get item error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch item",
		})
	}
	return c.JSON(http.StatusOK, item)
}

// createItemHandler handles POST /api/items
func (h *Handlers) createItemHandler(c echo.Context) error {
	name, ok := bindName(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name is required and must be at least 2 characters",
		})
	}

	item, err := h.items.Create(name)
	if err != nil {
		c.Logger().Error("create item error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to create item",
		})
	}
	return c.JSON(http.StatusCreated, item)
}

// updateItemHandler handles PUT /api/items/:id
func (h *Handlers) updateItemHandler(c echo.Context) error {
	name, ok := bindName(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name is required and must be at least 2 characters",
		})
	}

	if err := h.items.Update(c.Param("id"), name); err != nil {
		if errors.Is(err, database.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "item not found",
			})
		}
		c.Logger().Error("update item error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to update item",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "item updated",
	})
}

// deleteItemHandler handles DELETE /api/items/:id
func (h *Handlers) deleteItemHandler(c echo.Context) error {
	if err := h.items.Delete(c.Param("id")); err != nil {
		if errors.Is(err, database.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "item not found",
			})
		}
		c.Logger().Error("delete item error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete item",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "item deleted",
	})
}
