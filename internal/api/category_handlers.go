package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/database"
	"stockroom-backend/internal/models"
)

// listCategoriesHandler handles GET /api/categories
func (h *Handlers) listCategoriesHandler(c echo.Context) error {
	categories, err := h.categories.List()
	if err != nil {
		c.Logger().Error("list categories error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch categories",
		})
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return c.JSON(http.StatusOK, categories)
}

// getCategoryHandler handles GET /api/categories/:id
func (h *Handlers) getCategoryHandler(c echo.Context) error {
	category, err := h.categories.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "category not found",
			})
		}
		c.Logger().Error("get category error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch category",
		})
	}
	return c.JSON(http.StatusOK, category)
}

// createCategoryHandler handles POST /api/categories
func (h *Handlers) createCategoryHandler(c echo.Context) error {
	name, ok := bindName(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name is required and must be at least 2 characters",
		})
	}

	category, err := h.categories.Create(name)
	if err != nil {
		c.Logger().Error("create category error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to create category",
		})
	}
	return c.JSON(http.StatusCreated, category)
}

// updateCategoryHandler handles PUT /api/categories/:id
func (h *Handlers) updateCategoryHandler(c echo.Context) error {
	name, ok := bindName(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name is required and must be at least 2 characters",
		})
	}

	if err := h.categories.Update(c.Param("id"), name); err != nil {
		if errors.Is(err, database.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "category not found",
			})
		}
		c.Logger().Error("update category error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to update category",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "category updated",
	})
}

// deleteCategoryHandler handles DELETE /api/categories/:id
func (h *Handlers) deleteCategoryHandler(c echo.Context) error {
	if err := h.categories.Delete(c.Param("id")); err != nil {
		if errors.Is(err, database.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "category not found",
			})
		}
		c.Logger().Error("delete category error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete category",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "category deleted",
	})
}
