package api

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/auth"
	"stockroom-backend/internal/database"
)

// Handlers carries the wired dependencies for all API handlers. Everything is
// injected at construction time; the package keeps no ambient state.
type Handlers struct {
	db         *sql.DB
	authSvc    *auth.Service
	users      *database.UserRepo
	items      *database.ItemRepo
	categories *database.CategoryRepo
}

// NewHandlers creates the handler set on top of an open database handle
func NewHandlers(db *sql.DB, authSvc *auth.Service, users *database.UserRepo) *Handlers {
	return &Handlers{
		db:         db,
		authSvc:    authSvc,
		users:      users,
		items:      database.NewItemRepo(db),
		categories: database.NewCategoryRepo(db),
	}
}

// RegisterRoutes sets up all API routes
func (h *Handlers) RegisterRoutes(api *echo.Group) {
	// Health check (public)
	api.GET("/health", h.healthCheck)

	// Auth routes (public - registration and login never pass the gate)
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.registerHandler)
	authGroup.POST("/login", h.loginHandler)
	authGroup.POST("/logout", h.logoutHandler)

	// Protected routes
	protected := api.Group("/protected")
	protected.Use(auth.RequireAuth(h.authSvc))
	protected.GET("/data", h.protectedDataHandler)

	// Item routes
	items := api.Group("/items")
	items.GET("", h.listItemsHandler)
	items.POST("", h.createItemHandler)
	items.GET("/:id", h.getItemHandler)
	items.PUT("/:id", h.updateItemHandler)
	items.DELETE("/:id", h.deleteItemHandler)

	// Category routes
	categories := api.Group("/categories")
	categories.GET("", h.listCategoriesHandler)
	categories.POST("", h.createCategoryHandler)
	categories.GET("/:id", h.getCategoryHandler)
	categories.PUT("/:id", h.updateCategoryHandler)
	categories.DELETE("/:id", h.deleteCategoryHandler)
}
