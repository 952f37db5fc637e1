package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stockroom-backend/internal/api"
	"stockroom-backend/internal/auth"
	"stockroom-backend/internal/database"
)

func main() {
	// Get database path from environment or default
	dbPath := os.Getenv("STOCKROOM_DB_PATH")
	if dbPath == "" {
		// Default to current directory for development
		dbPath = "./stockroom.db"
	}

	// Ensure absolute path
	if !filepath.IsAbs(dbPath) {
		cwd, _ := os.Getwd()
		dbPath = filepath.Join(cwd, dbPath)
	}

	// Initialize database
	log.Printf("Initializing database at %s", dbPath)
	db, err := database.Open(database.Config{Path: dbPath})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Wire up repositories and the auth service
	userRepo := database.NewUserRepo(db)
	sessionRepo := database.NewSessionRepo(db)
	authSvc := auth.NewService(userRepo, sessionRepo)

	if count, err := userRepo.Count(); err != nil {
		log.Printf("Warning: failed to count users: %v", err)
	} else if count == 0 {
		log.Println("No users registered yet - POST /api/auth/register to create the first account")
	}

	// Sweep expired sessions in the background. Expiry is enforced at read
	// time either way, this just garbage-collects dead rows.
	go func() {
		for range time.Tick(time.Hour) {
			if n, err := sessionRepo.DeleteExpired(); err != nil {
				log.Printf("session sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("swept %d expired sessions", n)
			}
		}
	}()

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// API routes
	handlers := api.NewHandlers(db, authSvc, userRepo)
	handlers.RegisterRoutes(e.Group("/api"))

	// Get port from environment or default
	port := os.Getenv("STOCKROOM_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting stockroom backend on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
