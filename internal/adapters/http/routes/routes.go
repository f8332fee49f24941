package routes

import (
	"libshelf/internal/adapters/http/handlers"
	"libshelf/internal/adapters/http/middleware"
	"libshelf/internal/adapters/persistence/repositories"
	"libshelf/internal/config"
	"libshelf/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(db, loanRepo)
	bookService := services.NewBookService(bookRepo)
	loanService := services.NewLoanService(db, loanRepo, bookRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, userService)
	bookHandler := handlers.NewBookHandler(bookService)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Public routes
	api.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	api.Get("/books", bookHandler.List)

	// Protected routes
	auth := middleware.AuthMiddleware(cfg)
	api.Delete("/unregister", auth, authHandler.Unregister)
	api.Post("/borrow", auth, loanHandler.Borrow)
	api.Post("/return", auth, loanHandler.Return)
	api.Get("/borrows", auth, loanHandler.History)
}
