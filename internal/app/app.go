package app

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/storage/postgres/v3"
	"github.com/gofiber/template/html/v2"

	"camp-backend/internal/config"
	"camp-backend/internal/db"
	"camp-backend/internal/handlers"
	"camp-backend/internal/services"
	"camp-backend/internal/session"
	"camp-backend/internal/store"
	"camp-backend/internal/utils"
	"camp-backend/views"
)

// New assembles the Fiber app from its dependencies. Run wires the real
// ones; tests substitute fakes.
func New(cfg *config.Config, users store.UserStore, campgrounds store.CampgroundStore, reviews store.ReviewStore, sessionStorage fiber.Storage) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: handlers.ErrorHandler,
	})

	sessions := session.NewStore(sessionStorage, cfg.CookieName)
	userService := services.NewUserService(users)

	// Middleware. Order matters: the override must run before routing
	// decisions, the session loader after the static file short-circuit.
	app.Use(handlers.MethodOverride())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(encryptcookie.New(encryptcookie.Config{Key: cfg.CookieKey()}))
	app.Use(helmet.New(helmet.Config{
		ContentSecurityPolicy: cfg.ContentSecurityPolicy(),
	}))
	app.Static("/uploads", cfg.UploadDir)
	app.Use(handlers.LoadSession(sessions, users))

	authHandler := &handlers.AuthHandler{Users: userService, Sessions: sessions}
	campgroundHandler := &handlers.CampgroundHandler{
		Campgrounds: campgrounds,
		Reviews:     reviews,
		Sessions:    sessions,
		UploadDir:   cfg.UploadDir,
	}
	reviewHandler := &handlers.ReviewHandler{
		Reviews:     reviews,
		Campgrounds: campgrounds,
		Sessions:    sessions,
	}

	// Routes
	app.Get("/", handlers.Home)

	app.Get("/register", authHandler.RegisterForm)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	requireAuth := handlers.RequireAuth(sessions)

	camp := app.Group("/campground")
	camp.Get("/", campgroundHandler.Index)
	camp.Get("/new", requireAuth, campgroundHandler.New)
	camp.Post("/", requireAuth, campgroundHandler.Create)
	camp.Get("/:id", campgroundHandler.Show)
	camp.Get("/:id/edit", requireAuth, campgroundHandler.Edit)
	camp.Put("/:id", requireAuth, campgroundHandler.Update)
	camp.Patch("/:id", requireAuth, campgroundHandler.Update)
	camp.Delete("/:id", requireAuth, campgroundHandler.Delete)

	camp.Post("/:id/review", requireAuth, reviewHandler.Create)
	camp.Delete("/:id/review/:reviewId", requireAuth, reviewHandler.Delete)

	// Anything unmatched gets a rendered 404 page.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page Not Found")
	})

	return app
}

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// Init DB
	if err := db.InitDB(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.CloseDB()

	// Ensure upload staging dir exists
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Printf("Warning: failed to create upload dir: %v", err)
	}

	// Sessions live next to the entities so every server process shares them.
	sessionStorage := postgres.New(postgres.Config{
		ConnectionURI: cfg.DatabaseURL,
		Table:         "sessions",
		GCInterval:    10 * time.Minute,
	})

	app := New(cfg,
		store.NewPgUserStore(db.Pool),
		store.NewPgCampgroundStore(db.Pool),
		store.NewPgReviewStore(db.Pool),
		sessionStorage,
	)

	// Start Server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}
