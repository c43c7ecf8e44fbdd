package main

import (
	"log"
	"os"
	"time"

	"annapoorna/internal/auth"
	"annapoorna/internal/config"
	"annapoorna/internal/db"
	"annapoorna/internal/menu"
	"annapoorna/internal/middleware"
	"annapoorna/internal/voiceorder"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── MENU CATALOG ─────────────────────────
	menuRepo := menu.NewPostgresRepository(pgDB)
	menuService := menu.NewService(menuRepo)
	menuHandler := menu.NewHandler(menuService)

	menus := r.Group("/menu")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.GET("/items", menuHandler.List)

		owner := menus.Group("")
		owner.Use(middleware.RequireRole(auth.RoleOwner))
		{
			owner.POST("/items", menuHandler.Create)
			owner.PATCH("/items/:id/active", menuHandler.SetActive)
		}
	}

	// ───────────────────────── VOICE ORDERS ─────────────────────────
	voiceService := voiceorder.NewService(menuService)
	voiceHandler := voiceorder.NewHandler(voiceService, logger)

	voice := r.Group("/orders/voice")
	voice.Use(middleware.AuthMiddleware())
	{
		voice.POST("/parse", voiceHandler.Parse)
		voice.POST("/confirm", voiceHandler.Confirm)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	logger.Info().Str("addr", cfg.Addr()).Msg("API starting")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
